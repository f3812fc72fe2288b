package testutil

// Helpers for checking compiled programs against their source expressions.
// Running programs is left to callers of the library, so the fold lives
// here for tests only.

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fivecycle/internal/ast"
	"fivecycle/internal/ir"
	"fivecycle/internal/perm"
)

// Fold composes, left to right from the identity, the branch each
// instruction picks under assignment. Unconditional instructions take
// their true branch.
func Fold(program ir.Program, assignment []bool) perm.Perm {
	result := perm.Identity
	for _, inst := range program {
		bit := true
		if index, ok := inst.Cond.Var(); ok {
			bit = index < len(assignment) && assignment[index]
		}
		result = result.Then(inst.Branch(bit))
	}
	return result
}

// Assignments lists all 2^n assignments of n variables; bit i of the
// row number is variable i.
func Assignments(n int) [][]bool {
	rows := make([][]bool, 1<<n)
	for row := range rows {
		bits := make([]bool, n)
		for i := range bits {
			bits[i] = row&(1<<i) != 0
		}
		rows[row] = bits
	}
	return rows
}

// Lookup adapts an assignment slice to ast.Eval
func Lookup(assignment []bool) func(int) bool {
	return func(i int) bool {
		return i < len(assignment) && assignment[i]
	}
}

// RequireComputes checks that program folds to target exactly when e is
// true and to the identity otherwise, for every assignment of e's variables.
func RequireComputes(t *testing.T, e ast.Expr, program ir.Program, target perm.Perm) {
	t.Helper()

	for _, assignment := range Assignments(ast.MaxVar(e) + 1) {
		want := perm.Identity
		if ast.Eval(e, Lookup(assignment)) {
			want = target
		}
		got := Fold(program, assignment)
		require.Equal(t, want, got, "%s under %v:\n%s", e, assignment, ir.Print(program))
	}
}

// Examples returns the reference expressions used across tests, keyed by name
func Examples() map[string]ast.Expr {
	a, b, c, d := ast.Var(0), ast.Var(1), ast.Var(2), ast.Var(3)
	return map[string]ast.Expr{
		"just_a":          a,
		"not_a":           ast.Not(a),
		"and":             ast.And(a, b),
		"and_not":         ast.And(a, ast.Not(b)),
		"nand":            ast.Not(ast.And(a, b)),
		"or":              ast.Or(a, b),
		"or_not":          ast.Or(a, ast.Not(b)),
		"nor":             ast.Not(ast.Or(a, b)),
		"xor":             ast.Or(ast.And(ast.Not(a), b), ast.And(a, ast.Not(b))),
		"xnor":            ast.Not(ast.Or(ast.And(ast.Not(a), b), ast.And(a, ast.Not(b)))),
		"xor_opt":         ast.Or(ast.And(ast.Not(a), b), ast.And(ast.Not(b), a)),
		"and3":            ast.And(ast.And(a, b), c),
		"and4":            ast.And(ast.And(a, b), ast.And(c, d)),
		"and4_unbalanced": ast.And(ast.And(ast.And(a, b), c), d),
		"or3":             ast.Or(ast.Or(a, b), c),
		"or4":             ast.Or(ast.Or(a, b), ast.Or(c, d)),
		"redundant_a":     ast.And(ast.Or(a, a), ast.Or(a, a)),
		"contradiction":   ast.And(a, ast.Not(a)),
		"tautology":       ast.Or(a, ast.Not(a)),
		"and_or_and_not":  ast.Or(ast.And(a, b), ast.And(c, ast.Not(d))),
	}
}
