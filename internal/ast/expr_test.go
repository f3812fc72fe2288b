package ast

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fcerrors "fivecycle/internal/errors"
)

func TestStringMethods(t *testing.T) {
	a, b := Var(0), Var(1)

	tests := []struct {
		expr     Expr
		expected string
	}{
		{a, "x_0"},
		{Not(a), "~x_0"},
		{And(a, Not(b)), "(x_0 & ~x_1)"},
		{Or(a, b), "(x_0 | x_1)"},
		{Not(Or(And(a, b), Var(2))), "~((x_0 & x_1) | x_2)"},
		{Not(nil), "~<nil>"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.expr.String())
	}
}

func TestNodeTypes(t *testing.T) {
	a := Var(0)
	assert.Equal(t, VARIABLE, a.NodeType())
	assert.Equal(t, NEGATION, Not(a).NodeType())
	assert.Equal(t, CONJUNCTION, And(a, a).NodeType())
	assert.Equal(t, DISJUNCTION, Or(a, a).NodeType())
	assert.Equal(t, "CONJUNCTION", CONJUNCTION.String())
	assert.Equal(t, "NodeType(42)", NodeType(42).String())
}

func TestVars(t *testing.T) {
	vars := Vars(3)
	require.Len(t, vars, 3)
	for i, v := range vars {
		assert.Equal(t, i, v.Index)
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(And(Var(0), Or(Var(1), Not(Var(2))))))

	err := Validate(And(Var(0), Not(Var(-1))))
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, fcerrors.ErrInvalidVariable))

	err = Validate(Or(Var(0), nil))
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, fcerrors.ErrInvalidExpression))

	var missing *Conjunction
	err = Validate(Not(missing))
	assert.True(t, stderrors.Is(err, fcerrors.ErrInvalidExpression))

	assert.True(t, stderrors.Is(Validate(nil), fcerrors.ErrInvalidExpression))
}

func TestEval(t *testing.T) {
	a, b := Var(0), Var(1)
	xor := Or(And(Not(a), b), And(a, Not(b)))

	for bits := 0; bits < 4; bits++ {
		va, vb := bits&1 != 0, bits&2 != 0
		assignment := func(i int) bool { return []bool{va, vb}[i] }

		assert.Equal(t, va && vb, Eval(And(a, b), assignment))
		assert.Equal(t, va || vb, Eval(Or(a, b), assignment))
		assert.Equal(t, !va, Eval(Not(a), assignment))
		assert.Equal(t, va != vb, Eval(xor, assignment))
	}

	assert.Panics(t, func() { Eval(nil, func(int) bool { return true }) })
}

func TestWalkAndCounts(t *testing.T) {
	e := And(Or(Var(0), Var(3)), Not(Var(1)))

	var order []string
	Walk(e, func(n Expr) bool {
		order = append(order, n.NodeType().String())
		return true
	})
	assert.Equal(t, []string{"CONJUNCTION", "DISJUNCTION", "VARIABLE", "VARIABLE", "NEGATION", "VARIABLE"}, order)

	assert.Equal(t, 6, Count(e))
	assert.Equal(t, 3, MaxVar(e))
	assert.Equal(t, -1, MaxVar(nil))

	// pruning skips children
	visited := 0
	Walk(e, func(n Expr) bool {
		visited++
		return n.NodeType() != DISJUNCTION
	})
	assert.Equal(t, 4, visited)
}
