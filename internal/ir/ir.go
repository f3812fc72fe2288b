package ir

// This file provides the main entry points for the IR system
// The IR is a width-5 permutation branching program (Barrington, 1986):
// folding it over an assignment yields the target permutation when the
// expression is true and the identity when it is false.

import (
	"fivecycle/internal/ast"
	"fivecycle/internal/perm"
)

// Generate compiles e towards target. target must be a single 5-cycle
// whenever e contains a conjunction or disjunction.
func Generate(e ast.Expr, target perm.Perm) (Program, error) {
	return NewBuilder().Build(e, target)
}

// Compile compiles e towards perm.RotateR
func Compile(e ast.Expr) (Program, error) {
	return Generate(e, perm.RotateR)
}

// Normalize runs the passes enabled by opts to a fixpoint
func Normalize(program Program, opts Options) (Program, error) {
	return NewOptimizationPipeline(opts).Run(program)
}

// BuildProgram is the main entry point: compile e towards perm.RotateR and
// normalize the result
func BuildProgram(e ast.Expr, opts Options) (Program, error) {
	program, err := Compile(e)
	if err != nil {
		return nil, err
	}
	return Normalize(program, opts)
}

// PrintProgram returns a plain listing of the program
func PrintProgram(program Program) string {
	return Print(program)
}
