package fivecycle_test

import (
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fivecycle"
	"fivecycle/internal/ast"
)

func TestFacadeScenarios(t *testing.T) {
	x0 := fivecycle.Var(0)

	program, err := fivecycle.Compile(x0)
	require.NoError(t, err)
	require.Len(t, program, 1)
	assert.Equal(t, fivecycle.Cond(0), program[0].Cond)
	assert.Equal(t, fivecycle.RotateR, program[0].IfTrue)
	assert.Equal(t, fivecycle.Identity, program[0].IfFalse)

	program, err = fivecycle.Compile(fivecycle.Not(x0))
	require.NoError(t, err)
	require.Len(t, program, 1)
	assert.Equal(t, fivecycle.Identity, program[0].IfTrue)
	assert.Equal(t, fivecycle.RotateR, program[0].IfFalse)

	program, err = fivecycle.Compile(fivecycle.And(x0, fivecycle.Var(1)))
	require.NoError(t, err)
	require.Len(t, program, 4)
	for i, inst := range program {
		assert.Equal(t, fivecycle.Cond(i%2), inst.Cond)
	}

	merged := fivecycle.CanonicalizeFalseBranch(fivecycle.MergeAdjacent(program))
	assert.Len(t, merged, 4)
}

func TestFacadeErrors(t *testing.T) {
	_, err := fivecycle.NewPerm([]int{0, 1, 2, 3, 3})
	assert.True(t, errors.Is(err, fivecycle.ErrInvalidPermutation))

	_, err = fivecycle.Generate(fivecycle.And(fivecycle.Var(0), fivecycle.Var(1)), fivecycle.Identity)
	assert.True(t, errors.Is(err, fivecycle.ErrNotASingleFiveCycle))

	_, err = fivecycle.Compile(fivecycle.Var(-1))
	assert.True(t, errors.Is(err, fivecycle.ErrInvalidVariable))

	var cerr fivecycle.CompilerError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "E0100", cerr.Code)
}

func TestFacadeCompose(t *testing.T) {
	inverse, err := fivecycle.NewPerm([]int{4, 0, 1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, fivecycle.Identity, fivecycle.Compose(fivecycle.RotateR, inverse))

	a, b, err := fivecycle.Commutator(fivecycle.RotateR)
	require.NoError(t, err)
	assert.Equal(t, fivecycle.RotateR, a.Then(b).Then(a.Inverse()).Then(b.Inverse()))
}

func TestExplain(t *testing.T) {
	e := fivecycle.And(fivecycle.Var(0), fivecycle.Var(1))
	_, err := fivecycle.Generate(e, fivecycle.Identity)
	require.Error(t, err)

	color.NoColor = true
	out := fivecycle.Explain(err, e)
	assert.Contains(t, out, "error[E0003]")
	assert.Contains(t, out, "--> (x_0 & x_1)")
	assert.Contains(t, out, "note: while compiling (x_0 & x_1)")

	assert.Equal(t, "boom\n", fivecycle.Explain(errors.New("boom"), nil))
}

func TestExplainNilInputs(t *testing.T) {
	color.NoColor = true
	assert.Equal(t, "", fivecycle.Explain(nil, fivecycle.Var(0)))

	_, err := fivecycle.NewPerm([]int{0, 0, 1, 2, 3})
	require.Error(t, err)

	var missing *ast.Variable
	var out string
	require.NotPanics(t, func() { out = fivecycle.Explain(err, missing) })
	assert.Contains(t, out, "error[E0001]")
	assert.NotContains(t, out, "-->")

	// a nil child still names the rest of the expression
	out = fivecycle.Explain(err, fivecycle.Not(missing))
	assert.Contains(t, out, "--> ~<nil>")
}
