package ir

import (
	stderrors "errors"
	"fmt"

	"github.com/tliron/commonlog"

	"fivecycle/internal/ast"
	fcerrors "fivecycle/internal/errors"
	"fivecycle/internal/perm"
)

// logger is looked up per call so a backend configured after package init
// still receives output
func logger() commonlog.Logger {
	return commonlog.GetLogger("fivecycle.ir")
}

// Builder converts an expression tree to a branching program
type Builder struct {
	instCounter       int
	commutatorCounter int
	depth             int
	maxDepth          int
}

// NewBuilder creates a new IR builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Build compiles e so that the program folds to target when e is true and
// to the identity when e is false.
func (b *Builder) Build(e ast.Expr, target perm.Perm) (Program, error) {
	if err := ast.Validate(e); err != nil {
		return nil, err
	}
	*b = Builder{}
	program, err := b.buildExpression(e, target)
	if err != nil {
		return nil, err
	}
	logger().Debugf("compiled %s for %s: %d instructions, %d commutators, depth %d",
		e, target, len(program), b.commutatorCounter, b.maxDepth)
	return program, nil
}

// Stats returns the counters gathered by the last Build
func (b *Builder) Stats() (instructions, commutators, depth int) {
	return b.instCounter, b.commutatorCounter, b.maxDepth
}

// buildExpression dispatches on the node kind
func (b *Builder) buildExpression(e ast.Expr, target perm.Perm) (Program, error) {
	b.depth++
	if b.depth > b.maxDepth {
		b.maxDepth = b.depth
	}
	defer func() { b.depth-- }()

	switch n := e.(type) {
	case *ast.Variable:
		return b.buildVariable(n, target), nil
	case *ast.Negation:
		return b.buildNegation(n, target)
	case *ast.Conjunction:
		return b.buildConjunction(n, target)
	case *ast.Disjunction:
		return b.buildDisjunction(n, target)
	default:
		return nil, fcerrors.InvalidExpression(fmt.Sprintf("unexpected node %T", e))
	}
}

func (b *Builder) buildVariable(v *ast.Variable, target perm.Perm) Program {
	b.instCounter++
	return Program{NewInstruction(On(v.Index), target, perm.Identity)}
}

// buildNegation compiles ~e as "e towards target⁻¹, then target". The
// trailing unconditional target is folded into the last instruction
// instead of being emitted on its own.
func (b *Builder) buildNegation(n *ast.Negation, target perm.Perm) (Program, error) {
	inner, err := b.buildExpression(n.Value, target.Inverse())
	if err != nil {
		return nil, err
	}
	if len(inner) == 0 {
		b.instCounter++
		return Program{Unconditional(target)}, nil
	}
	last := inner[len(inner)-1]
	inner[len(inner)-1] = NewInstruction(last.Cond, last.IfTrue.Then(target), last.IfFalse.Then(target))
	return inner, nil
}

// buildConjunction emits e1→a, e2→b, e1→a⁻¹, e2→b⁻¹ where a*b*a⁻¹*b⁻¹ is
// the target. If either side is false one pair cancels and the product is
// the identity. target must be a single 5-cycle.
func (b *Builder) buildConjunction(c *ast.Conjunction, target perm.Perm) (Program, error) {
	pa, pb, err := perm.Commutator(target)
	if err != nil {
		var cerr fcerrors.CompilerError
		if stderrors.As(err, &cerr) {
			err = fcerrors.From(cerr).
				WithNote(fmt.Sprintf("while compiling %s", c)).
				WithNote("every conjunction target must be a 5-cycle; starting from one keeps it so").
				Build()
		}
		return nil, err
	}
	b.commutatorCounter++

	var program Program
	for _, step := range []struct {
		expr   ast.Expr
		target perm.Perm
	}{
		{c.Left, pa},
		{c.Right, pb},
		{c.Left, pa.Inverse()},
		{c.Right, pb.Inverse()},
	} {
		part, err := b.buildExpression(step.expr, step.target)
		if err != nil {
			return nil, err
		}
		program = append(program, part...)
	}
	return program, nil
}

// buildDisjunction rewrites l | r as ~(~l & ~r)
func (b *Builder) buildDisjunction(d *ast.Disjunction, target perm.Perm) (Program, error) {
	return b.buildExpression(ast.Not(ast.And(ast.Not(d.Left), ast.Not(d.Right))), target)
}
