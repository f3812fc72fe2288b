package ast

import (
	fcerrors "fivecycle/internal/errors"
)

// Walk visits e and its children in pre-order. Returning false from fn
// skips the children of the current node.
func Walk(e Expr, fn func(Expr) bool) {
	if IsNil(e) || !fn(e) {
		return
	}
	for _, child := range Children(e) {
		Walk(child, fn)
	}
}

// Children returns the direct sub-expressions of e
func Children(e Expr) []Expr {
	switch n := e.(type) {
	case *Negation:
		return []Expr{n.Value}
	case *Conjunction:
		return []Expr{n.Left, n.Right}
	case *Disjunction:
		return []Expr{n.Left, n.Right}
	default:
		return nil
	}
}

// Validate checks that every node is non-nil and every variable index is
// non-negative.
func Validate(e Expr) error {
	if IsNil(e) {
		return fcerrors.InvalidExpression("nil node")
	}
	switch n := e.(type) {
	case *Variable:
		if n.Index < 0 {
			return fcerrors.InvalidVariable(n.Index)
		}
		return nil
	case *Negation, *Conjunction, *Disjunction:
		for _, child := range Children(n) {
			if err := Validate(child); err != nil {
				return err
			}
		}
		return nil
	default:
		return fcerrors.InvalidExpression("unknown node kind")
	}
}

// Eval evaluates e directly, reading variable i from assignment(i).
// e must be valid.
func Eval(e Expr, assignment func(int) bool) bool {
	switch n := e.(type) {
	case *Variable:
		return assignment(n.Index)
	case *Negation:
		return !Eval(n.Value, assignment)
	case *Conjunction:
		return Eval(n.Left, assignment) && Eval(n.Right, assignment)
	case *Disjunction:
		return Eval(n.Left, assignment) || Eval(n.Right, assignment)
	default:
		panic("ast: Eval on invalid expression")
	}
}

// MaxVar returns the largest variable index in e, or -1 if there is none
func MaxVar(e Expr) int {
	max := -1
	Walk(e, func(n Expr) bool {
		if v, ok := n.(*Variable); ok && v.Index > max {
			max = v.Index
		}
		return true
	})
	return max
}

// Count returns the number of nodes in e
func Count(e Expr) int {
	count := 0
	Walk(e, func(Expr) bool {
		count++
		return true
	})
	return count
}

// IsNil reports whether e is nil or a typed nil pointer
func IsNil(e Expr) bool {
	switch n := e.(type) {
	case nil:
		return true
	case *Variable:
		return n == nil
	case *Negation:
		return n == nil
	case *Conjunction:
		return n == nil
	case *Disjunction:
		return n == nil
	default:
		return false
	}
}
