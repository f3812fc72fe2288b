package ast

import "fmt"

type NodeType int

const (
	// Special / error
	ILLEGAL NodeType = iota

	// Leaves
	VARIABLE

	// Connectives
	NEGATION
	CONJUNCTION
	DISJUNCTION
)

var nodeTypeNames = [...]string{
	ILLEGAL:     "ILLEGAL",
	VARIABLE:    "VARIABLE",
	NEGATION:    "NEGATION",
	CONJUNCTION: "CONJUNCTION",
	DISJUNCTION: "DISJUNCTION",
}

func (t NodeType) String() string {
	if t >= 0 && int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return fmt.Sprintf("NodeType(%d)", int(t))
}

// Variable is a leaf referring to input bit Index
type Variable struct {
	Index int
}

// Negation is ~Value
type Negation struct {
	Value Expr
}

// Conjunction is Left & Right
type Conjunction struct {
	Left  Expr
	Right Expr
}

// Disjunction is Left | Right. It is kept as its own node for readable
// printing; compilation rewrites it through De Morgan's law.
type Disjunction struct {
	Left  Expr
	Right Expr
}
