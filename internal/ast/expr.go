package ast

type Expr interface {
	Node
	isExpr()
}

func (*Variable) isExpr() {}

func (*Negation) isExpr() {}

func (*Conjunction) isExpr() {}

func (*Disjunction) isExpr() {}

// Var returns the variable with the given index
func Var(index int) *Variable {
	return &Variable{Index: index}
}

// Not returns ~e
func Not(e Expr) *Negation {
	return &Negation{Value: e}
}

// And returns l & r
func And(l, r Expr) *Conjunction {
	return &Conjunction{Left: l, Right: r}
}

// Or returns l | r
func Or(l, r Expr) *Disjunction {
	return &Disjunction{Left: l, Right: r}
}

// Vars returns Var(0) .. Var(n-1)
func Vars(n int) []*Variable {
	vars := make([]*Variable, n)
	for i := range vars {
		vars[i] = Var(i)
	}
	return vars
}
