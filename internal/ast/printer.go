package ast

import (
	"fmt"
)

func (v *Variable) String() string {
	return fmt.Sprintf("x_%d", v.Index)
}

func (n *Negation) String() string {
	return fmt.Sprintf("~%s", exprString(n.Value))
}

func (c *Conjunction) String() string {
	return fmt.Sprintf("(%s & %s)", exprString(c.Left), exprString(c.Right))
}

func (d *Disjunction) String() string {
	return fmt.Sprintf("(%s | %s)", exprString(d.Left), exprString(d.Right))
}

func exprString(e Expr) string {
	if IsNil(e) {
		return "<nil>"
	}
	return e.String()
}
