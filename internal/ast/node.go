package ast

type Node interface {
	NodeType() NodeType
	String() string
}

func (*Variable) NodeType() NodeType    { return VARIABLE }
func (*Negation) NodeType() NodeType    { return NEGATION }
func (*Conjunction) NodeType() NodeType { return CONJUNCTION }
func (*Disjunction) NodeType() NodeType { return DISJUNCTION }
