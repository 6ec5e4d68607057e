package ast

import "yapl/internal/operator"

// Call applies a callee to an argument list and/or a trailing block.
type Call struct {
	Base
	Callee Expr
	Parens bool // an argument list was written, possibly empty
	Args   []*CallArgument
	Suffix Node // trailing block, nil if absent
}

// CallArgument is a positional or named argument.
type CallArgument struct {
	Base
	Name  *Identifier // nil for positional arguments
	Value Expr
}

// Reference names a value: an identifier or one of null, this, true, false.
type Reference struct {
	Base
	Name *Identifier
}

// Number keeps the literal text.
type Number struct {
	Base
	Value string
}

// String keeps the raw body between the quotes, escapes untouched.
type String struct {
	Base
	Quote byte
	Value string
}

// StringTemplate is a backquoted, comma-separated list of expressions.
type StringTemplate struct {
	Base
	Parts []Expr
}

// PrefixUnary is op operand.
type PrefixUnary struct {
	Base
	Op      *operator.Operator
	Operand Expr
}

// SuffixUnary is operand op.
type SuffixUnary struct {
	Base
	Op      *operator.Operator
	Operand Expr
}

// Binary is left op right.
type Binary struct {
	Base
	Op    *operator.Operator
	Left  Expr
	Right Expr
}

// If is an expression; each part is a single statement or a *Block.
type If struct {
	Base
	Cond Node
	Then Node
	Else Node // nil without else
}

// Block is a statement list.
type Block struct {
	Base
	Stmts []Node
}

func (n *Call) Kind() Kind           { return KindCall }
func (n *CallArgument) Kind() Kind   { return KindCallArgument }
func (n *Reference) Kind() Kind      { return KindReference }
func (n *Number) Kind() Kind         { return KindNumber }
func (n *String) Kind() Kind         { return KindString }
func (n *StringTemplate) Kind() Kind { return KindStringTemplate }
func (n *PrefixUnary) Kind() Kind    { return KindPrefixUnary }
func (n *SuffixUnary) Kind() Kind    { return KindSuffixUnary }
func (n *Binary) Kind() Kind         { return KindBinary }
func (n *If) Kind() Kind             { return KindIf }
func (n *Block) Kind() Kind          { return KindBlock }

func (*Call) exprNode()           {}
func (*Reference) exprNode()      {}
func (*Number) exprNode()         {}
func (*String) exprNode()         {}
func (*StringTemplate) exprNode() {}
func (*PrefixUnary) exprNode()    {}
func (*SuffixUnary) exprNode()    {}
func (*Binary) exprNode()         {}
func (*If) exprNode()             {}
func (*Block) exprNode()          {}
func (*Function) exprNode()       {}
