package format

import (
	"yapl/internal/ast"
	"yapl/internal/operator"
)

func (p *printer) VisitCall(n *ast.Call) {
	// a braced block is its own delimiter; "({ b })" does not parse
	p.operand(n.Callee, !isAtom(n.Callee) && n.Callee.Kind() != ast.KindBlock)
	if n.Parens {
		_ = p.w.WriteByte('(')
		for i, a := range n.Args {
			if i > 0 {
				p.w.WriteString(", ")
			}
			p.node(a)
		}
		_ = p.w.WriteByte(')')
	}
	switch s := n.Suffix.(type) {
	case nil:
	case *ast.Block:
		p.block(s.Stmts)
	default:
		p.w.Space()
		p.braced([]ast.Node{s})
	}
}

func (p *printer) VisitCallArgument(n *ast.CallArgument) {
	if n.Name != nil {
		p.node(n.Name)
		p.w.WriteString(": ")
	}
	p.inner(n.Value)
}

func (p *printer) VisitReference(n *ast.Reference) { p.node(n.Name) }
func (p *printer) VisitNumber(n *ast.Number)       { p.w.WriteString(n.Value) }

func (p *printer) VisitString(n *ast.String) {
	q := string(n.Quote)
	p.w.WriteString(q + n.Value + q)
}

func (p *printer) VisitStringTemplate(n *ast.StringTemplate) {
	_ = p.w.WriteByte('`')
	for i, part := range n.Parts {
		if i > 0 {
			p.w.WriteString(", ")
		}
		p.inner(part)
	}
	_ = p.w.WriteByte('`')
}

func (p *printer) VisitPrefixUnary(n *ast.PrefixUnary) {
	p.w.WriteString(n.Op.Symbol)
	if n.Operand.Kind() == ast.KindPrefixUnary {
		// "- -x" must not lex as "--x"
		p.w.Space()
	}
	p.operand(n.Operand, n.Operand.Kind() == ast.KindBinary || absorbs(n.Operand))
}

func (p *printer) VisitSuffixUnary(n *ast.SuffixUnary) {
	k := n.Operand.Kind()
	p.operand(n.Operand, k == ast.KindBinary || k == ast.KindPrefixUnary || absorbs(n.Operand))
	p.w.WriteString(n.Op.Symbol)
}

func (p *printer) VisitBinary(n *ast.Binary) {
	p.operand(n.Left, needParens(n.Op, n.Left, true))
	p.w.WriteString(" " + n.Op.Symbol + " ")
	p.operand(n.Right, needParens(n.Op, n.Right, false))
}

func (p *printer) VisitIf(n *ast.If) {
	p.w.WriteString("if ")
	p.ifPart(n.Cond, true)
	p.w.WriteString(" then ")
	p.ifPart(n.Then, n.Else != nil)
	if n.Else != nil {
		p.w.WriteString(" else ")
		p.ifPart(n.Else, false)
	}
}

// ifPart prints a condition or branch. A nested if that is followed by
// more of the outer one is braced so it cannot take the outer else.
func (p *printer) ifPart(n ast.Node, followed bool) {
	switch {
	case n.Kind() == ast.KindBlock:
		p.braced(n.(*ast.Block).Stmts)
	case followed && n.Kind() == ast.KindIf:
		p.braced([]ast.Node{n})
	case followed:
		p.inner(n)
	default:
		p.node(n)
	}
}

func (p *printer) VisitBlock(n *ast.Block) {
	p.braced(n.Stmts)
}

func (p *printer) operand(n ast.Node, parens bool) {
	if !parens {
		p.inner(n)
		return
	}
	_ = p.w.WriteByte('(')
	p.inner(n)
	_ = p.w.WriteByte(')')
}

// needParens reports whether operand e of op must be parenthesized to
// parse back into the same tree.
func needParens(op *operator.Operator, e ast.Node, left bool) bool {
	if b, ok := e.(*ast.Binary); ok {
		if b.Op.Priority != op.Priority {
			return b.Op.Priority > op.Priority
		}
		return left == (op.Assoc == operator.Right)
	}
	return absorbs(e)
}

// absorbs reports whether e ends in an open body that would swallow
// whatever is printed after it.
func absorbs(e ast.Node) bool {
	switch e.Kind() {
	case ast.KindIf, ast.KindFunction, ast.KindBlock:
		return true
	}
	return false
}

func isAtom(e ast.Node) bool {
	switch e.Kind() {
	case ast.KindReference, ast.KindNumber, ast.KindString, ast.KindStringTemplate:
		return true
	}
	return false
}
