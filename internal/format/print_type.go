package format

import "yapl/internal/ast"

func (p *printer) VisitNamedTypeRef(n *ast.NamedTypeRef) {
	p.node(n.Name)
}

func (p *printer) VisitLambdaTypeRef(n *ast.LambdaTypeRef) {
	p.inner(n.Func)
}

func (p *printer) VisitArrayTypeRef(n *ast.ArrayTypeRef) {
	_ = p.w.WriteByte('[')
	for i, d := range n.Dims {
		if i > 0 {
			p.w.WriteString(", ")
		}
		p.inner(d)
	}
	_ = p.w.WriteByte(']')
	p.inner(n.Target)
}
