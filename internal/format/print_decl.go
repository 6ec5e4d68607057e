package format

import (
	"yapl/internal/ast"
	"yapl/internal/token"
)

func (p *printer) VisitPackage(n *ast.Package) {
	if n.Name != "" {
		p.w.WriteString("package " + n.Name)
		p.w.Newline()
	}
	var prev ast.Node
	for _, item := range n.Body {
		if prev != nil || n.Name != "" {
			if !grouped(prev, item) {
				p.w.BlankLine()
			}
		}
		p.leadingComments(item)
		p.node(item)
		p.w.Newline()
		prev = item
	}
	if !p.opt.KeepComments {
		return
	}
	for _, tok := range n.Trivia() {
		if tok.Kind == token.Comment {
			p.comment(tok)
		}
	}
}

// grouped reports whether b stays on the line right after a: runs of
// uses and runs of values are not separated by blank lines.
func grouped(a, b ast.Node) bool {
	if a == nil {
		return false
	}
	isUse := func(n ast.Node) bool { return n.Kind() == ast.KindUse || n.Kind() == ast.KindUseAll }
	isValue := func(n ast.Node) bool { return n.Kind() == ast.KindVal || n.Kind() == ast.KindVar }
	return (isUse(a) && isUse(b)) || (isValue(a) && isValue(b))
}

func (p *printer) VisitUse(n *ast.Use) {
	p.w.WriteString("use " + n.Path)
	if n.Alias != "" {
		p.w.WriteString(" as " + n.Alias)
	}
}

func (p *printer) VisitUseAll(n *ast.UseAll) {
	p.w.WriteString("use " + n.Path + ".*")
}

func (p *printer) VisitIdentifier(n *ast.Identifier) { p.w.WriteString(n.Name) }
func (p *printer) VisitTypeName(n *ast.TypeName)     { p.w.WriteString(n.Name) }
func (p *printer) VisitModifier(n *ast.Modifier)     { p.w.WriteString(n.Value) }

func (p *printer) modifiers(mods []*ast.Modifier) {
	for _, m := range mods {
		p.node(m)
		p.w.Space()
	}
}

func (p *printer) VisitVal(n *ast.Val) { p.valueDecl("val", &n.ValueDecl) }
func (p *printer) VisitVar(n *ast.Var) { p.valueDecl("var", &n.ValueDecl) }

func (p *printer) valueDecl(word string, d *ast.ValueDecl) {
	p.modifiers(d.Mods)
	p.w.WriteString(word)
	p.w.Space()
	p.node(d.Name)
	if d.Type != nil {
		p.w.WriteString(": ")
		p.inner(d.Type)
	}
	if d.Init == nil {
		return
	}
	p.w.WriteString(" =")
	if b, ok := d.Init.(*ast.Block); ok && len(b.Stmts) > 1 {
		p.block(b.Stmts)
		return
	}
	p.w.Space()
	p.node(d.Init)
}

func (p *printer) VisitFunction(n *ast.Function) {
	p.modifiers(n.Mods)
	p.w.WriteString("fun")
	if n.Name != nil {
		p.w.Space()
		p.node(n.Name)
	}
	_ = p.w.WriteByte('(')
	for i, a := range n.Args {
		if i > 0 {
			p.w.WriteString(", ")
		}
		p.node(a)
	}
	_ = p.w.WriteByte(')')

	switch len(n.Returns) {
	case 0:
	case 1:
		p.w.WriteString(": ")
		p.inner(n.Returns[0])
	default:
		p.w.WriteString(": (")
		for i, r := range n.Returns {
			if i > 0 {
				p.w.WriteString(", ")
			}
			p.inner(r)
		}
		_ = p.w.WriteByte(')')
	}

	switch body := n.Body.(type) {
	case nil:
	case *ast.Block:
		p.block(body.Stmts)
	default:
		p.w.WriteString(" = ")
		p.node(body)
	}
}

func (p *printer) VisitFunctionArgument(n *ast.FunctionArgument) {
	p.node(n.Name)
	p.w.WriteString(": ")
	p.inner(n.Type)
}

func (p *printer) VisitClass(n *ast.Class) {
	p.modifiers(n.Mods)
	p.w.WriteString("class ")
	p.node(n.Name)
	if n.Super != nil {
		p.w.WriteString(" extends ")
		p.inner(n.Super)
	}
	if len(n.Interfaces) > 0 {
		p.w.WriteString(" implements ")
		p.typeList(n.Interfaces)
	}
	p.members(n.Members)
}

func (p *printer) VisitInterface(n *ast.Interface) {
	p.modifiers(n.Mods)
	p.w.WriteString("interface ")
	p.node(n.Name)
	if len(n.Supers) > 0 {
		p.w.WriteString(" extends ")
		p.typeList(n.Supers)
	}
	p.members(n.Members)
}

func (p *printer) members(defs []ast.Definition) {
	if len(defs) == 0 {
		return
	}
	stmts := make([]ast.Node, len(defs))
	for i, d := range defs {
		stmts[i] = d
	}
	p.block(stmts)
}

func (p *printer) typeList(types []ast.TypeRef) {
	for i, t := range types {
		if i > 0 {
			p.w.WriteString(", ")
		}
		p.inner(t)
	}
}
