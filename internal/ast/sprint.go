package ast

import (
	"strings"
)

// Sprint renders n as a compact, span-free term such as
// Binary(+, Number(1), Binary(*, Number(2), Number(3))).
// Two trees with the same structure render the same text.
func Sprint(n Node) string {
	p := &sprinter{}
	p.node(n)
	return p.sb.String()
}

// Equal reports whether a and b have the same structure, ignoring spans
// and trivia.
func Equal(a, b Node) bool {
	return Sprint(a) == Sprint(b)
}

type sprinter struct {
	sb strings.Builder
}

func (p *sprinter) node(n Node) {
	if n == nil {
		p.sb.WriteString("nil")
		return
	}
	Dispatch(p, n)
}

func (p *sprinter) open(name string) {
	p.sb.WriteString(name)
	p.sb.WriteByte('(')
}

func (p *sprinter) sep() { p.sb.WriteString(", ") }

func (p *sprinter) close() { p.sb.WriteByte(')') }

func (p *sprinter) word(name, value string) {
	p.open(name)
	p.sb.WriteString(value)
	p.close()
}

func (p *sprinter) list(items []Node) {
	p.sb.WriteByte('[')
	for i, it := range items {
		if i > 0 {
			p.sep()
		}
		p.node(it)
	}
	p.sb.WriteByte(']')
}

func nodes[T Node](items []T) []Node {
	out := make([]Node, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

func (p *sprinter) mods(mods []*Modifier) {
	for _, m := range mods {
		p.sb.WriteString(m.Value)
		p.sb.WriteByte(' ')
	}
}

func (p *sprinter) ident(id *Identifier) {
	if id == nil {
		p.sb.WriteString("_")
		return
	}
	p.sb.WriteString(id.Name)
}

func (p *sprinter) VisitPackage(n *Package) {
	p.open("Package")
	p.sb.WriteString(n.Name)
	p.sep()
	p.list(n.Body)
	p.close()
}

func (p *sprinter) VisitUse(n *Use) {
	v := n.Path
	if n.Alias != "" {
		v += " as " + n.Alias
	}
	p.word("Use", v)
}

func (p *sprinter) VisitUseAll(n *UseAll)         { p.word("UseAll", n.Path) }
func (p *sprinter) VisitIdentifier(n *Identifier) { p.word("Identifier", n.Name) }
func (p *sprinter) VisitTypeName(n *TypeName)     { p.word("TypeName", n.Name) }
func (p *sprinter) VisitModifier(n *Modifier)     { p.word("Modifier", n.Value) }
func (p *sprinter) VisitNumber(n *Number)         { p.word("Number", n.Value) }

func (p *sprinter) VisitNamedTypeRef(n *NamedTypeRef) {
	name := ""
	if n.Name != nil {
		name = n.Name.Name
	}
	p.word("Type", name)
}

func (p *sprinter) VisitLambdaTypeRef(n *LambdaTypeRef) {
	p.open("LambdaType")
	p.node(n.Func)
	p.close()
}

func (p *sprinter) VisitArrayTypeRef(n *ArrayTypeRef) {
	p.open("ArrayType")
	p.list(nodes(n.Dims))
	p.sep()
	p.node(n.Target)
	p.close()
}

func (p *sprinter) valueDecl(name string, d *ValueDecl) {
	p.open(name)
	p.mods(d.Mods)
	p.ident(d.Name)
	p.sep()
	p.node(d.Type)
	p.sep()
	p.node(d.Init)
	p.close()
}

func (p *sprinter) VisitVal(n *Val) { p.valueDecl("Val", &n.ValueDecl) }
func (p *sprinter) VisitVar(n *Var) { p.valueDecl("Var", &n.ValueDecl) }

func (p *sprinter) VisitFunction(n *Function) {
	p.open("Function")
	p.mods(n.Mods)
	p.ident(n.Name)
	p.sep()
	p.list(nodes(n.Args))
	p.sep()
	p.list(nodes(n.Returns))
	p.sep()
	p.node(n.Body)
	p.close()
}

func (p *sprinter) VisitFunctionArgument(n *FunctionArgument) {
	p.open("Arg")
	p.ident(n.Name)
	p.sep()
	p.node(n.Type)
	p.close()
}

func (p *sprinter) VisitClass(n *Class) {
	p.open("Class")
	p.mods(n.Mods)
	if n.Name != nil {
		p.sb.WriteString(n.Name.Name)
	}
	p.sep()
	p.node(n.Super)
	p.sep()
	p.list(nodes(n.Interfaces))
	p.sep()
	p.list(nodes(n.Members))
	p.close()
}

func (p *sprinter) VisitInterface(n *Interface) {
	p.open("Interface")
	p.mods(n.Mods)
	if n.Name != nil {
		p.sb.WriteString(n.Name.Name)
	}
	p.sep()
	p.list(nodes(n.Supers))
	p.sep()
	p.list(nodes(n.Members))
	p.close()
}

func (p *sprinter) VisitCall(n *Call) {
	p.open("Call")
	p.node(n.Callee)
	if n.Parens {
		p.sep()
		p.list(nodes(n.Args))
	}
	if n.Suffix != nil {
		p.sb.WriteString(", {")
		p.node(n.Suffix)
		p.sb.WriteByte('}')
	}
	p.close()
}

func (p *sprinter) VisitCallArgument(n *CallArgument) {
	if n.Name != nil {
		p.sb.WriteString(n.Name.Name)
		p.sb.WriteByte('=')
	}
	p.node(n.Value)
}

func (p *sprinter) VisitReference(n *Reference) {
	name := ""
	if n.Name != nil {
		name = n.Name.Name
	}
	p.word("Ref", name)
}

func (p *sprinter) VisitString(n *String) {
	q := string(n.Quote)
	p.word("String", q+n.Value+q)
}

func (p *sprinter) VisitStringTemplate(n *StringTemplate) {
	p.open("Template")
	p.list(nodes(n.Parts))
	p.close()
}

func (p *sprinter) VisitPrefixUnary(n *PrefixUnary) {
	p.open("Prefix")
	p.sb.WriteString(n.Op.Symbol)
	p.sep()
	p.node(n.Operand)
	p.close()
}

func (p *sprinter) VisitSuffixUnary(n *SuffixUnary) {
	p.open("Suffix")
	p.sb.WriteString(n.Op.Symbol)
	p.sep()
	p.node(n.Operand)
	p.close()
}

func (p *sprinter) VisitBinary(n *Binary) {
	p.open("Binary")
	p.sb.WriteString(n.Op.Symbol)
	p.sep()
	p.node(n.Left)
	p.sep()
	p.node(n.Right)
	p.close()
}

func (p *sprinter) VisitIf(n *If) {
	p.open("If")
	p.node(n.Cond)
	p.sep()
	p.node(n.Then)
	p.sep()
	p.node(n.Else)
	p.close()
}

func (p *sprinter) VisitBlock(n *Block) {
	p.open("Block")
	p.list(n.Stmts)
	p.close()
}
