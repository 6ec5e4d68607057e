package ast

// Children returns the direct children of n in source order.
// Absent optional children are omitted.
func Children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if c != nil {
			out = append(out, c)
		}
	}
	switch n := n.(type) {
	case *Package:
		out = append(out, n.Body...)
	case *NamedTypeRef:
		if n.Name != nil {
			add(n.Name)
		}
	case *LambdaTypeRef:
		if n.Func != nil {
			add(n.Func)
		}
	case *ArrayTypeRef:
		for _, d := range n.Dims {
			add(d)
		}
		add(n.Target)
	case *Val:
		out = appendValueDecl(out, &n.ValueDecl)
	case *Var:
		out = appendValueDecl(out, &n.ValueDecl)
	case *Function:
		out = appendModifiers(out, n.Mods)
		if n.Name != nil {
			add(n.Name)
		}
		for _, a := range n.Args {
			add(a)
		}
		for _, r := range n.Returns {
			add(r)
		}
		add(n.Body)
	case *FunctionArgument:
		if n.Name != nil {
			add(n.Name)
		}
		add(n.Type)
	case *Class:
		out = appendModifiers(out, n.Mods)
		if n.Name != nil {
			add(n.Name)
		}
		add(n.Super)
		for _, i := range n.Interfaces {
			add(i)
		}
		for _, m := range n.Members {
			add(m)
		}
	case *Interface:
		out = appendModifiers(out, n.Mods)
		if n.Name != nil {
			add(n.Name)
		}
		for _, s := range n.Supers {
			add(s)
		}
		for _, m := range n.Members {
			add(m)
		}
	case *Call:
		add(n.Callee)
		for _, a := range n.Args {
			add(a)
		}
		add(n.Suffix)
	case *CallArgument:
		if n.Name != nil {
			add(n.Name)
		}
		add(n.Value)
	case *Reference:
		if n.Name != nil {
			add(n.Name)
		}
	case *StringTemplate:
		for _, p := range n.Parts {
			add(p)
		}
	case *PrefixUnary:
		add(n.Operand)
	case *SuffixUnary:
		add(n.Operand)
	case *Binary:
		add(n.Left)
		add(n.Right)
	case *If:
		add(n.Cond)
		add(n.Then)
		add(n.Else)
	case *Block:
		for _, s := range n.Stmts {
			add(s)
		}
	}
	return out
}

func appendModifiers(out []Node, mods []*Modifier) []Node {
	for _, m := range mods {
		out = append(out, m)
	}
	return out
}

func appendValueDecl(out []Node, d *ValueDecl) []Node {
	out = appendModifiers(out, d.Mods)
	if d.Name != nil {
		out = append(out, d.Name)
	}
	if d.Type != nil {
		out = append(out, d.Type)
	}
	if d.Init != nil {
		out = append(out, d.Init)
	}
	return out
}

// Walk dispatches v on every child of n. Visitors that want a deep
// traversal call Walk again from their own methods.
func Walk(v Visitor, n Node) {
	for _, c := range Children(n) {
		Dispatch(v, c)
	}
}

// Inspect traverses the tree rooted at n in depth-first order, calling f
// for each node. Children are skipped when f returns false.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, f)
	}
}
