package export

import (
	"slices"

	"yapl/internal/ast"
)

// cloner rebuilds a tree node by node. With strip set, function bodies
// are left out of the copy.
type cloner struct {
	strip bool
	out   ast.Node
}

// Clone returns a deep copy of n. Spans are kept; trivia slices are
// copied.
func Clone[T ast.Node](n T) T {
	return iface(&cloner{}, n)
}

// StripBodies returns a deep copy of n in which every function, lambdas
// included, has no body. n itself is not modified.
func StripBodies[T ast.Node](n T) T {
	return iface(&cloner{strip: true}, n)
}

func (c *cloner) node(n ast.Node) ast.Node {
	c.out = nil
	ast.Dispatch(c, n)
	out := c.out
	c.out = nil
	return out
}

func base(b ast.Base) ast.Base {
	return ast.Base{Loc: b.Loc, Skipped: slices.Clone(b.Skipped)}
}

// one copies a child held in a concrete pointer field.
func one[T any, P interface {
	*T
	ast.Node
}](c *cloner, n P) P {
	if n == nil {
		return nil
	}
	return c.node(n).(P)
}

// iface copies a child held in an interface field.
func iface[T ast.Node](c *cloner, n T) T {
	var zero T
	if any(n) == nil {
		return zero
	}
	out, _ := c.node(n).(T)
	return out
}

func each[T ast.Node](c *cloner, xs []T) []T {
	if xs == nil {
		return nil
	}
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		out = append(out, iface(c, x))
	}
	return out
}

func (c *cloner) VisitPackage(n *ast.Package) {
	out := *n
	out.Base = base(n.Base)
	out.Body = each(c, n.Body)
	c.out = &out
}

func (c *cloner) VisitUse(n *ast.Use) {
	out := *n
	out.Base = base(n.Base)
	c.out = &out
}

func (c *cloner) VisitUseAll(n *ast.UseAll) {
	out := *n
	out.Base = base(n.Base)
	c.out = &out
}

func (c *cloner) VisitIdentifier(n *ast.Identifier) {
	out := *n
	out.Base = base(n.Base)
	c.out = &out
}

func (c *cloner) VisitTypeName(n *ast.TypeName) {
	out := *n
	out.Base = base(n.Base)
	c.out = &out
}

func (c *cloner) VisitModifier(n *ast.Modifier) {
	out := *n
	out.Base = base(n.Base)
	c.out = &out
}

func (c *cloner) VisitNamedTypeRef(n *ast.NamedTypeRef) {
	out := *n
	out.Base = base(n.Base)
	out.Name = one(c, n.Name)
	c.out = &out
}

func (c *cloner) VisitLambdaTypeRef(n *ast.LambdaTypeRef) {
	out := *n
	out.Base = base(n.Base)
	out.Func = one(c, n.Func)
	c.out = &out
}

func (c *cloner) VisitArrayTypeRef(n *ast.ArrayTypeRef) {
	out := *n
	out.Base = base(n.Base)
	out.Dims = each(c, n.Dims)
	out.Target = iface(c, n.Target)
	c.out = &out
}

func (c *cloner) valueDecl(d ast.ValueDecl) ast.ValueDecl {
	d.Mods = each(c, d.Mods)
	d.Name = one(c, d.Name)
	d.Type = iface(c, d.Type)
	d.Init = iface(c, d.Init)
	return d
}

func (c *cloner) VisitVal(n *ast.Val) {
	c.out = &ast.Val{Base: base(n.Base), ValueDecl: c.valueDecl(n.ValueDecl)}
}

func (c *cloner) VisitVar(n *ast.Var) {
	c.out = &ast.Var{Base: base(n.Base), ValueDecl: c.valueDecl(n.ValueDecl)}
}

func (c *cloner) VisitFunction(n *ast.Function) {
	out := *n
	out.Base = base(n.Base)
	out.Mods = each(c, n.Mods)
	out.Name = one(c, n.Name)
	out.Args = each(c, n.Args)
	out.Returns = each(c, n.Returns)
	if c.strip {
		out.Body = nil
	} else {
		out.Body = iface(c, n.Body)
	}
	c.out = &out
}

func (c *cloner) VisitFunctionArgument(n *ast.FunctionArgument) {
	out := *n
	out.Base = base(n.Base)
	out.Name = one(c, n.Name)
	out.Type = iface(c, n.Type)
	c.out = &out
}

func (c *cloner) VisitClass(n *ast.Class) {
	out := *n
	out.Base = base(n.Base)
	out.Mods = each(c, n.Mods)
	out.Name = one(c, n.Name)
	out.Super = iface(c, n.Super)
	out.Interfaces = each(c, n.Interfaces)
	out.Members = each(c, n.Members)
	c.out = &out
}

func (c *cloner) VisitInterface(n *ast.Interface) {
	out := *n
	out.Base = base(n.Base)
	out.Mods = each(c, n.Mods)
	out.Name = one(c, n.Name)
	out.Supers = each(c, n.Supers)
	out.Members = each(c, n.Members)
	c.out = &out
}

func (c *cloner) VisitCall(n *ast.Call) {
	out := *n
	out.Base = base(n.Base)
	out.Callee = iface(c, n.Callee)
	out.Args = each(c, n.Args)
	out.Suffix = iface(c, n.Suffix)
	c.out = &out
}

func (c *cloner) VisitCallArgument(n *ast.CallArgument) {
	out := *n
	out.Base = base(n.Base)
	out.Name = one(c, n.Name)
	out.Value = iface(c, n.Value)
	c.out = &out
}

func (c *cloner) VisitReference(n *ast.Reference) {
	out := *n
	out.Base = base(n.Base)
	out.Name = one(c, n.Name)
	c.out = &out
}

func (c *cloner) VisitNumber(n *ast.Number) {
	out := *n
	out.Base = base(n.Base)
	c.out = &out
}

func (c *cloner) VisitString(n *ast.String) {
	out := *n
	out.Base = base(n.Base)
	c.out = &out
}

func (c *cloner) VisitStringTemplate(n *ast.StringTemplate) {
	out := *n
	out.Base = base(n.Base)
	out.Parts = each(c, n.Parts)
	c.out = &out
}

func (c *cloner) VisitPrefixUnary(n *ast.PrefixUnary) {
	out := *n
	out.Base = base(n.Base)
	out.Operand = iface(c, n.Operand)
	c.out = &out
}

func (c *cloner) VisitSuffixUnary(n *ast.SuffixUnary) {
	out := *n
	out.Base = base(n.Base)
	out.Operand = iface(c, n.Operand)
	c.out = &out
}

func (c *cloner) VisitBinary(n *ast.Binary) {
	out := *n
	out.Base = base(n.Base)
	out.Left = iface(c, n.Left)
	out.Right = iface(c, n.Right)
	c.out = &out
}

func (c *cloner) VisitIf(n *ast.If) {
	out := *n
	out.Base = base(n.Base)
	out.Cond = iface(c, n.Cond)
	out.Then = iface(c, n.Then)
	out.Else = iface(c, n.Else)
	c.out = &out
}

func (c *cloner) VisitBlock(n *ast.Block) {
	out := *n
	out.Base = base(n.Base)
	out.Stmts = each(c, n.Stmts)
	c.out = &out
}
