package ast

// NamedTypeRef refers to a type by name.
type NamedTypeRef struct {
	Base
	Name *TypeName
}

// LambdaTypeRef is a function type: fun(x: A): B
type LambdaTypeRef struct {
	Base
	Func *Function
}

// ArrayTypeRef is [dims]Target; Dims may be empty.
type ArrayTypeRef struct {
	Base
	Dims   []Expr
	Target TypeRef
}

func (n *NamedTypeRef) Kind() Kind  { return KindNamedTypeRef }
func (n *LambdaTypeRef) Kind() Kind { return KindLambdaTypeRef }
func (n *ArrayTypeRef) Kind() Kind  { return KindArrayTypeRef }

func (*NamedTypeRef) typeRefNode()  {}
func (*LambdaTypeRef) typeRefNode() {}
func (*ArrayTypeRef) typeRefNode()  {}
