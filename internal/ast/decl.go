package ast

// Package is the root of a parsed file.
type Package struct {
	Base
	Name string // dotted, "" without a package header
	Body []Node // *Use, *UseAll and Definition nodes
}

// Use imports a dotted path, optionally under an alias.
type Use struct {
	Base
	Path  string
	Alias string
}

// UseAll imports every name of a dotted path: use a.b.*
type UseAll struct {
	Base
	Path string
}

// Identifier is a plain name.
type Identifier struct {
	Base
	Name string
}

// TypeName names a type, possibly dotted.
type TypeName struct {
	Base
	Name string
}

// Modifier is a definition modifier keyword such as public or export.
type Modifier struct {
	Base
	Value string
}

// ValueDecl holds the fields shared by Val and Var.
type ValueDecl struct {
	Mods []*Modifier
	Name *Identifier
	Type TypeRef // nil when omitted
	Init Expr    // nil when omitted
}

// Val is an immutable value declaration.
type Val struct {
	Base
	ValueDecl
}

// Var is a mutable variable declaration.
type Var struct {
	Base
	ValueDecl
}

// Function is a named definition or an anonymous function expression.
type Function struct {
	Base
	Mods    []*Modifier
	Name    *Identifier // nil for anonymous functions
	Args    []*FunctionArgument
	Returns []TypeRef
	Body    Node // nil without a body, a *Block for several statements
}

// FunctionArgument is a single "name: Type" parameter.
type FunctionArgument struct {
	Base
	Name *Identifier
	Type TypeRef
}

// Class declares a class with its members.
type Class struct {
	Base
	Mods       []*Modifier
	Name       *TypeName
	Super      TypeRef // nil without extends
	Interfaces []TypeRef
	Members    []Definition
}

// Interface declares an interface with its members.
type Interface struct {
	Base
	Mods    []*Modifier
	Name    *TypeName
	Supers  []TypeRef
	Members []Definition
}

func (n *Package) Kind() Kind          { return KindPackage }
func (n *Use) Kind() Kind              { return KindUse }
func (n *UseAll) Kind() Kind           { return KindUseAll }
func (n *Identifier) Kind() Kind       { return KindIdentifier }
func (n *TypeName) Kind() Kind         { return KindTypeName }
func (n *Modifier) Kind() Kind         { return KindModifier }
func (n *Val) Kind() Kind              { return KindVal }
func (n *Var) Kind() Kind              { return KindVar }
func (n *Function) Kind() Kind         { return KindFunction }
func (n *FunctionArgument) Kind() Kind { return KindFunctionArgument }
func (n *Class) Kind() Kind            { return KindClass }
func (n *Interface) Kind() Kind        { return KindInterface }

func (n *Val) Modifiers() []*Modifier       { return n.Mods }
func (n *Var) Modifiers() []*Modifier       { return n.Mods }
func (n *Function) Modifiers() []*Modifier  { return n.Mods }
func (n *Class) Modifiers() []*Modifier     { return n.Mods }
func (n *Interface) Modifiers() []*Modifier { return n.Mods }

func (*Val) definitionNode()       {}
func (*Var) definitionNode()       {}
func (*Function) definitionNode()  {}
func (*Class) definitionNode()     {}
func (*Interface) definitionNode() {}
