package ast

import (
	"yapl/internal/source"
	"yapl/internal/token"
)

// Kind tags the concrete type of a Node.
type Kind uint8

const (
	KindPackage Kind = iota
	KindUse
	KindUseAll
	KindIdentifier
	KindTypeName
	KindNamedTypeRef
	KindLambdaTypeRef
	KindArrayTypeRef
	KindModifier
	KindVal
	KindVar
	KindFunction
	KindFunctionArgument
	KindClass
	KindInterface
	KindCall
	KindCallArgument
	KindReference
	KindNumber
	KindString
	KindStringTemplate
	KindPrefixUnary
	KindSuffixUnary
	KindBinary
	KindIf
	KindBlock
)

var kindNames = [...]string{
	KindPackage:          "Package",
	KindUse:              "Use",
	KindUseAll:           "UseAll",
	KindIdentifier:       "Identifier",
	KindTypeName:         "TypeName",
	KindNamedTypeRef:     "NamedTypeRef",
	KindLambdaTypeRef:    "LambdaTypeRef",
	KindArrayTypeRef:     "ArrayTypeRef",
	KindModifier:         "Modifier",
	KindVal:              "Val",
	KindVar:              "Var",
	KindFunction:         "Function",
	KindFunctionArgument: "FunctionArgument",
	KindClass:            "Class",
	KindInterface:        "Interface",
	KindCall:             "Call",
	KindCallArgument:     "CallArgument",
	KindReference:        "Reference",
	KindNumber:           "Number",
	KindString:           "String",
	KindStringTemplate:   "StringTemplate",
	KindPrefixUnary:      "PrefixUnary",
	KindSuffixUnary:      "SuffixUnary",
	KindBinary:           "Binary",
	KindIf:               "If",
	KindBlock:            "Block",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Node is implemented by every syntax tree node.
type Node interface {
	Kind() Kind
	Span() source.Span
	// Trivia returns the whitespace-class tokens skipped while the node
	// was parsed and not claimed by one of its children.
	Trivia() []token.Token
	base() *Base
}

// Expr is a node usable as an expression.
type Expr interface {
	Node
	exprNode()
}

// TypeRef is a node usable as a type reference.
type TypeRef interface {
	Node
	typeRefNode()
}

// Definition is a node that may carry modifiers.
type Definition interface {
	Node
	Modifiers() []*Modifier
	definitionNode()
}

// Base carries the location data shared by all nodes.
type Base struct {
	Loc     source.Span
	Skipped []token.Token
}

func (b *Base) Span() source.Span     { return b.Loc }
func (b *Base) Trivia() []token.Token { return b.Skipped }
func (b *Base) base() *Base           { return b }

// Locate back-fills the span and trivia of a freshly built node.
// Only the parser calls it, before the node is attached to its parent.
func Locate(n Node, sp source.Span, trivia []token.Token) {
	b := n.base()
	b.Loc = sp
	b.Skipped = trivia
}

// SetModifiers back-fills the modifier list of a freshly built definition.
func SetModifiers(d Definition, mods []*Modifier) {
	switch d := d.(type) {
	case *Val:
		d.Mods = mods
	case *Var:
		d.Mods = mods
	case *Function:
		d.Mods = mods
	case *Class:
		d.Mods = mods
	case *Interface:
		d.Mods = mods
	}
}

// HasModifier reports whether d carries the modifier word.
func HasModifier(d Definition, word string) bool {
	for _, m := range d.Modifiers() {
		if m.Value == word {
			return true
		}
	}
	return false
}
