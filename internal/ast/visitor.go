package ast

// Visitor has one method per node type. Dispatch selects the method.
type Visitor interface {
	VisitPackage(*Package)
	VisitUse(*Use)
	VisitUseAll(*UseAll)
	VisitIdentifier(*Identifier)
	VisitTypeName(*TypeName)
	VisitNamedTypeRef(*NamedTypeRef)
	VisitLambdaTypeRef(*LambdaTypeRef)
	VisitArrayTypeRef(*ArrayTypeRef)
	VisitModifier(*Modifier)
	VisitVal(*Val)
	VisitVar(*Var)
	VisitFunction(*Function)
	VisitFunctionArgument(*FunctionArgument)
	VisitClass(*Class)
	VisitInterface(*Interface)
	VisitCall(*Call)
	VisitCallArgument(*CallArgument)
	VisitReference(*Reference)
	VisitNumber(*Number)
	VisitString(*String)
	VisitStringTemplate(*StringTemplate)
	VisitPrefixUnary(*PrefixUnary)
	VisitSuffixUnary(*SuffixUnary)
	VisitBinary(*Binary)
	VisitIf(*If)
	VisitBlock(*Block)
}

// Dispatch calls the Visitor method matching n's kind. A nil n is ignored.
func Dispatch(v Visitor, n Node) {
	if n == nil {
		return
	}
	switch n.Kind() {
	case KindPackage:
		v.VisitPackage(n.(*Package))
	case KindUse:
		v.VisitUse(n.(*Use))
	case KindUseAll:
		v.VisitUseAll(n.(*UseAll))
	case KindIdentifier:
		v.VisitIdentifier(n.(*Identifier))
	case KindTypeName:
		v.VisitTypeName(n.(*TypeName))
	case KindNamedTypeRef:
		v.VisitNamedTypeRef(n.(*NamedTypeRef))
	case KindLambdaTypeRef:
		v.VisitLambdaTypeRef(n.(*LambdaTypeRef))
	case KindArrayTypeRef:
		v.VisitArrayTypeRef(n.(*ArrayTypeRef))
	case KindModifier:
		v.VisitModifier(n.(*Modifier))
	case KindVal:
		v.VisitVal(n.(*Val))
	case KindVar:
		v.VisitVar(n.(*Var))
	case KindFunction:
		v.VisitFunction(n.(*Function))
	case KindFunctionArgument:
		v.VisitFunctionArgument(n.(*FunctionArgument))
	case KindClass:
		v.VisitClass(n.(*Class))
	case KindInterface:
		v.VisitInterface(n.(*Interface))
	case KindCall:
		v.VisitCall(n.(*Call))
	case KindCallArgument:
		v.VisitCallArgument(n.(*CallArgument))
	case KindReference:
		v.VisitReference(n.(*Reference))
	case KindNumber:
		v.VisitNumber(n.(*Number))
	case KindString:
		v.VisitString(n.(*String))
	case KindStringTemplate:
		v.VisitStringTemplate(n.(*StringTemplate))
	case KindPrefixUnary:
		v.VisitPrefixUnary(n.(*PrefixUnary))
	case KindSuffixUnary:
		v.VisitSuffixUnary(n.(*SuffixUnary))
	case KindBinary:
		v.VisitBinary(n.(*Binary))
	case KindIf:
		v.VisitIf(n.(*If))
	case KindBlock:
		v.VisitBlock(n.(*Block))
	}
}

// NopVisitor implements every Visitor method as a no-op. Embed it to
// override only the methods of interest.
type NopVisitor struct{}

func (NopVisitor) VisitPackage(*Package)                   {}
func (NopVisitor) VisitUse(*Use)                           {}
func (NopVisitor) VisitUseAll(*UseAll)                     {}
func (NopVisitor) VisitIdentifier(*Identifier)             {}
func (NopVisitor) VisitTypeName(*TypeName)                 {}
func (NopVisitor) VisitNamedTypeRef(*NamedTypeRef)         {}
func (NopVisitor) VisitLambdaTypeRef(*LambdaTypeRef)       {}
func (NopVisitor) VisitArrayTypeRef(*ArrayTypeRef)         {}
func (NopVisitor) VisitModifier(*Modifier)                 {}
func (NopVisitor) VisitVal(*Val)                           {}
func (NopVisitor) VisitVar(*Var)                           {}
func (NopVisitor) VisitFunction(*Function)                 {}
func (NopVisitor) VisitFunctionArgument(*FunctionArgument) {}
func (NopVisitor) VisitClass(*Class)                       {}
func (NopVisitor) VisitInterface(*Interface)               {}
func (NopVisitor) VisitCall(*Call)                         {}
func (NopVisitor) VisitCallArgument(*CallArgument)         {}
func (NopVisitor) VisitReference(*Reference)               {}
func (NopVisitor) VisitNumber(*Number)                     {}
func (NopVisitor) VisitString(*String)                     {}
func (NopVisitor) VisitStringTemplate(*StringTemplate)     {}
func (NopVisitor) VisitPrefixUnary(*PrefixUnary)           {}
func (NopVisitor) VisitSuffixUnary(*SuffixUnary)           {}
func (NopVisitor) VisitBinary(*Binary)                     {}
func (NopVisitor) VisitIf(*If)                             {}
func (NopVisitor) VisitBlock(*Block)                       {}
