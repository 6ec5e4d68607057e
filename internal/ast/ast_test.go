package ast

import (
	"strings"
	"testing"

	"yapl/internal/operator"
)

func ident(name string) *Identifier { return &Identifier{Name: name} }

func ref(name string) *Reference { return &Reference{Name: ident(name)} }

func num(v string) *Number { return &Number{Value: v} }

func binary(sym string, l, r Expr) *Binary {
	op, ok := operator.Lookup(sym, operator.Binary)
	if !ok {
		panic("unknown operator " + sym)
	}
	return &Binary{Op: op, Left: l, Right: r}
}

func sampleTree() *Package {
	named := &NamedTypeRef{Name: &TypeName{Name: "Int"}}
	fn := &Function{
		Mods: []*Modifier{{Value: "export"}},
		Name: ident("add"),
		Args: []*FunctionArgument{
			{Name: ident("a"), Type: named},
		},
		Returns: []TypeRef{&NamedTypeRef{Name: &TypeName{Name: "Int"}}},
		Body:    binary("+", ref("a"), num("1")),
	}
	val := &Val{ValueDecl: ValueDecl{Name: ident("x"), Init: num("2")}}
	return &Package{Name: "demo", Body: []Node{&Use{Path: "std.io"}, fn, val}}
}

type kindCounter struct {
	NopVisitor
	seen []Kind
}

func (c *kindCounter) record(n Node) {
	c.seen = append(c.seen, n.Kind())
	Walk(c, n)
}

func (c *kindCounter) VisitPackage(n *Package)                   { c.record(n) }
func (c *kindCounter) VisitUse(n *Use)                           { c.record(n) }
func (c *kindCounter) VisitFunction(n *Function)                 { c.record(n) }
func (c *kindCounter) VisitFunctionArgument(n *FunctionArgument) { c.record(n) }
func (c *kindCounter) VisitModifier(n *Modifier)                 { c.record(n) }
func (c *kindCounter) VisitIdentifier(n *Identifier)             { c.record(n) }
func (c *kindCounter) VisitNamedTypeRef(n *NamedTypeRef)         { c.record(n) }
func (c *kindCounter) VisitTypeName(n *TypeName)                 { c.record(n) }
func (c *kindCounter) VisitBinary(n *Binary)                     { c.record(n) }
func (c *kindCounter) VisitReference(n *Reference)               { c.record(n) }
func (c *kindCounter) VisitNumber(n *Number)                     { c.record(n) }
func (c *kindCounter) VisitVal(n *Val)                           { c.record(n) }

func TestWalkOrder(t *testing.T) {
	c := &kindCounter{}
	Dispatch(c, sampleTree())

	want := []Kind{
		KindPackage,
		KindUse,
		KindFunction, KindModifier, KindIdentifier,
		KindFunctionArgument, KindIdentifier, KindNamedTypeRef, KindTypeName,
		KindNamedTypeRef, KindTypeName,
		KindBinary, KindReference, KindIdentifier, KindNumber,
		KindVal, KindIdentifier, KindNumber,
	}
	if len(c.seen) != len(want) {
		t.Fatalf("visited %d nodes, want %d: %v", len(c.seen), len(want), c.seen)
	}
	for i := range want {
		if c.seen[i] != want[i] {
			t.Errorf("node %d: got %s, want %s", i, c.seen[i], want[i])
		}
	}
}

type oneHandler struct {
	NopVisitor
	calls map[string]int
}

func (h *oneHandler) VisitNumber(*Number)       { h.calls["number"]++ }
func (h *oneHandler) VisitReference(*Reference) { h.calls["reference"]++ }
func (h *oneHandler) VisitBinary(*Binary)       { h.calls["binary"]++ }

func TestDispatchSelectsOneMethod(t *testing.T) {
	h := &oneHandler{calls: map[string]int{}}
	Dispatch(h, num("1"))
	Dispatch(h, binary("*", ref("a"), num("2")))
	Dispatch(h, nil)

	if h.calls["number"] != 1 || h.calls["binary"] != 1 || h.calls["reference"] != 0 {
		t.Fatalf("unexpected dispatch counts: %v", h.calls)
	}
}

func TestChildrenSkipsAbsent(t *testing.T) {
	v := &Var{ValueDecl: ValueDecl{Name: ident("y")}}
	if got := Children(v); len(got) != 1 || got[0].Kind() != KindIdentifier {
		t.Fatalf("Children(var y) = %v", got)
	}
	fn := &Function{}
	if got := Children(fn); len(got) != 0 {
		t.Fatalf("Children(anonymous fun) = %v, want none", got)
	}
	call := &Call{Callee: ref("f"), Suffix: &Block{}}
	got := Children(call)
	if len(got) != 2 || got[1].Kind() != KindBlock {
		t.Fatalf("Children(call) = %v", got)
	}
}

func TestInspectPrune(t *testing.T) {
	var kinds []string
	Inspect(sampleTree(), func(n Node) bool {
		kinds = append(kinds, n.Kind().String())
		return n.Kind() != KindFunction
	})
	got := strings.Join(kinds, " ")
	want := "Package Use Function Val Identifier Number"
	if got != want {
		t.Fatalf("Inspect order:\n got %s\nwant %s", got, want)
	}
}

func TestSprint(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"binary", binary("+", num("1"), binary("*", num("2"), num("3"))), "Binary(+, Number(1), Binary(*, Number(2), Number(3)))"},
		{"call", &Call{Callee: ref("f"), Parens: true, Args: []*CallArgument{{Value: num("1")}, {Name: ident("k"), Value: ref("v")}}}, "Call(Ref(f), [Number(1), k=Ref(v)])"},
		{"string", &String{Quote: '\'', Value: `a\n`}, `String('a\n')`},
		{"use alias", &Use{Path: "a.b", Alias: "c"}, "Use(a.b as c)"},
		{"val", &Val{ValueDecl: ValueDecl{Mods: []*Modifier{{Value: "export"}}, Name: ident("x")}}, "Val(export x, nil, nil)"},
		{"nil", nil, "nil"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sprint(tt.node); got != tt.want {
				t.Errorf("Sprint = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestModifiersHelpers(t *testing.T) {
	fn := &Function{}
	SetModifiers(fn, []*Modifier{{Value: "export"}, {Value: "final"}})
	if !HasModifier(fn, "final") || HasModifier(fn, "public") {
		t.Fatalf("modifiers = %v", fn.Modifiers())
	}
}
