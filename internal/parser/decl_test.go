package parser

import (
	"testing"

	"yapl/internal/ast"
)

func TestTopLevel(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "empty file",
			src:  "",
			want: "Package(, [])",
		},
		{
			name: "package and uses",
			src:  "package a.b\nuse c.d\nuse e.*\nuse f as g\n",
			want: "Package(a.b, [Use(c.d), UseAll(e), Use(f as g)])",
		},
		{
			name: "values",
			src:  "val x = 1\nvar y: Int\nexport const val z: a.b.C = y\n",
			want: "Package(, [Val(x, nil, Number(1)), Var(y, Type(Int), nil), Val(export const z, Type(a.b.C), Ref(y))])",
		},
		{
			name: "function with bare arguments",
			src:  "fun add a: Int, b: Int: Int = a + b\n",
			want: "Package(, [Function(add, [Arg(a, Type(Int)), Arg(b, Type(Int))], [Type(Int)], Binary(+, Ref(a), Ref(b)))])",
		},
		{
			name: "function with several returns",
			src:  "fun pair(): (Int, String) = x\n",
			want: "Package(, [Function(pair, [], [Type(Int), Type(String)], Ref(x))])",
		},
		{
			name: "lambda and array types",
			src:  "val f: fun(x: Int): Int = g\nval a: [3, 4]Int\n",
			want: "Package(, [Val(f, LambdaType(Function(_, [Arg(x, Type(Int))], [Type(Int)], nil)), Ref(g)), Val(a, ArrayType([Number(3), Number(4)], Type(Int)), nil)])",
		},
		{
			name: "class",
			src:  "export class A extends B implements C, D\n    val x: Int = 1\n    fun get(): Int = x\n",
			want: "Package(, [Class(export A, Type(B), [Type(C), Type(D)], [Val(x, Type(Int), Number(1)), Function(get, [], [Type(Int)], Ref(x))])])",
		},
		{
			name: "interface with braces",
			src:  "interface I extends A, B {\n    fun f(): Int\n}\n",
			want: "Package(, [Interface(I, [Type(A), Type(B)], [Function(f, [], [Type(Int)], nil)])])",
		},
		{
			name: "nested function body",
			src:  "fun main()\n    val x = 1\n    print(x)\n\nfun other() = 2\n",
			want: "Package(, [Function(main, [], [], Block([Val(x, nil, Number(1)), Call(Ref(print), [Ref(x)])])), Function(other, [], [], Number(2))])",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := mustParse(t, tt.src)
			if got := ast.Sprint(pkg); got != tt.want {
				t.Errorf("\n got %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestBlockFormsAreEquivalent(t *testing.T) {
	sources := []string{
		"fun f() { x }\n",
		"fun f()\n    x\n",
		"fun f() = x\n",
		"fun f()=x\n",
		"fun f() {\n    x\n}\n",
	}
	const want = "Package(, [Function(f, [], [], Ref(x))])"
	for _, src := range sources {
		if got := ast.Sprint(mustParse(t, src)); got != want {
			t.Errorf("%q:\n got %s\nwant %s", src, got, want)
		}
	}
}

func TestMultiStatementBlockForms(t *testing.T) {
	sources := []string{
		"fun f() { a; b }\n",
		"fun f()\n    a\n    b\n",
		"fun f() {\n    a\n    b\n}\n",
	}
	const want = "Package(, [Function(f, [], [], Block([Ref(a), Ref(b)]))])"
	for _, src := range sources {
		if got := ast.Sprint(mustParse(t, src)); got != want {
			t.Errorf("%q:\n got %s\nwant %s", src, got, want)
		}
	}
}

func TestModifiersAreAttached(t *testing.T) {
	pkg := mustParse(t, "private final fun f() = 1\n")
	fn, ok := pkg.Body[0].(*ast.Function)
	if !ok {
		t.Fatalf("got %T, want *ast.Function", pkg.Body[0])
	}
	if !ast.HasModifier(fn, "private") || !ast.HasModifier(fn, "final") {
		t.Errorf("modifiers = %v", fn.Modifiers())
	}
	if ast.HasModifier(fn, "export") {
		t.Errorf("unexpected export modifier")
	}
	if !fn.Span().Contains(fn.Mods[0].Span()) {
		t.Errorf("function span %s does not cover modifier %s", fn.Span(), fn.Mods[0].Span())
	}
}

func TestStatementsAfterNestedBlocks(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "if with indented branches",
			src:  "fun f()\n    if x then\n        a\n    else\n        b\n    c\n",
			want: "Package(, [Function(f, [], [], Block([If(Ref(x), Ref(a), Ref(b)), Ref(c)]))])",
		},
		{
			name: "operator on the line after a block",
			src:  "fun f()\n    if x then\n        a\n    -c\n",
			want: "Package(, [Function(f, [], [], Block([If(Ref(x), Ref(a), nil), Prefix(-, Ref(c))]))])",
		},
		{
			name: "indented initializer",
			src:  "fun f()\n    val a =\n        x\n    val b = 1\n",
			want: "Package(, [Function(f, [], [], Block([Val(a, nil, Block([Ref(x)])), Val(b, nil, Number(1))]))])",
		},
		{
			name: "indented initializer starting with a prefix operator",
			src:  "fun f()\n    val a =\n        -x\n    val b = 1\n",
			want: "Package(, [Function(f, [], [], Block([Val(a, nil, Block([Prefix(-, Ref(x))])), Val(b, nil, Number(1))]))])",
		},
		{
			name: "top-level initializer block with a prefix operator",
			src:  "val a =\n    -x\n    y\n",
			want: "Package(, [Val(a, nil, Block([Prefix(-, Ref(x)), Ref(y)]))])",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ast.Sprint(mustParse(t, tt.src)); got != tt.want {
				t.Errorf("\n got %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestContinuationLinesStayInBlock(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "trailing binary operator",
			src:  "fun f()\n    val x = 1 +\n        2\n    val y = 3\n",
			want: "Package(, [Function(f, [], [], Block([Val(x, nil, Binary(+, Number(1), Number(2))), Val(y, nil, Number(3))]))])",
		},
		{
			name: "open call parenthesis",
			src:  "fun f()\n    val x = g(\n        2)\n    val y = 3\n",
			want: "Package(, [Function(f, [], [], Block([Val(x, nil, Call(Ref(g), [Number(2)])), Val(y, nil, Number(3))]))])",
		},
		{
			name: "closing parenthesis dedented",
			src:  "fun f()\n    val x = g(\n        2\n    )\n    val y = 3\n",
			want: "Package(, [Function(f, [], [], Block([Val(x, nil, Call(Ref(g), [Number(2)])), Val(y, nil, Number(3))]))])",
		},
		{
			name: "dedent past the continuation",
			src:  "fun f()\n    val x = 1 +\n        2\nval y = 3\n",
			want: "Package(, [Function(f, [], [], Val(x, nil, Binary(+, Number(1), Number(2)))), Val(y, nil, Number(3))])",
		},
		{
			name: "block opened inside a continuation",
			src:  "fun f()\n    val x = g(\n        if a then\n            b\n        )\n    c\n",
			want: "Package(, [Function(f, [], [], Block([Val(x, nil, Call(Ref(g), [If(Ref(a), Ref(b), nil)])), Ref(c)]))])",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ast.Sprint(mustParse(t, tt.src)); got != tt.want {
				t.Errorf("\n got %s\nwant %s", got, tt.want)
			}
		})
	}
}
