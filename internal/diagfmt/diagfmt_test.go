package diagfmt

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"yapl/internal/ast"
	"yapl/internal/diag"
	"yapl/internal/parser"
	"yapl/internal/source"
	"yapl/internal/token"
)

func bagOf(ds ...*diag.Diagnostic) *diag.Bag {
	bag := diag.NewBag(0)
	for _, d := range ds {
		bag.Add(d)
	}
	return bag
}

func renderPretty(t *testing.T, bag *diag.Bag, opts PrettyOpts) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Pretty(&buf, bag, opts); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	return buf.String()
}

func TestPrettyCarets(t *testing.T) {
	multi := "fun f() {\n    a\n    b\n    c\n  }\n"
	tests := []struct {
		name       string
		src        string
		sev        diag.Severity
		code       diag.Code
		msg        string
		start, end uint32
		context    int
		want       string
	}{
		{
			name: "point",
			src:  "val x = f(a\n",
			sev:  diag.SevError, code: diag.SynExpectToken, msg: "expected ')'",
			start: 11, end: 11,
			want: "error[SYN2001]: expected ')'\n" +
				" --> test.yp:1:12\n" +
				"  |\n" +
				"1 | val x = f(a\n" +
				"  |            ^\n",
		},
		{
			name: "wide characters and context",
			src:  "val a = 1\nval 名前 = bad\nval c = 3\n",
			sev:  diag.SevWarning, code: diag.SynUnexpectedToken, msg: "unexpected token",
			start: 23, end: 26,
			context: 1,
			want: "warning[SYN2008]: unexpected token\n" +
				" --> test.yp:2:10\n" +
				"  |\n" +
				"1 | val a = 1\n" +
				"2 | val 名前 = bad\n" +
				"  |            ^~~\n" +
				"3 | val c = 3\n",
		},
		{
			name: "multi-line range elides the middle",
			src:  multi,
			sev:  diag.SevError, code: diag.SynInternal, msg: "boom",
			start: 4, end: 31,
			want: "error[SYN2999]: boom\n" +
				" --> test.yp:1:5\n" +
				"  |\n" +
				"1 | fun f() {\n" +
				"  |     ^~~~~\n" +
				"2 |     a\n" +
				"...\n" +
				"5 |   }\n" +
				"  | ~~^\n",
		},
		{
			name: "two-line range",
			src:  "val x = (1 +\n  2)\n",
			sev:  diag.SevError, code: diag.SynExpectExpression, msg: "expression expected",
			start: 8, end: 17,
			want: "error[SYN2002]: expression expected\n" +
				" --> test.yp:1:9\n" +
				"  |\n" +
				"1 | val x = (1 +\n" +
				"  |         ^~~~\n" +
				"2 |   2)\n" +
				"  | ~~~^\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := source.NewVirtualFile("test.yp", tt.src)
			d := diag.New(tt.sev, tt.code, source.SpanOf(f, tt.start, tt.end), tt.msg)
			got := renderPretty(t, bagOf(d), PrettyOpts{Context: tt.context})
			if got != tt.want {
				t.Fatalf("output mismatch\n got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestPrettyNotesAndSeparation(t *testing.T) {
	f := source.NewVirtualFile("test.yp", "class A extends B, C\n")
	d := diag.NewError(diag.SynMultipleSuperclasses, source.SpanOf(f, 19, 20), "more than one superclass").
		WithNote(source.SpanOf(f, 16, 17), "first superclass here")
	other := diag.NewError(diag.SynExpectName, source.Span{}, "name expected")

	got := renderPretty(t, bagOf(d, other), PrettyOpts{ShowNotes: true})
	want := "error[SYN2009]: more than one superclass\n" +
		" --> test.yp:1:20\n" +
		"  |\n" +
		"1 | class A extends B, C\n" +
		"  |                    ^\n" +
		"  = note: first superclass here at test.yp:1:17\n" +
		"\n" +
		"error[SYN2005]: name expected\n"
	if got != want {
		t.Fatalf("output mismatch\n got:\n%s\nwant:\n%s", got, want)
	}

	if hidden := renderPretty(t, bagOf(d), PrettyOpts{}); strings.Contains(hidden, "note:") {
		t.Fatalf("notes rendered without ShowNotes:\n%s", hidden)
	}
}

func TestPrettyColor(t *testing.T) {
	f := source.NewVirtualFile("test.yp", "x\n")
	bag := bagOf(diag.NewError(diag.LexUnknownChar, source.SpanOf(f, 0, 1), "unexpected character"))
	if got := renderPretty(t, bag, PrettyOpts{Color: true}); !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected escape sequences, got %q", got)
	}
	if got := renderPretty(t, bag, PrettyOpts{}); strings.Contains(got, "\x1b[") {
		t.Fatalf("unexpected escape sequences in %q", got)
	}
}

func TestPrettyTabs(t *testing.T) {
	f := source.NewVirtualFile("test.yp", "\tx ?\n")
	bag := bagOf(diag.NewError(diag.LexUnknownChar, source.SpanOf(f, 3, 4), "unexpected character"))
	got := renderPretty(t, bag, PrettyOpts{TabWidth: 2})
	if !strings.Contains(got, "1 |   x ?\n  |     ^\n") {
		t.Fatalf("tabs not expanded consistently:\n%s", got)
	}
}

func TestJSON(t *testing.T) {
	f := source.NewVirtualFile("test.yp", "val x = ?\nval y\n")
	first := diag.NewError(diag.SynExpectExpression, source.SpanOf(f, 8, 9), "expression expected").
		WithNote(source.SpanOf(f, 0, 3), "in this value")
	second := diag.NewError(diag.SynExpectToken, source.SpanOf(f, 15, 15), "expected '='")

	var buf bytes.Buffer
	if err := JSON(&buf, bagOf(first, second), JSONOpts{IncludePositions: true, IncludeNotes: true, Max: 1}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("Max not applied: %+v", out)
	}
	got := out.Diagnostics[0]
	wantLoc := LocationJSON{File: "test.yp", StartByte: 8, EndByte: 9, StartLine: 1, StartCol: 9, EndLine: 1, EndCol: 10}
	if got.Code != "SYN2002" || got.Severity != "ERROR" || got.Location != wantLoc {
		t.Fatalf("unexpected diagnostic %+v", got)
	}
	if len(got.Notes) != 1 || got.Notes[0].Message != "in this value" {
		t.Fatalf("unexpected notes %+v", got.Notes)
	}

	plain := BuildDiagnosticsOutput(bagOf(first), JSONOpts{})
	if plain.Diagnostics[0].Location.StartLine != 0 || plain.Diagnostics[0].Notes != nil {
		t.Fatalf("positions or notes leaked into plain output: %+v", plain.Diagnostics[0])
	}
}

func TestFormatTokens(t *testing.T) {
	f := source.NewVirtualFile("test.yp", "val x")
	tokens := []token.Token{
		{Kind: token.Keyword, Span: source.SpanOf(f, 0, 3), Text: "val", Value: "val"},
		{Kind: token.Whitespace, Span: source.SpanOf(f, 3, 4), Text: " ", Value: " "},
		{Kind: token.Ident, Span: source.SpanOf(f, 4, 5), Text: "x", Value: "x"},
		{Kind: token.EOF, Span: source.SpanOf(f, 5, 5)},
		{Kind: token.EOF, Span: source.SpanOf(f, 5, 5)},
	}

	var pretty bytes.Buffer
	if err := FormatTokensPretty(&pretty, tokens); err != nil {
		t.Fatal(err)
	}
	want := "  1: Keyword         \"val\" at 1:1-1:4\n" +
		"  2: Whitespace      \" \" at 1:4-1:5\n" +
		"  3: Ident           \"x\" at 1:5-1:6\n" +
		"  4: EOF             at 1:6-1:6\n"
	if pretty.String() != want {
		t.Fatalf("pretty tokens\n got:\n%s\nwant:\n%s", pretty.String(), want)
	}

	var raw bytes.Buffer
	if err := FormatTokensJSON(&raw, tokens); err != nil {
		t.Fatal(err)
	}
	var decoded []TokenOutput
	if err := json.Unmarshal(raw.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 4 {
		t.Fatalf("got %d tokens, want 4 (stop at first EOF)", len(decoded))
	}
	if decoded[2] != (TokenOutput{Kind: "Ident", Text: "x", Span: SpanJSON{Start: 4, End: 5, Line: 1, Col: 5}}) {
		t.Fatalf("unexpected token %+v", decoded[2])
	}
}

func parse(t *testing.T, src string) *ast.Package {
	t.Helper()
	bag := diag.NewBag(0)
	pkg, err := parser.ParseFile(context.Background(), source.NewVirtualFile("test.yp", src), parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return pkg
}

func TestFormatASTTree(t *testing.T) {
	pkg := parse(t, "package demo\nval x = 1")
	var buf bytes.Buffer
	if err := FormatASTTree(&buf, pkg); err != nil {
		t.Fatal(err)
	}
	want := "Package name=\"demo\" (1:1-2:10)\n" +
		"└─ Val (2:1-2:10)\n" +
		"   ├─ Identifier name=\"x\" (2:5-2:6)\n" +
		"   └─ Number value=\"1\" (2:9-2:10)\n"
	if buf.String() != want {
		t.Fatalf("tree\n got:\n%s\nwant:\n%s", buf.String(), want)
	}

	if err := FormatASTTree(&buf, nil); err == nil {
		t.Fatal("expected an error for a nil package")
	}
}

func TestFormatASTTreeNesting(t *testing.T) {
	pkg := parse(t, "fun f(a: Int) = a + 1\nval y = 2\n")
	var buf bytes.Buffer
	if err := FormatASTTree(&buf, pkg); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	var labels []string
	for _, l := range lines {
		labels = append(labels, strings.TrimRight(l[:strings.Index(l, " (")], " "))
	}
	want := []string{
		"Package",
		"├─ Function",
		"│  ├─ Identifier name=\"f\"",
		"│  ├─ FunctionArgument",
		"│  │  ├─ Identifier name=\"a\"",
		"│  │  └─ NamedTypeRef",
		"│  │     └─ TypeName name=\"Int\"",
		"│  └─ Binary op=\"+\"",
		"│     ├─ Reference",
		"│     │  └─ Identifier name=\"a\"",
		"│     └─ Number value=\"1\"",
		"└─ Val",
		"   ├─ Identifier name=\"y\"",
		"   └─ Number value=\"2\"",
	}
	if strings.Join(labels, "\n") != strings.Join(want, "\n") {
		t.Fatalf("tree\n got:\n%s\nwant:\n%s", strings.Join(labels, "\n"), strings.Join(want, "\n"))
	}
}

func TestFormatASTJSON(t *testing.T) {
	pkg := parse(t, "val y = a * b\n")
	var buf bytes.Buffer
	if err := FormatASTJSON(&buf, pkg); err != nil {
		t.Fatal(err)
	}
	var root ASTNodeOutput
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if root.Type != "Package" || len(root.Children) != 1 {
		t.Fatalf("unexpected root %+v", root)
	}
	val := root.Children[0]
	if val.Type != "Val" || len(val.Children) != 2 {
		t.Fatalf("unexpected val %+v", val)
	}
	bin := val.Children[1]
	if bin.Type != "Binary" || bin.Fields["op"] != "*" || bin.Span.Start != 8 || bin.Span.End != 13 {
		t.Fatalf("unexpected binary %+v", bin)
	}

	var again bytes.Buffer
	if err := FormatASTJSON(&again, pkg); err != nil {
		t.Fatal(err)
	}
	if again.String() != buf.String() {
		t.Fatal("JSON dump is not stable")
	}
}
