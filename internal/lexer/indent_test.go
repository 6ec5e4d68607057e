package lexer_test

import (
	"testing"

	"yapl/internal/diag"
	"yapl/internal/token"
)

func structural(tokens []token.Token) []token.Kind {
	var out []token.Kind
	for _, tok := range tokens {
		switch tok.Kind {
		case token.Indent, token.Outdent, token.Ident, token.EOF:
			out = append(out, tok.Kind)
		}
	}
	return out
}

func countKind(tokens []token.Token, kind token.Kind) int {
	n := 0
	for _, tok := range tokens {
		if tok.Kind == kind {
			n++
		}
	}
	return n
}

func TestIndentationNested(t *testing.T) {
	input := "a\n  b\n    c\n  d\ne\n"
	lx, rep := makeTestLexer(input)
	tokens := collectAllTokens(t, lx)

	want := []token.Kind{
		token.Ident,
		token.Indent, token.Ident,
		token.Indent, token.Ident,
		token.Outdent, token.Ident,
		token.Outdent, token.Ident,
		token.EOF,
	}
	got := structural(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if countKind(tokens, token.Indent) != countKind(tokens, token.Outdent) {
		t.Error("indent and outdent counts differ")
	}
	if len(rep.diagnostics) != 0 {
		t.Errorf("unexpected diagnostics: %v", rep.messages())
	}
}

func TestIndentationMultiLevelDedent(t *testing.T) {
	lx, _ := makeTestLexer("a\n  b\n    c\nd")
	tokens := collectAllTokens(t, lx)
	got := structural(tokens)
	want := []token.Kind{
		token.Ident, token.Indent, token.Ident, token.Indent, token.Ident,
		token.Outdent, token.Outdent, token.Ident, token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestIndentationClosedAtEOF(t *testing.T) {
	lx, _ := makeTestLexer("a\n\tb\n\t\tc")
	tokens := collectAllTokens(t, lx)
	if n := countKind(tokens, token.Outdent); n != 2 {
		t.Fatalf("outdents = %d, want 2", n)
	}
	last := tokens[len(tokens)-2]
	if last.Kind != token.Outdent || !last.Span.IsPoint() {
		t.Errorf("last before EOF = %v %v", last.Kind, last.Span)
	}
}

func TestIndentationSkipsBlankAndCommentLines(t *testing.T) {
	input := "a\n  b\n\n      \n# top comment\n        # deep comment\n  c\n"
	lx, rep := makeTestLexer(input)
	tokens := collectAllTokens(t, lx)
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", rep.messages())
	}
	if n := countKind(tokens, token.Indent); n != 1 {
		t.Errorf("indents = %d, want 1", n)
	}
	if n := countKind(tokens, token.Outdent); n != 1 {
		t.Errorf("outdents = %d, want 1", n)
	}
	// b and c stay in the same block
	got := structural(tokens)
	want := []token.Kind{token.Ident, token.Indent, token.Ident, token.Ident, token.Outdent, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestInconsistentIndentation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		start uint32
		text  string
	}{
		{"tab after spaces", "a\n  b\n\tc\n", 6, "\t"},
		{"double deepening", "a\n  b\n      c\n", 6, "      "},
		{"partial dedent", "a\n    b\n  d\n", 8, "  "},
		{"mixed unit", "a\n  b\n  \tc\n", 6, "  \t"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx, rep := makeTestLexer(tt.input)
			collectAllTokens(t, lx)
			if len(rep.diagnostics) != 1 {
				t.Fatalf("got %d diagnostics: %v", len(rep.diagnostics), rep.messages())
			}
			d := rep.diagnostics[0]
			if d.Code != diag.LexInconsistentIndent {
				t.Errorf("code = %s", d.Code.ID())
			}
			if d.Primary.Start.Off != tt.start || d.Primary.Text() != tt.text {
				t.Errorf("span = %d %q, want %d %q", d.Primary.Start.Off, d.Primary.Text(), tt.start, tt.text)
			}
		})
	}
}
