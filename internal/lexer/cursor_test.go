package lexer

import (
	"strings"
	"testing"

	"yapl/internal/source"
)

func TestCursorRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"abc",
		"line one\nline two\n",
		"tabs\tand ünïcödé\n\nend",
		"\r\nwindows\r\n",
	}
	for _, input := range inputs {
		c := NewCursor(source.NewVirtualFile("c.yp", input))
		var b strings.Builder
		for !c.EOF() {
			b.WriteRune(c.Next())
		}
		if b.String() != input {
			t.Errorf("round trip %q -> %q", input, b.String())
		}
		if c.Next() != EOFRune || c.Peek() != EOFRune {
			t.Error("reading past the end must yield EOFRune")
		}
	}
}

func TestCursorLineColumnMatchesManualCount(t *testing.T) {
	input := "ab\nαβγ\n\n\tx = 1\n"
	c := NewCursor(source.NewVirtualFile("c.yp", input))
	line, col := uint32(1), uint32(1)
	for _, r := range input {
		pos := c.Pos()
		if pos.Line() != line || pos.Column() != col {
			t.Fatalf("before %q: cursor %d:%d, manual %d:%d", r, pos.Line(), pos.Column(), line, col)
		}
		derived := source.At(pos.File, pos.Off)
		if derived.LineCol() != pos.LineCol() {
			t.Fatalf("offset %d: cursor %v, derived %v", pos.Off, pos.LineCol(), derived.LineCol())
		}
		c.Next()
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
}

func TestCursorPeekAndEOL(t *testing.T) {
	c := NewCursor(source.NewVirtualFile("c.yp", "a\r\nb"))
	if c.PeekAt(1) != '\r' || c.PeekAt(2) != '\n' || c.PeekAt(9) != EOFRune {
		t.Error("PeekAt mismatch")
	}
	if c.EOL() {
		t.Error("'a' is not a line break")
	}
	c.Next()
	if !c.EOL() {
		t.Error("\\r\\n should be a line break")
	}
	first := c.Pos()
	if c.Pos() != first {
		t.Error("Pos should be memoized between moves")
	}
	if !c.Eat('\r') || c.Eat('x') {
		t.Error("Eat mismatch")
	}
}
