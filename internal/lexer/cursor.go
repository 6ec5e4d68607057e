package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"yapl/internal/source"
)

// EOFRune is returned by Peek and Next at the end of input.
const EOFRune rune = -1

// Cursor reads a file one rune at a time and keeps line/column bookkeeping,
// so positions taken from a live cursor cost O(1).
type Cursor struct {
	File *source.File
	Off  uint32

	line, col uint32
	pos       source.Position
	posValid  bool
}

// NewCursor creates a cursor at the start of f.
func NewCursor(f *source.File) Cursor {
	return Cursor{File: f, line: 1, col: 1}
}

// EOF reports whether the cursor reached the end of the file.
func (c *Cursor) EOF() bool {
	return int(c.Off) >= len(c.File.Content)
}

// Peek returns the current rune without consuming it.
func (c *Cursor) Peek() rune {
	return c.PeekAt(0)
}

// PeekAt returns the rune n positions ahead, or EOFRune.
func (c *Cursor) PeekAt(n int) rune {
	off := int(c.Off)
	for {
		if off >= len(c.File.Content) {
			return EOFRune
		}
		r, size := utf8.DecodeRune(c.File.Content[off:])
		if n == 0 {
			return r
		}
		off += size
		n--
	}
}

// EOL reports whether the cursor stands on a line break.
func (c *Cursor) EOL() bool {
	switch c.Peek() {
	case '\n':
		return true
	case '\r':
		return c.PeekAt(1) == '\n'
	}
	return false
}

// Next consumes and returns the current rune.
func (c *Cursor) Next() rune {
	if c.EOF() {
		return EOFRune
	}
	r, size := utf8.DecodeRune(c.File.Content[c.Off:])
	c.Off += mustU32(size)
	if r == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	c.posValid = false
	return r
}

// Eat consumes the current rune if it equals r.
func (c *Cursor) Eat(r rune) bool {
	if !c.EOF() && c.Peek() == r {
		c.Next()
		return true
	}
	return false
}

// Pos returns the current position. It is computed once per offset.
func (c *Cursor) Pos() source.Position {
	if !c.posValid {
		c.pos = source.WithLineCol(c.File, c.Off, source.LineCol{Line: c.line, Col: c.col})
		c.posValid = true
	}
	return c.pos
}

// SpanFrom returns the span from start up to the cursor.
func (c *Cursor) SpanFrom(start source.Position) source.Span {
	return source.Span{Start: start, End: c.Pos()}
}

func mustU32(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("cursor offset overflow: %w", err))
	}
	return v
}
