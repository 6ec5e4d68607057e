package lexer

import (
	"yapl/internal/token"
)

// atHorizontalSpace reports whether the cursor stands on blank space that
// does not end the line. A lone '\r' counts as blank space.
func (lx *Lexer) atHorizontalSpace() bool {
	ch := lx.cursor.Peek()
	if ch == '\r' {
		return lx.cursor.PeekAt(1) != '\n'
	}
	return isHorizontalSpace(ch)
}

func (lx *Lexer) scanWhitespace() entry {
	start := lx.cursor.Pos()
	for lx.atHorizontalSpace() {
		lx.cursor.Next()
	}
	sp := lx.cursor.SpanFrom(start)
	return entry{tok: lx.token(token.Whitespace, sp, sp.Text())}
}

func (lx *Lexer) scanNewline() entry {
	start := lx.cursor.Pos()
	lx.cursor.Eat('\r')
	lx.cursor.Next()
	lx.indent.atLineStart = true
	return lx.emit(token.Newline, start, "\n")
}

// scanComment reads '#' up to, not including, the line break.
func (lx *Lexer) scanComment() entry {
	start := lx.cursor.Pos()
	lx.cursor.Next()
	for !lx.cursor.EOF() && !lx.cursor.EOL() {
		lx.cursor.Next()
	}
	sp := lx.cursor.SpanFrom(start)
	return entry{tok: lx.token(token.Comment, sp, sp.Text()[1:])}
}

// scanLineStart handles the leading blank run of a logical line. It returns
// false when nothing needs to be emitted and ordinary scanning should go on.
func (lx *Lexer) scanLineStart() (entry, bool) {
	start := lx.cursor.Pos()
	for lx.atHorizontalSpace() {
		lx.cursor.Next()
	}
	sp := lx.cursor.SpanFrom(start)

	// blank and comment-only lines do not take part in indentation
	if lx.cursor.EOF() || lx.cursor.EOL() || lx.cursor.Peek() == '#' {
		if sp.IsPoint() {
			return entry{}, false
		}
		return entry{tok: lx.token(token.Whitespace, sp, sp.Text())}, true
	}
	return lx.resolveIndent(sp)
}

// scanEOF flushes the open indentation levels before the final EOF.
func (lx *Lexer) scanEOF() entry {
	at := lx.cursor.Pos()
	if n := lx.indent.levels(); n > 0 {
		lx.indent.current = ""
		for range n {
			lx.indent.push(entry{tok: lx.token(token.Outdent, lx.cursor.SpanFrom(at), "")})
		}
		e, _ := lx.indent.pop()
		return e
	}
	return entry{tok: lx.token(token.EOF, lx.cursor.SpanFrom(at), "")}
}
