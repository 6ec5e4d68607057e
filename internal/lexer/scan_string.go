package lexer

import (
	"yapl/internal/diag"
	"yapl/internal/token"
)

// scanString reads a quoted literal. Escapes are kept verbatim in Value:
// a backslash only protects the following character from ending the string.
func (lx *Lexer) scanString() entry {
	start := lx.cursor.Pos()
	quote := lx.cursor.Next()

	for {
		switch lx.cursor.Peek() {
		case EOFRune:
			sp := lx.cursor.SpanFrom(start)
			err := lx.report(diag.LexUnterminatedString, sp, "Unterminated string")
			tok := lx.token(token.Invalid, sp, sp.Text())
			return entry{tok: tok, err: err}
		case '\\':
			lx.cursor.Next()
			lx.cursor.Next()
		case quote:
			lx.cursor.Next()
			sp := lx.cursor.SpanFrom(start)
			text := sp.Text()
			tok := lx.token(token.String, sp, text[1:len(text)-1])
			tok.Quote = byte(quote)
			return entry{tok: tok}
		default:
			lx.cursor.Next()
		}
	}
}
