package lexer

import (
	"yapl/internal/token"
)

// scanDotOrNumber handles '.': a digit right after it starts a number.
func (lx *Lexer) scanDotOrNumber() entry {
	if isDec(lx.cursor.PeekAt(1)) {
		return lx.scanNumber()
	}
	start := lx.cursor.Pos()
	lx.cursor.Next()
	return lx.emit(token.Dot, start, ".")
}

// scanNumber reads digits, an optional fraction and an optional exponent.
// The fraction and the exponent are only taken when a digit follows, so
// "1.foo" and "2else" stay split.
func (lx *Lexer) scanNumber() entry {
	start := lx.cursor.Pos()
	lx.digits()

	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		lx.cursor.Next()
		lx.digits()
	}

	if e := lx.cursor.Peek(); e == 'e' || e == 'E' {
		next := lx.cursor.PeekAt(1)
		signed := (next == '+' || next == '-') && isDec(lx.cursor.PeekAt(2))
		if isDec(next) || signed {
			lx.cursor.Next()
			if signed {
				lx.cursor.Next()
			}
			lx.digits()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return entry{tok: lx.token(token.Number, sp, sp.Text())}
}

func (lx *Lexer) digits() {
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Next()
	}
}
