package lexer

import (
	"yapl/internal/diag"
	"yapl/internal/operator"
	"yapl/internal/token"
)

// scanOperator matches the longest operator symbol. Candidates are narrowed
// one character at a time until a single fully matched symbol remains or
// no candidate continues with the next character.
func (lx *Lexer) scanOperator() entry {
	start := lx.cursor.Pos()
	candidates := operator.Symbols()
	consumed := 0

	for {
		ch := lx.cursor.Peek()
		if ch < 0 || ch >= 0x80 {
			break
		}
		next := candidates[:0:0]
		for _, sym := range candidates {
			if len(sym) > consumed && rune(sym[consumed]) == ch {
				next = append(next, sym)
			}
		}
		if len(next) == 0 {
			break
		}
		lx.cursor.Next()
		consumed++
		candidates = next
		if len(candidates) == 1 && len(candidates[0]) == consumed {
			break
		}
	}

	sp := lx.cursor.SpanFrom(start)
	for _, sym := range candidates {
		if len(sym) == consumed {
			return entry{tok: lx.token(token.Operator, sp, sym)}
		}
	}
	err := lx.report(diag.LexUnknownOperator, sp, "Unknown operator "+sp.Text())
	return entry{tok: lx.token(token.Invalid, sp, sp.Text()), err: err}
}
