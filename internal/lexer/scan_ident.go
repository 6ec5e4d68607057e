package lexer

import (
	"yapl/internal/operator"
	"yapl/internal/token"
)

// scanIdentOrKeyword reads an identifier and reclassifies keywords and
// alphabetic operator aliases.
func (lx *Lexer) scanIdentOrKeyword() entry {
	start := lx.cursor.Pos()
	lx.cursor.Next()
	for isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Next()
	}
	sp := lx.cursor.SpanFrom(start)
	word := sp.Text()

	kind := token.Ident
	switch {
	case token.LookupKeyword(word):
		kind = token.Keyword
	case operator.IsAlias(word):
		kind = token.Operator
	}
	return entry{tok: lx.token(kind, sp, word)}
}
