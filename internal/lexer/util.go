package lexer

import (
	"strings"
	"unicode"

	"yapl/internal/operator"
)

const punctChars = ",`(){}[]"

func isHorizontalSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\f', '\v':
		return true
	case '\r':
		return false
	}
	return r != '\n' && r != EOFRune && r >= 0x80 && unicode.IsSpace(r)
}

func isPunct(r rune) bool {
	return r < 0x80 && r >= 0 && strings.ContainsRune(punctChars, r)
}

func isDec(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= 0x80 && unicode.IsLetter(r))
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || isDec(r) || (r >= 0x80 && unicode.IsDigit(r))
}

// isOperatorStart reports whether some operator symbol begins with r.
func isOperatorStart(r rune) bool {
	if r < 0 || r >= 0x80 {
		return false
	}
	for _, sym := range operator.Symbols() {
		if rune(sym[0]) == r {
			return true
		}
	}
	return false
}
