package token

var keywords = map[string]struct{}{
	"package":    {},
	"use":        {},
	"as":         {},
	"var":        {},
	"val":        {},
	"fun":        {},
	"class":      {},
	"interface":  {},
	"extends":    {},
	"implements": {},
	"if":         {},
	"then":       {},
	"else":       {},
	"null":       {},
	"this":       {},
	"true":       {},
	"false":      {},
}

var modifiers = map[string]struct{}{
	"private":   {},
	"protected": {},
	"public":    {},
	"final":     {},
	"abstract":  {},
	"const":     {},
	"data":      {},
	"test":      {},
	"export":    {},
}

// LookupKeyword reports whether ident is reserved, modifiers included.
// Keywords are case sensitive.
func LookupKeyword(ident string) bool {
	if _, ok := keywords[ident]; ok {
		return true
	}
	_, ok := modifiers[ident]
	return ok
}

// IsModifier reports whether word is a definition modifier.
func IsModifier(word string) bool {
	_, ok := modifiers[word]
	return ok
}

// IsValueKeyword reports whether kw denotes a value usable as a reference.
func IsValueKeyword(kw string) bool {
	switch kw {
	case "null", "this", "true", "false":
		return true
	default:
		return false
	}
}
