package dialect

import (
	"strings"

	"yapl/internal/source"
)

type keywordSignal struct {
	Dialect Kind
	Alien   AlienKind
	Score   int
	Reason  string
}

// keywordSignals maps identifiers that are keywords elsewhere. yapl
// keywords never reach this table since the lexer classifies them first.
var keywordSignals = map[string][]keywordSignal{
	// Python
	"def":  {{Dialect: Python, Alien: AlienFunctionKeyword, Score: 5, Reason: "python keyword `def`"}},
	"elif": {{Dialect: Python, Alien: AlienElif, Score: 5, Reason: "python keyword `elif`"}},
	"None": {{Dialect: Python, Alien: AlienNone, Score: 4, Reason: "python `None`"}},
	"self": {{Dialect: Python, Alien: AlienSelf, Score: 1, Reason: "python `self`"}},

	// Go
	"func":  {{Dialect: Go, Alien: AlienFunctionKeyword, Score: 5, Reason: "go keyword `func`"}},
	"defer": {{Dialect: Go, Alien: AlienDefer, Score: 5, Reason: "go keyword `defer`"}},
	"chan":  {{Dialect: Go, Alien: AlienUnsupported, Score: 4, Reason: "go keyword `chan`"}},

	// Rust
	"fn":     {{Dialect: Rust, Alien: AlienFunctionKeyword, Score: 5, Reason: "rust keyword `fn`"}},
	"impl":   {{Dialect: Rust, Alien: AlienImplTrait, Score: 6, Reason: "rust keyword `impl`"}},
	"trait":  {{Dialect: Rust, Alien: AlienImplTrait, Score: 6, Reason: "rust keyword `trait`"}},
	"mut":    {{Dialect: Rust, Alien: AlienBinding, Score: 4, Reason: "rust keyword `mut`"}},
	"struct": {{Dialect: Rust, Alien: AlienStruct, Score: 2, Reason: "rust keyword `struct`"}, {Dialect: Go, Alien: AlienStruct, Score: 2, Reason: "go keyword `struct`"}},
	"match":  {{Dialect: Rust, Alien: AlienUnsupported, Score: 3, Reason: "rust keyword `match`"}},

	// TypeScript
	"function":  {{Dialect: TypeScript, Alien: AlienFunctionKeyword, Score: 6, Reason: "typescript keyword `function`"}},
	"let":       {{Dialect: TypeScript, Alien: AlienBinding, Score: 3, Reason: "typescript keyword `let`"}, {Dialect: Rust, Alien: AlienBinding, Score: 3, Reason: "rust keyword `let`"}},
	"readonly":  {{Dialect: TypeScript, Alien: AlienBinding, Score: 3, Reason: "typescript keyword `readonly`"}},
	"namespace": {{Dialect: TypeScript, Alien: AlienUnsupported, Score: 4, Reason: "typescript keyword `namespace`"}},
}

// RecordIdent collects keyword evidence for an identifier. It tries an exact
// match, and also a lowercased match for keyword-like spellings ("Def").
func RecordIdent(e *Evidence, ident string, span source.Span) {
	if e == nil || ident == "" {
		return
	}
	recordIdentKey(e, ident, span)
	if lower := strings.ToLower(ident); lower != ident {
		recordIdentKey(e, lower, span)
	}
}

func recordIdentKey(e *Evidence, ident string, span source.Span) {
	for _, sig := range keywordSignals[ident] {
		e.Add(Hint{
			Dialect: sig.Dialect,
			Alien:   sig.Alien,
			Score:   sig.Score,
			Reason:  sig.Reason,
			Span:    span,
		})
	}
}
