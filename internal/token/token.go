package token

import (
	"yapl/internal/source"
)

// Token represents a single source token with its location and payload.
type Token struct {
	Kind  Kind
	Span  source.Span
	Text  string
	Value string
	Quote byte // string delimiter, 0 for other kinds
}

// IsWhitespace reports whether the token is whitespace-class.
func (t Token) IsWhitespace() bool { return t.Kind.IsWhitespace() }

// Is reports whether the token has the given kind and payload.
func (t Token) Is(kind Kind, value string) bool {
	return t.Kind == kind && t.Value == value
}

// IsPunct reports whether the token is the punctuation character p.
func (t Token) IsPunct(p string) bool { return t.Is(Punct, p) }

// IsKeyword reports whether the token is the keyword kw.
func (t Token) IsKeyword(kw string) bool { return t.Is(Keyword, kw) }

// IsOperator reports whether the token is the operator sym.
func (t Token) IsOperator(sym string) bool { return t.Is(Operator, sym) }

// IsModifier reports whether the token is a definition modifier keyword.
func (t Token) IsModifier() bool {
	return t.Kind == Keyword && IsModifier(t.Value)
}

// Describe renders the token for "expected X, got Y" messages.
func (t Token) Describe() string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case Newline:
		return "newline"
	case Indent:
		return "indent"
	case Outdent:
		return "outdent"
	case Ident:
		return "identifier '" + t.Value + "'"
	case Number:
		return "number " + t.Value
	case String:
		return "string " + t.Text
	case Invalid:
		return "invalid token"
	default:
		return "'" + t.Text + "'"
	}
}
