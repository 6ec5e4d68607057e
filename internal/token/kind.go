package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input. It repeats forever.
	EOF

	// Newline is a single line break.
	Newline
	// Indent opens an indentation block.
	Indent
	// Outdent closes one indentation level.
	Outdent
	// Whitespace is a run of horizontal whitespace.
	Whitespace
	// Semicolon is ';'.
	Semicolon
	// Comment is '#' up to the end of the line.
	Comment

	// Punct is one of , ` ( ) { } [ ].
	Punct
	// Operator is a symbol or alias from the operator table.
	Operator
	// Keyword is a reserved word, modifiers included.
	Keyword
	// Ident represents an identifier token.
	Ident
	// Dot is a lone '.'.
	Dot
	// Number is a decimal literal.
	Number
	// String is a quoted literal; Value holds the raw body.
	String
)

var kindNames = [...]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Newline:    "Newline",
	Indent:     "Indent",
	Outdent:    "Outdent",
	Whitespace: "Whitespace",
	Semicolon:  "Semicolon",
	Comment:    "Comment",
	Punct:      "Punct",
	Operator:   "Operator",
	Keyword:    "Keyword",
	Ident:      "Ident",
	Dot:        "Dot",
	Number:     "Number",
	String:     "String",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsWhitespace reports whether tokens of this kind may be skipped by the parser.
func (k Kind) IsWhitespace() bool {
	switch k {
	case Newline, Indent, Outdent, Whitespace, Semicolon, Comment:
		return true
	default:
		return false
	}
}

// IsLineBreak reports whether the kind ends a statement.
func (k Kind) IsLineBreak() bool {
	return k == Newline || k == Semicolon
}
