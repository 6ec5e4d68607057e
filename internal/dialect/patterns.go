package dialect

import (
	"yapl/internal/lexer"
	"yapl/internal/source"
	"yapl/internal/token"
)

// ObserveTokenPair records token-pattern evidence over a sliding window of
// two tokens. Tokens must be fed in source order.
func ObserveTokenPair(e *Evidence, prev, tok token.Token) {
	if e == nil {
		return
	}
	adjacent := prev.Span.File() == tok.Span.File() && prev.Span.End.Off == tok.Span.Start.Off
	both := prev.Span.Cover(tok.Span)

	switch {
	// println!(...)
	case prev.Kind == token.Ident && isOp(tok, "!") && adjacent:
		reason, score := "rust macro call syntax `ident!`", 4
		if prev.Text == "println" || prev.Text == "print" || prev.Text == "format" {
			reason, score = "rust macro call `"+prev.Text+"!`", 6
		}
		e.Add(Hint{Dialect: Rust, Alien: AlienMacroCall, Score: score, Reason: reason, Span: both})

	// x := f()
	case isOp(prev, ":") && isOp(tok, "=") && adjacent:
		e.Add(Hint{Dialect: Go, Alien: AlienShortDecl, Score: 5, Reason: "go short variable declaration `:=`", Span: both})

	// fn f() -> i32
	case isOp(prev, "-") && startsWith(tok, '>') && adjacent:
		e.Add(Hint{Dialect: Rust, Alien: AlienReturnArrow, Score: 2, Reason: "return type arrow `->`", Span: both})
		e.Add(Hint{Dialect: Python, Alien: AlienReturnArrow, Score: 1, Reason: "return type arrow `->`", Span: both})

	// (x) => x
	case isOp(prev, "=") && startsWith(tok, '>') && adjacent:
		e.Add(Hint{Dialect: TypeScript, Alien: AlienArrowFunction, Score: 4, Reason: "typescript arrow function `=>`", Span: both})

	// def f():
	case isOp(prev, ":") && tok.Kind == token.Newline:
		e.Add(Hint{Dialect: Python, Alien: AlienBlockColon, Score: 3, Reason: "python block colon", Span: prev.Span})
	}
}

func isOp(t token.Token, sym string) bool {
	return t.Kind == token.Operator && t.Text == sym
}

func startsWith(t token.Token, ch byte) bool {
	return t.Kind == token.Operator && len(t.Text) > 0 && t.Text[0] == ch
}

// Collect lexes file on its own and gathers the evidence of every token.
// Lexical errors are ignored.
func Collect(file *source.File) *Evidence {
	e := NewEvidence()
	if file == nil {
		return e
	}
	lx := lexer.New(file, lexer.Options{})
	var prev token.Token
	for {
		tok, _ := lx.Next(false)
		switch tok.Kind {
		case token.EOF:
			return e
		case token.Whitespace, token.Comment:
			continue
		case token.Ident:
			RecordIdent(e, tok.Text, tok.Span)
		}
		ObserveTokenPair(e, prev, tok)
		prev = tok
	}
}
