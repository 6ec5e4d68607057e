package driver

import (
	"context"

	"yapl/internal/diag"
	"yapl/internal/lexer"
	"yapl/internal/source"
	"yapl/internal/token"
	"yapl/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads path and lexes it to EOF. Lexical errors are collected in
// the result's Bag and do not stop the scan.
func Tokenize(ctx context.Context, path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	file, err := loadFile(ctx, fs, path)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(maxDiagnostics)
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokenizeFile(ctx, file, bag),
		Bag:     bag,
	}, nil
}

// tokenizeFile returns every token of file, whitespace included, ending
// with a single EOF.
func tokenizeFile(ctx context.Context, file *source.File, bag *diag.Bag) []token.Token {
	sp := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "lex", trace.ParentSpan(ctx))
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		// the error is already in bag; keep scanning past it
		tok, _ := lx.Next(false)
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	sp.End(pluralize(len(tokens), "token"))
	return tokens
}
