// Package parser turns the lexer's token stream into an *ast.Package.
//
// The grammar is recursive descent built from a handful of combinators
// (oneOf, many, delimited, block) and the node wrapper, which fills in the
// span and trivia of every node a production returns. Productions return
// (node, error); a zero node with a nil error means "does not apply here".
// Every syntax error is reported to Options.Reporter and returned, which
// unwinds the parse: there is no statement-level recovery.
package parser

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"yapl/internal/ast"
	"yapl/internal/diag"
	"yapl/internal/lexer"
	"yapl/internal/source"
	"yapl/internal/token"
	"yapl/internal/trace"
)

// ErrInternal marks a broken grammar production, as opposed to bad input.
var ErrInternal = errors.New("internal parser error")

// Options configures a Parser.
type Options struct {
	// Reporter receives every syntax error once. It may be nil.
	Reporter diag.Reporter
	// Tracer receives one node-scope span per definition. Nil disables it.
	Tracer trace.Tracer
	// TraceParent is the span the definition spans hang under.
	TraceParent uint64
}

// Parser is the state of a single parse. It is not safe for concurrent use.
type Parser struct {
	lx     *lexer.Lexer
	opts   Options
	frames []*frame

	// lineBreak is set when the last consumed token other than plain
	// whitespace or a comment was a line break, semicolon, Indent or
	// Outdent: whatever comes next starts a new line.
	lineBreak bool
	// absorbed counts, per open indented block, the Indent tokens skipped
	// as trivia inside an expression that continues on a deeper line.
	// The same number of Outdents belongs to the expression, not to the
	// block.
	absorbed []int
}

// frame belongs to one node() invocation: the begin mark of the node being
// built and the whitespace-class tokens skipped while building it.
type frame struct {
	begin  source.Position
	marked bool
	trivia []token.Token
}

func (f *frame) observe(t token.Token) {
	f.trivia = append(f.trivia, t)
}

// New creates a parser reading from lx.
func New(lx *lexer.Lexer, opts Options) *Parser {
	if opts.Tracer == nil {
		opts.Tracer = trace.Nop
	}
	return &Parser{lx: lx, opts: opts, absorbed: []int{0}}
}

// ParseFile lexes and parses file. Lexical and syntax errors go to the
// same reporter. The tracer and parent span are taken from ctx unless set.
func ParseFile(ctx context.Context, file *source.File, opts Options) (*ast.Package, error) {
	if opts.Tracer == nil {
		opts.Tracer = trace.FromContext(ctx)
		opts.TraceParent = trace.ParentSpan(ctx)
	}
	lx := lexer.New(file, lexer.Options{Reporter: opts.Reporter})
	return New(lx, opts).Parse()
}

// Parse reads the whole input. The returned package spans the entire file.
func (p *Parser) Parse() (*ast.Package, error) {
	pkg, err := node(p, p.parsePackage)
	if err != nil {
		return nil, err
	}
	f := p.lx.File()
	ast.Locate(pkg, source.SpanOf(f, 0, f.Size()), pkg.Trivia())
	return pkg, nil
}

// match describes an expected token: a kind and, optionally, its payload.
type match struct {
	kind  token.Kind
	value string
}

func punct(v string) match           { return match{token.Punct, v} }
func kw(v string) match              { return match{token.Keyword, v} }
func oper(v string) match            { return match{token.Operator, v} }
func kindOf(k token.Kind) match      { return match{kind: k} }
func (m match) is(t token.Token) bool { return t.Kind == m.kind && (m.value == "" || t.Value == m.value) }

func (m match) String() string {
	if m.value != "" {
		return "'" + m.value + "'"
	}
	switch m.kind {
	case token.Ident:
		return "identifier"
	case token.Number:
		return "number"
	case token.String:
		return "string"
	default:
		return m.kind.String()
	}
}

// peek returns the next significant token.
func (p *Parser) peek() (token.Token, error) {
	return p.lx.Peek(true, 0)
}

// peekAt returns the n-th significant token ahead.
func (p *Parser) peekAt(n int) (token.Token, error) {
	return p.lx.Peek(true, n)
}

// peekInline returns the next token that is not plain whitespace or a
// comment. Line breaks and indentation tokens are returned as they are, so
// callers use it to continue an expression on the same line only. Right
// after a line break was consumed it reports a line end.
func (p *Parser) peekInline() (token.Token, error) {
	if p.lineBreak {
		return p.lineEnd(), nil
	}
	for i := 0; ; i++ {
		tok, err := p.lx.Peek(false, i)
		if err != nil || (tok.Kind != token.Whitespace && tok.Kind != token.Comment) {
			return tok, err
		}
	}
}

// next consumes a token. A significant token marks the begin of every
// enclosing node that has not consumed one yet. Whitespace-class tokens
// consumed directly join the innermost node's trivia.
func (p *Parser) next(skipWS bool) (token.Token, error) {
	if skipWS {
		p.countSkipped()
	}
	tok, err := p.lx.Next(skipWS)
	if err != nil {
		return tok, err
	}
	switch {
	case tok.IsWhitespace():
		if n := len(p.frames); n > 0 {
			p.frames[n-1].observe(tok)
		}
		if tok.Kind != token.Whitespace && tok.Kind != token.Comment {
			p.lineBreak = true
		}
	case tok.Kind != token.EOF:
		p.lineBreak = false
		for i := len(p.frames) - 1; i >= 0 && !p.frames[i].marked; i-- {
			p.frames[i].begin = tok.Span.Start
			p.frames[i].marked = true
		}
	}
	return tok, nil
}

// countSkipped records the Indent and Outdent tokens the next
// whitespace-skipping consume will pass over.
func (p *Parser) countSkipped() {
	top := &p.absorbed[len(p.absorbed)-1]
	for i := 0; ; i++ {
		tok, err := p.lx.Peek(false, i)
		if err != nil || !tok.IsWhitespace() {
			return
		}
		switch tok.Kind {
		case token.Indent:
			*top++
		case token.Outdent:
			if *top > 0 {
				*top--
			}
		}
	}
}

// lineEnd is what peekInline reports once the parser stands at the start
// of a line: a zero-width Newline at the current position.
func (p *Parser) lineEnd() token.Token {
	pos := p.lx.Pos()
	return token.Token{Kind: token.Newline, Span: source.Span{Start: pos, End: pos}}
}

// take consumes the next significant token if it matches m.
func (p *Parser) take(m match) (token.Token, bool, error) {
	tok, err := p.peek()
	if err != nil || !m.is(tok) {
		return tok, false, err
	}
	tok, err = p.next(true)
	return tok, err == nil, err
}

// takeOK is take for callers that only need to know whether it matched.
func (p *Parser) takeOK(m match) (bool, error) {
	_, ok, err := p.take(m)
	return ok, err
}

// expect consumes a token matching m or fails with code.
func (p *Parser) expect(m match, code diag.Code) (token.Token, error) {
	tok, ok, err := p.take(m)
	if err != nil {
		return tok, err
	}
	if !ok {
		return tok, p.errorf(code, tok, "Expected %s, got %s", m, tok.Describe())
	}
	return tok, nil
}

// errorf reports a syntax error spanning at and returns it.
func (p *Parser) errorf(code diag.Code, at token.Token, format string, args ...any) error {
	return diag.ReportError(p.opts.Reporter, code, at.Span, fmt.Sprintf(format, args...)).Emit()
}

// errorHere reports a syntax error at the next significant token.
func (p *Parser) errorHere(code diag.Code, format string, args ...any) error {
	tok, err := p.peek()
	if err != nil {
		return err
	}
	return p.errorf(code, tok, format, args...)
}

// internalf reports a broken invariant. The result matches ErrInternal.
func (p *Parser) internalf(at token.Token, format string, args ...any) error {
	d := diag.ReportError(p.opts.Reporter, diag.SynInternal, at.Span, "Internal parser error: "+fmt.Sprintf(format, args...)).Emit()
	return fmt.Errorf("%w: %w", ErrInternal, d)
}

// locate fills the span and trivia of a node built inside frame f. A node
// passed up through several wrappers keeps growing its span.
func locate(n ast.Node, f *frame, fallback, end source.Position) {
	begin := fallback
	if f.marked {
		begin = f.begin
	}
	sp := source.Span{Start: begin, End: end}
	trivia := f.trivia
	if old := n.Span(); old.IsValid() {
		sp = old.Cover(sp)
		trivia = append(slices.Clip(n.Trivia()), trivia...)
		slices.SortStableFunc(trivia, func(a, b token.Token) int {
			return int(a.Span.Start.Off) - int(b.Span.Start.Off)
		})
	}
	ast.Locate(n, sp, trivia)
}
