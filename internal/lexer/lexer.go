package lexer

import (
	"yapl/internal/diag"
	"yapl/internal/source"
	"yapl/internal/token"
)

// entry is a scanned token together with the lexical error it carries, if any.
type entry struct {
	tok token.Token
	err error
}

// Lexer produces tokens on demand. It keeps a lookahead buffer of scanned
// but uncommitted tokens and a stack of observers notified about the
// whitespace-class tokens skipped by Next.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options

	buf       []entry
	observers []func(token.Token)
	pos       source.Position // end of the last committed token

	indent indentState
}

// New creates a lexer over file.
func New(file *source.File, opts Options) *Lexer {
	lx := &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
	lx.pos = lx.cursor.Pos()
	lx.indent.atLineStart = true
	return lx
}

// File returns the file being lexed.
func (lx *Lexer) File() *source.File {
	return lx.file
}

// Pos returns the position right after the last committed token.
func (lx *Lexer) Pos() source.Position {
	return lx.pos
}

// Peek returns the token n positions ahead without consuming anything.
// With skipWS, whitespace-class tokens are not counted and not returned.
// Once the input is exhausted Peek returns EOF for any n. A lexical error
// met on the way is returned together with the offending token.
func (lx *Lexer) Peek(skipWS bool, n int) (token.Token, error) {
	_, e := lx.find(skipWS, n)
	return e.tok, e.err
}

// Next consumes tokens up to and including the next one (the next
// non-whitespace one with skipWS) and returns it. Skipped tokens are
// passed to the innermost observer.
func (lx *Lexer) Next(skipWS bool) (token.Token, error) {
	i, e := lx.find(skipWS, 0)
	if obs := lx.observer(); obs != nil {
		for _, skipped := range lx.buf[:i] {
			obs(skipped.tok)
		}
	}
	if e.tok.Kind == token.EOF && e.err == nil {
		lx.buf = lx.buf[i:]
	} else {
		lx.buf = lx.buf[i+1:]
	}
	lx.pos = e.tok.Span.End
	return e.tok, e.err
}

// PushObserver installs fn as the receiver of skipped tokens until the
// matching PopObserver.
func (lx *Lexer) PushObserver(fn func(token.Token)) {
	lx.observers = append(lx.observers, fn)
}

// PopObserver removes the innermost observer.
func (lx *Lexer) PopObserver() {
	if n := len(lx.observers); n > 0 {
		lx.observers = lx.observers[:n-1]
	}
}

func (lx *Lexer) observer() func(token.Token) {
	if n := len(lx.observers); n > 0 {
		return lx.observers[n-1]
	}
	return nil
}

// find returns the buffer index and entry of the n-th matching token.
func (lx *Lexer) find(skipWS bool, n int) (int, entry) {
	seen := 0
	for i := 0; ; i++ {
		e := lx.at(i)
		if e.err != nil || e.tok.Kind == token.EOF {
			return i, e
		}
		if skipWS && e.tok.IsWhitespace() {
			continue
		}
		if seen == n {
			return i, e
		}
		seen++
	}
}

// at fills the buffer up to index i. EOF is never scanned twice into the buffer.
func (lx *Lexer) at(i int) entry {
	for len(lx.buf) <= i {
		if n := len(lx.buf); n > 0 && lx.buf[n-1].tok.Kind == token.EOF {
			return lx.buf[n-1]
		}
		lx.buf = append(lx.buf, lx.scan())
	}
	return lx.buf[i]
}

// scan produces the next token from the cursor.
func (lx *Lexer) scan() entry {
	if e, ok := lx.indent.pop(); ok {
		return e
	}
	if lx.indent.atLineStart {
		lx.indent.atLineStart = false
		if e, ok := lx.scanLineStart(); ok {
			return e
		}
	}
	if lx.cursor.EOF() {
		return lx.scanEOF()
	}

	ch := lx.cursor.Peek()
	switch {
	case lx.atHorizontalSpace():
		return lx.scanWhitespace()
	case lx.cursor.EOL():
		return lx.scanNewline()
	case ch == ';':
		start := lx.cursor.Pos()
		lx.cursor.Next()
		return lx.emit(token.Semicolon, start, ";")
	case isPunct(ch):
		start := lx.cursor.Pos()
		lx.cursor.Next()
		return lx.emit(token.Punct, start, string(ch))
	case isOperatorStart(ch):
		return lx.scanOperator()
	case isIdentStart(ch):
		return lx.scanIdentOrKeyword()
	case ch == '.':
		return lx.scanDotOrNumber()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '#':
		return lx.scanComment()
	case ch == '\'' || ch == '"':
		return lx.scanString()
	default:
		start := lx.cursor.Pos()
		lx.cursor.Next()
		sp := lx.cursor.SpanFrom(start)
		err := lx.report(diag.LexUnknownChar, sp, "Unexpected "+sp.Text())
		return entry{tok: lx.token(token.Invalid, sp, sp.Text()), err: err}
	}
}

// emit builds an entry spanning from start to the cursor.
func (lx *Lexer) emit(kind token.Kind, start source.Position, value string) entry {
	return entry{tok: lx.token(kind, lx.cursor.SpanFrom(start), value)}
}

func (lx *Lexer) token(kind token.Kind, sp source.Span, value string) token.Token {
	return token.Token{Kind: kind, Span: sp, Text: sp.Text(), Value: value}
}
