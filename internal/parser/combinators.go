package parser

import (
	"yapl/internal/ast"
	"yapl/internal/diag"
	"yapl/internal/token"
)

// nodeType is what productions return: a node pointer or a node interface.
// The zero value means "no match".
type nodeType interface {
	ast.Node
	comparable
}

// node runs a production and back-fills the span and trivia of its result.
// The span starts at the first significant token the production consumed,
// or at the stream position before the call when it consumed none, and
// ends at the stream position after the call. On no match or error the
// skipped tokens are handed to the enclosing node.
func node[T nodeType](p *Parser, fn func() (T, error)) (T, error) {
	var zero T
	fallback := p.lx.Pos()
	f := &frame{}
	p.frames = append(p.frames, f)
	p.lx.PushObserver(f.observe)

	n, err := fn()

	p.lx.PopObserver()
	p.frames = p.frames[:len(p.frames)-1]
	if err != nil || n == zero {
		if k := len(p.frames); k > 0 {
			p.frames[k-1].trivia = append(p.frames[k-1].trivia, f.trivia...)
		}
		return zero, err
	}
	locate(n, f, fallback, p.lx.Pos())
	return n, nil
}

// widen adapts a production to a wider result type.
func widen[U, T nodeType](fn func() (T, error)) func() (U, error) {
	return func() (U, error) {
		var zeroT T
		var zeroU U
		n, err := fn()
		if err != nil || n == zeroT {
			return zeroU, err
		}
		return any(n).(U), nil
	}
}

// oneOf tries the alternatives in order and returns the first match.
// An alternative that consumed a significant token must not report
// "no match": that is a broken production and yields ErrInternal.
func oneOf[T nodeType](p *Parser, alts ...func() (T, error)) (T, error) {
	var zero T
	for _, alt := range alts {
		before, err := p.peek()
		if err != nil {
			return zero, err
		}
		n, err := node(p, alt)
		if err != nil {
			return zero, err
		}
		if n != zero {
			return n, nil
		}
		after, err := p.peek()
		if err != nil {
			return zero, err
		}
		if after.Span.Start.Off != before.Span.Start.Off {
			return zero, p.internalf(before, "production consumed %s without producing a node", before.Describe())
		}
	}
	return zero, nil
}

// many applies oneOf until nothing matches.
func many[T nodeType](p *Parser, alts ...func() (T, error)) ([]T, error) {
	var out []T
	for {
		n, err := oneOf(p, alts...)
		if err != nil {
			return nil, err
		}
		var zero T
		if n == zero {
			return out, nil
		}
		out = append(out, n)
	}
}

// listSpec shapes a delimited list. Empty strings disable a delimiter.
type listSpec struct {
	open, sep, close string

	// optional lets the opening token be absent, yielding an empty list.
	optional bool
	// bare lets the opening token be absent while items still follow,
	// in which case no closing token is required. Implies optional.
	bare bool
}

// delimited parses open item {sep item} close. Items stop at the first
// one that does not match; a trailing separator is tolerated.
func delimited[T nodeType](p *Parser, item func() (T, error), ls listSpec) ([]T, error) {
	needClose := ls.close != ""
	if ls.open != "" {
		opened, err := p.takeOK(punct(ls.open))
		if err != nil {
			return nil, err
		}
		if !opened {
			switch {
			case ls.bare:
				needClose = false
			case ls.optional:
				return nil, nil
			default:
				return nil, p.errorHere(diag.SynExpectToken, "Expected '%s'", ls.open)
			}
		}
	}

	var out []T
	var zero T
	for {
		n, err := node(p, item)
		if err != nil {
			return nil, err
		}
		if n == zero {
			break
		}
		out = append(out, n)
		if ls.sep == "" {
			continue
		}
		more, err := p.takeOK(punct(ls.sep))
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}
	if needClose {
		if _, err := p.expect(punct(ls.close), diag.SynExpectToken); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// blockSpec configures block.
type blockSpec struct {
	// tight allows the inline form without separating whitespace,
	// as in "fun f()=x" or "if(x)".
	tight bool
	// missing is reported when an indented or braced block holds
	// something that is not an item.
	missing diag.Code
	what    string
}

// blockForm is the concrete syntax found ahead of the stream.
type blockForm uint8

const (
	formNone blockForm = iota
	formIndent
	formBrace
	formInline
)

// blockAhead decides the form without consuming anything: an Indent
// after line structure, a brace, or, when only horizontal whitespace
// separates it from the previous token on the same line, a single
// inline item.
func (p *Parser) blockAhead(tight bool) (blockForm, error) {
	sawSpace, sawBreak := false, p.lineBreak
	for i := 0; ; i++ {
		tok, err := p.lx.Peek(false, i)
		if err != nil {
			return formNone, err
		}
		switch {
		case tok.Kind == token.Indent:
			return formIndent, nil
		case tok.IsPunct("{"):
			return formBrace, nil
		case tok.IsWhitespace():
			sawSpace = true
			if tok.Kind != token.Whitespace && tok.Kind != token.Comment {
				sawBreak = true
			}
		case tok.Kind == token.EOF:
			return formNone, nil
		default:
			if !sawBreak && (sawSpace || tight) {
				return formInline, nil
			}
			return formNone, nil
		}
	}
}

// block parses the statements or definitions of a body in any of its
// three forms and returns them in order. An absent body yields nil.
func block[T nodeType](p *Parser, item func() (T, error), bs blockSpec) ([]T, error) {
	form, err := p.blockAhead(bs.tight)
	if err != nil {
		return nil, err
	}
	switch form {
	case formIndent:
		return indentBlock(p, item, bs)
	case formBrace:
		return braceBlock(p, item, bs)
	case formInline:
		var zero T
		n, err := oneOf(p, item)
		if err != nil || n == zero {
			return nil, err
		}
		return []T{n}, nil
	}
	return nil, nil
}

func indentBlock[T nodeType](p *Parser, item func() (T, error), bs blockSpec) ([]T, error) {
	for {
		tok, err := p.next(false)
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.Indent {
			break
		}
	}
	p.absorbed = append(p.absorbed, 0)
	defer func() { p.absorbed = p.absorbed[:len(p.absorbed)-1] }()

	var out []T
	var zero T
	for {
		n, err := oneOf(p, item)
		if err != nil {
			return nil, err
		}
		if n == zero {
			return nil, p.errorHere(bs.missing, "Unexpected %s, %s expected", p.describeNext(), bs.what)
		}
		out = append(out, n)

		for {
			tok, err := p.lx.Peek(false, 0)
			if err != nil {
				return nil, err
			}
			switch {
			case tok.Kind == token.EOF:
				return out, nil
			case tok.Kind == token.Outdent:
				if _, err := p.next(false); err != nil {
					return nil, err
				}
				// closes an expression continued on a deeper line
				if top := &p.absorbed[len(p.absorbed)-1]; *top > 0 {
					*top--
					continue
				}
				return out, nil
			case tok.Kind == token.Indent:
				return nil, p.errorf(diag.SynUnexpectedToken, tok, "Unexpected indent")
			case tok.IsWhitespace():
				if _, err := p.next(false); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
	}
}

func braceBlock[T nodeType](p *Parser, item func() (T, error), bs blockSpec) ([]T, error) {
	if _, err := p.expect(punct("{"), diag.SynExpectToken); err != nil {
		return nil, err
	}
	var out []T
	var zero T
	for {
		closed, err := p.takeOK(punct("}"))
		if err != nil {
			return nil, err
		}
		if closed {
			return out, nil
		}
		n, err := oneOf(p, item)
		if err != nil {
			return nil, err
		}
		if n == zero {
			return nil, p.errorHere(bs.missing, "Unexpected %s, %s expected", p.describeNext(), bs.what)
		}
		out = append(out, n)
	}
}

// describeNext renders the next significant token for messages.
func (p *Parser) describeNext() string {
	tok, err := p.peek()
	if err != nil {
		return "token"
	}
	return tok.Describe()
}
