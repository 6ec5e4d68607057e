package parser

import (
	"yapl/internal/ast"
	"yapl/internal/diag"
	"yapl/internal/operator"
	"yapl/internal/source"
	"yapl/internal/token"
)

// parseStatement reads: val | var | fun | expression
func (p *Parser) parseStatement() (ast.Node, error) {
	return oneOf(p,
		widen[ast.Node](p.parseValue),
		widen[ast.Node](p.parseFunDefinition),
		widen[ast.Node](p.parseExpressionItem),
	)
}

// parseBody reads a function body, if, then or else part: nothing, a
// single statement, or a *ast.Block of several.
func (p *Parser) parseBody(tight bool) (ast.Node, error) {
	return node(p, func() (ast.Node, error) {
		stmts, err := block(p, p.parseStatement, blockSpec{tight: tight, missing: diag.SynExpectStatement, what: "statement"})
		if err != nil {
			return nil, err
		}
		switch len(stmts) {
		case 0:
			return nil, nil
		case 1:
			return stmts[0], nil
		default:
			return &ast.Block{Stmts: stmts}, nil
		}
	})
}

func (p *Parser) parseExpressionItem() (ast.Expr, error) {
	return p.parseExpression(false)
}

// parseExpression parses a full expression. canBlock admits a braced or
// indented block of statements where an atom is expected.
func (p *Parser) parseExpression(canBlock bool) (ast.Expr, error) {
	return node(p, func() (ast.Expr, error) {
		left, err := p.parseUnary(canBlock)
		if err != nil || left == nil {
			return nil, err
		}
		return p.climb(left, operator.Loosest)
	})
}

func (p *Parser) expectExpression(canBlock bool) (ast.Expr, error) {
	e, err := p.parseExpression(canBlock)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, p.errorHere(diag.SynExpectExpression, "Expression expected, got %s", p.describeNext())
	}
	return e, nil
}

// climb extends left with binary operators no looser than ceiling.
// The right operand of a left-associative operator only admits tighter
// operators, that of a right-associative one also admits its own level.
func (p *Parser) climb(left ast.Expr, ceiling int) (ast.Expr, error) {
	for {
		tok, err := p.peekInline()
		if err != nil {
			return nil, err
		}
		if tok.Kind != token.Operator {
			return left, nil
		}
		op, ok := operator.Lookup(tok.Value, operator.Binary)
		if !ok || op.Priority > ceiling {
			return left, nil
		}
		if _, err := p.next(true); err != nil {
			return nil, err
		}

		right, err := p.parseUnary(false)
		if err != nil {
			return nil, err
		}
		if right == nil {
			return nil, p.errorHere(diag.SynExpectExpression, "Expression expected after '%s', got %s", tok.Text, p.describeNext())
		}
		if right, err = p.climb(right, op.RightCeiling()); err != nil {
			return nil, err
		}
		bin := &ast.Binary{Op: op, Left: left, Right: right}
		ast.Locate(bin, left.Span().Cover(right.Span()), nil)
		left = bin
	}
}

// parseUnary reads: { prefix-op } suffixed
// With canBlock an indented block comes first, so "=\n    -x" is a block
// holding the prefix expression.
func (p *Parser) parseUnary(canBlock bool) (ast.Expr, error) {
	return node(p, func() (ast.Expr, error) {
		if canBlock {
			form, err := p.blockAhead(false)
			if err != nil {
				return nil, err
			}
			if form == formIndent {
				return p.parseSuffixed(canBlock)
			}
		}
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.Operator {
			if op, ok := operator.Lookup(tok.Value, operator.Prefix); ok {
				if _, err := p.next(true); err != nil {
					return nil, err
				}
				operand, err := p.parseUnary(false)
				if err != nil {
					return nil, err
				}
				if operand == nil {
					return nil, p.errorHere(diag.SynExpectExpression, "Expression expected after '%s', got %s", tok.Text, p.describeNext())
				}
				return &ast.PrefixUnary{Op: op, Operand: operand}, nil
			}
		}
		return p.parseSuffixed(canBlock)
	})
}

// parseSuffixed reads a call followed by suffix operators written
// directly after it, as in x++.
func (p *Parser) parseSuffixed(canBlock bool) (ast.Expr, error) {
	operand, err := node(p, func() (ast.Expr, error) { return p.parseCall(canBlock) })
	if err != nil || operand == nil {
		return nil, err
	}
	for !p.lineBreak {
		tok, err := p.lx.Peek(false, 0)
		if err != nil {
			return nil, err
		}
		if tok.Kind != token.Operator {
			return operand, nil
		}
		op, ok := operator.Lookup(tok.Value, operator.Suffix)
		if !ok {
			return operand, nil
		}
		if _, err := p.next(false); err != nil {
			return nil, err
		}
		suffix := &ast.SuffixUnary{Op: op, Operand: operand}
		ast.Locate(suffix, source.Span{Start: operand.Span().Start, End: p.lx.Pos()}, nil)
		operand = suffix
	}
	return operand, nil
}

// parseCall reads: atom [ "(" arguments ")" ] [ block ]
// A trailing block is not looked for when a binary operator follows,
// so "f - 1" stays a subtraction.
func (p *Parser) parseCall(canBlock bool) (ast.Expr, error) {
	callee, err := node(p, func() (ast.Expr, error) { return p.parseAtom(canBlock) })
	if err != nil || callee == nil {
		return nil, err
	}
	call := &ast.Call{Callee: callee}

	tok, err := p.peekInline()
	if err != nil {
		return nil, err
	}
	if tok.IsPunct("(") {
		call.Parens = true
		if call.Args, err = delimited(p, p.parseCallArgument, listSpec{open: "(", sep: ",", close: ")"}); err != nil {
			return nil, err
		}
	}

	binary, err := p.binaryAhead()
	if err != nil {
		return nil, err
	}
	if !binary {
		if call.Suffix, err = p.parseBody(false); err != nil {
			return nil, err
		}
	}

	if !call.Parens && call.Suffix == nil {
		return callee, nil
	}
	return call, nil
}

func (p *Parser) binaryAhead() (bool, error) {
	tok, err := p.peekInline()
	if err != nil || tok.Kind != token.Operator {
		return false, err
	}
	_, ok := operator.Lookup(tok.Value, operator.Binary)
	return ok, nil
}

// parseCallArgument reads: [ ident ":" ] expression
func (p *Parser) parseCallArgument() (*ast.CallArgument, error) {
	arg := &ast.CallArgument{}
	first, err := p.peek()
	if err != nil {
		return nil, err
	}
	second, err := p.peekAt(1)
	if err != nil {
		return nil, err
	}
	if first.Kind == token.Ident && second.IsOperator(":") {
		if arg.Name, err = node(p, p.parseIdentifier); err != nil {
			return nil, err
		}
		if _, err := p.next(true); err != nil {
			return nil, err
		}
	}

	if arg.Value, err = p.parseExpression(false); err != nil {
		return nil, err
	}
	if arg.Value == nil {
		if arg.Name != nil {
			return nil, p.errorHere(diag.SynExpectExpression, "Expression expected for argument '%s', got %s", arg.Name.Name, p.describeNext())
		}
		return nil, nil
	}
	return arg, nil
}

// parseAtom reads a parenthesized expression, a literal, a reference,
// a function expression, an if expression, or, with canBlock, a block.
func (p *Parser) parseAtom(canBlock bool) (ast.Expr, error) {
	if canBlock {
		form, err := p.blockAhead(false)
		if err != nil {
			return nil, err
		}
		if form == formIndent || form == formBrace {
			stmts, err := block(p, p.parseStatement, blockSpec{missing: diag.SynExpectStatement, what: "statement"})
			if err != nil {
				return nil, err
			}
			return &ast.Block{Stmts: stmts}, nil
		}
	}

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch {
	case tok.IsPunct("("):
		if _, err := p.next(true); err != nil {
			return nil, err
		}
		inner, err := p.expectExpression(false)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(punct(")"), diag.SynExpectToken); err != nil {
			return nil, err
		}
		return inner, nil

	case tok.Kind == token.Number:
		if _, err := p.next(true); err != nil {
			return nil, err
		}
		return &ast.Number{Value: tok.Value}, nil

	case tok.Kind == token.String:
		if _, err := p.next(true); err != nil {
			return nil, err
		}
		return &ast.String{Quote: tok.Quote, Value: tok.Value}, nil

	case tok.IsPunct("`"):
		return node(p, p.parseStringTemplate)

	case tok.Kind == token.Ident, tok.Kind == token.Keyword && token.IsValueKeyword(tok.Value):
		name, err := node(p, p.parseValueName)
		if err != nil {
			return nil, err
		}
		return &ast.Reference{Name: name}, nil

	case tok.IsKeyword("fun"):
		return node(p, widen[ast.Expr](p.parseFunDefinition))

	case tok.IsKeyword("if"):
		return node(p, p.parseIf)
	}
	return nil, nil
}

// parseValueName reads an identifier or one of null, this, true, false.
func (p *Parser) parseValueName() (*ast.Identifier, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != token.Ident && !(tok.Kind == token.Keyword && token.IsValueKeyword(tok.Value)) {
		return nil, nil
	}
	if tok, err = p.next(true); err != nil {
		return nil, err
	}
	return &ast.Identifier{Name: tok.Value}, nil
}

// parseStringTemplate reads: "`" expression { "," expression } "`"
func (p *Parser) parseStringTemplate() (ast.Expr, error) {
	if ok, err := p.takeOK(punct("`")); !ok {
		return nil, err
	}
	tmpl := &ast.StringTemplate{}
	for {
		part, err := p.expectExpression(false)
		if err != nil {
			return nil, err
		}
		tmpl.Parts = append(tmpl.Parts, part)
		more, err := p.takeOK(punct(","))
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}
	if _, err := p.expect(punct("`"), diag.SynExpectToken); err != nil {
		return nil, err
	}
	return tmpl, nil
}

// parseIf reads: "if" block [ "then" ] block [ "else" block ]
// Each part may follow its keyword without a space, as in if(x).
func (p *Parser) parseIf() (ast.Expr, error) {
	if ok, err := p.takeOK(kw("if")); !ok {
		return nil, err
	}
	n := &ast.If{}
	var err error
	if n.Cond, err = p.parseBody(true); err != nil {
		return nil, err
	}
	if n.Cond == nil {
		return nil, p.errorHere(diag.SynExpectCondition, "Condition expected, got %s", p.describeNext())
	}
	if _, err := p.takeOK(kw("then")); err != nil {
		return nil, err
	}
	if n.Then, err = p.parseBody(true); err != nil {
		return nil, err
	}
	if n.Then == nil {
		return nil, p.errorHere(diag.SynExpectExpression, "Expression expected, got %s", p.describeNext())
	}
	otherwise, err := p.takeOK(kw("else"))
	if err != nil {
		return nil, err
	}
	if otherwise {
		if n.Else, err = p.parseBody(true); err != nil {
			return nil, err
		}
		if n.Else == nil {
			return nil, p.errorHere(diag.SynExpectExpression, "Expression expected after 'else', got %s", p.describeNext())
		}
	}
	return n, nil
}
