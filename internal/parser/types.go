package parser

import (
	"yapl/internal/ast"
	"yapl/internal/diag"
	"yapl/internal/token"
)

// parseTypeRef reads: "fun" lambda | "[" [ expressions ] "]" type | dotted
func (p *Parser) parseTypeRef() (ast.TypeRef, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch {
	case tok.IsKeyword("fun"):
		fn, err := node(p, func() (*ast.Function, error) { return p.parseFun(false) })
		if err != nil {
			return nil, err
		}
		return &ast.LambdaTypeRef{Func: fn}, nil

	case tok.IsPunct("["):
		dims, err := delimited(p, p.parseExpressionItem, listSpec{open: "[", sep: ",", close: "]"})
		if err != nil {
			return nil, err
		}
		target, err := p.expectType()
		if err != nil {
			return nil, err
		}
		return &ast.ArrayTypeRef{Dims: dims, Target: target}, nil
	}

	name, err := node(p, p.parseTypeName)
	if err != nil || name == nil {
		return nil, err
	}
	return &ast.NamedTypeRef{Name: name}, nil
}

func (p *Parser) expectType() (ast.TypeRef, error) {
	t, err := node(p, p.parseTypeRef)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, p.errorHere(diag.SynExpectType, "Type expected, got %s", p.describeNext())
	}
	return t, nil
}

// parseTypeName reads ident { "." ident }.
func (p *Parser) parseTypeName() (*ast.TypeName, error) {
	first, ok, err := p.take(kindOf(token.Ident))
	if !ok {
		return nil, err
	}
	name := first.Value
	for {
		dot, err := p.peek()
		if err != nil {
			return nil, err
		}
		after, err := p.peekAt(1)
		if err != nil {
			return nil, err
		}
		if dot.Kind != token.Dot || after.Kind != token.Ident {
			return &ast.TypeName{Name: name}, nil
		}
		if _, err := p.next(true); err != nil {
			return nil, err
		}
		if _, err := p.next(true); err != nil {
			return nil, err
		}
		name += "." + after.Value
	}
}

func (p *Parser) expectTypeName() (*ast.TypeName, error) {
	name, err := node(p, p.parseTypeName)
	if err != nil {
		return nil, err
	}
	if name == nil {
		return nil, p.errorHere(diag.SynExpectName, "Type name expected, got %s", p.describeNext())
	}
	return name, nil
}
