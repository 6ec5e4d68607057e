package parser

import (
	"strings"

	"yapl/internal/ast"
	"yapl/internal/diag"
	"yapl/internal/token"
	"yapl/internal/trace"
)

// parsePackage reads: [ "package" dotted ] { use | definition } EOF
func (p *Parser) parsePackage() (*ast.Package, error) {
	pkg := &ast.Package{}
	header, err := p.takeOK(kw("package"))
	if err != nil {
		return nil, err
	}
	if header {
		if pkg.Name, err = p.dotted(); err != nil {
			return nil, err
		}
	}

	pkg.Body, err = many(p, p.parseUse, widen[ast.Node](p.parseDefinition))
	if err != nil {
		return nil, err
	}

	tok, err := p.next(true)
	if err != nil {
		return nil, err
	}
	if tok.Kind != token.EOF {
		return nil, p.errorf(diag.SynExpectDefinition, tok, "Definition expected, got %s", tok.Describe())
	}
	return pkg, nil
}

// dotted reads ident { "." ident }.
func (p *Parser) dotted() (string, error) {
	first, err := p.expect(kindOf(token.Ident), diag.SynExpectName)
	if err != nil {
		return "", err
	}
	parts := []string{first.Value}
	for {
		dot, err := p.takeOK(kindOf(token.Dot))
		if err != nil {
			return "", err
		}
		if !dot {
			return strings.Join(parts, "."), nil
		}
		id, err := p.expect(kindOf(token.Ident), diag.SynExpectName)
		if err != nil {
			return "", err
		}
		parts = append(parts, id.Value)
	}
}

// parseUse reads: "use" dotted [ ".*" ] [ "as" ident ]
func (p *Parser) parseUse() (ast.Node, error) {
	if ok, err := p.takeOK(kw("use")); !ok {
		return nil, err
	}
	first, err := p.expect(kindOf(token.Ident), diag.SynExpectName)
	if err != nil {
		return nil, err
	}
	parts := []string{first.Value}
	for {
		dot, err := p.takeOK(kindOf(token.Dot))
		if err != nil {
			return nil, err
		}
		if !dot {
			break
		}
		star, err := p.takeOK(oper("*"))
		if err != nil {
			return nil, err
		}
		if star {
			return &ast.UseAll{Path: strings.Join(parts, ".")}, nil
		}
		tok, ok, err := p.take(kindOf(token.Ident))
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, p.errorf(diag.SynExpectName, tok, "Expected identifier or *, got %s", tok.Describe())
		}
		parts = append(parts, tok.Value)
	}

	use := &ast.Use{Path: strings.Join(parts, ".")}
	alias, err := p.takeOK(kw("as"))
	if err != nil {
		return nil, err
	}
	if alias {
		tok, err := p.expect(kindOf(token.Ident), diag.SynExpectName)
		if err != nil {
			return nil, err
		}
		use.Alias = tok.Value
	}
	return use, nil
}

// parseDefinition reads: { modifier } ( val | var | fun | class | interface )
func (p *Parser) parseDefinition() (ast.Definition, error) {
	mods, err := many(p, p.parseModifier)
	if err != nil {
		return nil, err
	}
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if len(mods) == 0 && !startsDefinition(tok) {
		return nil, nil
	}

	span := trace.Begin(p.opts.Tracer, trace.ScopeNode, "definition", p.opts.TraceParent)
	def, err := oneOf(p,
		p.parseValue,
		widen[ast.Definition](p.parseFunDefinition),
		p.parseClass,
		p.parseInterface,
	)
	if err != nil {
		span.End("error")
		return nil, err
	}
	if def == nil {
		span.End("error")
		return nil, p.errorHere(diag.SynExpectDefinition, "Definition expected after modifiers, got %s", p.describeNext())
	}
	ast.SetModifiers(def, mods)
	span.WithExtra("at", def.Span().Start.String()).End(definitionName(def))
	return def, nil
}

func startsDefinition(tok token.Token) bool {
	if tok.Kind != token.Keyword {
		return false
	}
	switch tok.Value {
	case "val", "var", "fun", "class", "interface":
		return true
	}
	return false
}

func definitionName(def ast.Definition) string {
	name := ""
	switch d := def.(type) {
	case *ast.Val:
		name = identName(d.Name)
	case *ast.Var:
		name = identName(d.Name)
	case *ast.Function:
		name = identName(d.Name)
	case *ast.Class:
		name = d.Name.Name
	case *ast.Interface:
		name = d.Name.Name
	}
	return strings.ToLower(def.Kind().String()) + " " + name
}

func identName(id *ast.Identifier) string {
	if id == nil {
		return "<anonymous>"
	}
	return id.Name
}

func (p *Parser) parseModifier() (*ast.Modifier, error) {
	tok, err := p.peek()
	if err != nil || !tok.IsModifier() {
		return nil, err
	}
	if tok, err = p.next(true); err != nil {
		return nil, err
	}
	return &ast.Modifier{Value: tok.Value}, nil
}

// parseValue reads: ("val"|"var") ident [ ":" type ] [ "=" expression ]
func (p *Parser) parseValue() (ast.Definition, error) {
	tok, err := p.peek()
	if err != nil || (!tok.IsKeyword("val") && !tok.IsKeyword("var")) {
		return nil, err
	}
	if _, err := p.next(true); err != nil {
		return nil, err
	}

	var decl ast.ValueDecl
	if decl.Name, err = p.expectIdentifier(); err != nil {
		return nil, err
	}
	typed, err := p.takeOK(oper(":"))
	if err != nil {
		return nil, err
	}
	if typed {
		if decl.Type, err = p.expectType(); err != nil {
			return nil, err
		}
	}
	assigned, err := p.takeOK(oper("="))
	if err != nil {
		return nil, err
	}
	if assigned {
		if decl.Init, err = p.expectExpression(true); err != nil {
			return nil, err
		}
	}

	if tok.Value == "val" {
		return &ast.Val{ValueDecl: decl}, nil
	}
	return &ast.Var{ValueDecl: decl}, nil
}

func (p *Parser) parseFunDefinition() (*ast.Function, error) {
	return p.parseFun(true)
}

// parseFun reads:
//
//	"fun" [ ident ] [ "(" args ")" | args ] [ ":" ( type | "(" types ")" ) ] [ "=" ] [ block ]
//
// The name and a bare argument list must start on the "fun" line.
func (p *Parser) parseFun(withBody bool) (*ast.Function, error) {
	if ok, err := p.takeOK(kw("fun")); !ok {
		return nil, err
	}
	fn := &ast.Function{}

	tok, err := p.peekInline()
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.Ident {
		if fn.Name, err = node(p, p.parseIdentifier); err != nil {
			return nil, err
		}
	}

	if tok, err = p.peekInline(); err != nil {
		return nil, err
	}
	if tok.IsPunct("(") || tok.Kind == token.Ident {
		fn.Args, err = delimited(p, p.parseFunArgument, listSpec{open: "(", sep: ",", close: ")", bare: true})
		if err != nil {
			return nil, err
		}
	}

	returns, err := p.takeOK(oper(":"))
	if err != nil {
		return nil, err
	}
	if returns {
		if fn.Returns, err = p.parseReturnTypes(); err != nil {
			return nil, err
		}
	}

	if !withBody {
		return fn, nil
	}
	explicit, err := p.takeOK(oper("="))
	if err != nil {
		return nil, err
	}
	if fn.Body, err = p.parseBody(explicit); err != nil {
		return nil, err
	}
	if explicit && fn.Body == nil {
		return nil, p.errorHere(diag.SynExpectExpression, "Expression expected after '=', got %s", p.describeNext())
	}
	return fn, nil
}

// parseReturnTypes reads a single type or a parenthesized list.
func (p *Parser) parseReturnTypes() ([]ast.TypeRef, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.IsPunct("(") {
		types, err := delimited(p, p.parseTypeRef, listSpec{open: "(", sep: ",", close: ")"})
		if err != nil {
			return nil, err
		}
		if len(types) == 0 {
			return nil, p.errorHere(diag.SynExpectType, "Type expected, got %s", p.describeNext())
		}
		return types, nil
	}
	t, err := p.expectType()
	if err != nil {
		return nil, err
	}
	return []ast.TypeRef{t}, nil
}

// parseFunArgument reads: ident ":" type
func (p *Parser) parseFunArgument() (*ast.FunctionArgument, error) {
	name, err := node(p, p.parseIdentifier)
	if err != nil || name == nil {
		return nil, err
	}
	if _, err := p.expect(oper(":"), diag.SynExpectToken); err != nil {
		return nil, err
	}
	typ, err := p.expectType()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionArgument{Name: name, Type: typ}, nil
}

// parseClass reads: "class" name [ "extends" type ] [ "implements" types ] block
func (p *Parser) parseClass() (ast.Definition, error) {
	if ok, err := p.takeOK(kw("class")); !ok {
		return nil, err
	}
	name, err := p.expectTypeName()
	if err != nil {
		return nil, err
	}
	c := &ast.Class{Name: name}

	extends, err := p.takeOK(kw("extends"))
	if err != nil {
		return nil, err
	}
	if extends {
		if c.Super, err = p.expectType(); err != nil {
			return nil, err
		}
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.IsPunct(",") {
			return nil, p.errorf(diag.SynMultipleSuperclasses, tok, "Class cannot have multiple superclasses")
		}
	}

	implements, err := p.takeOK(kw("implements"))
	if err != nil {
		return nil, err
	}
	if implements {
		if c.Interfaces, err = p.typeList(); err != nil {
			return nil, err
		}
	}

	c.Members, err = block(p, p.parseDefinition, blockSpec{missing: diag.SynExpectDefinition, what: "definition"})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// parseInterface reads: "interface" name [ "extends" types ] block
func (p *Parser) parseInterface() (ast.Definition, error) {
	if ok, err := p.takeOK(kw("interface")); !ok {
		return nil, err
	}
	name, err := p.expectTypeName()
	if err != nil {
		return nil, err
	}
	it := &ast.Interface{Name: name}

	extends, err := p.takeOK(kw("extends"))
	if err != nil {
		return nil, err
	}
	if extends {
		if it.Supers, err = p.typeList(); err != nil {
			return nil, err
		}
	}

	it.Members, err = block(p, p.parseDefinition, blockSpec{missing: diag.SynExpectDefinition, what: "definition"})
	if err != nil {
		return nil, err
	}
	return it, nil
}

// typeList reads type { "," type } with at least one type.
func (p *Parser) typeList() ([]ast.TypeRef, error) {
	types, err := delimited(p, p.parseTypeRef, listSpec{sep: ","})
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return nil, p.errorHere(diag.SynExpectType, "Type expected, got %s", p.describeNext())
	}
	return types, nil
}

func (p *Parser) parseIdentifier() (*ast.Identifier, error) {
	tok, ok, err := p.take(kindOf(token.Ident))
	if !ok {
		return nil, err
	}
	return &ast.Identifier{Name: tok.Value}, nil
}

func (p *Parser) expectIdentifier() (*ast.Identifier, error) {
	id, err := node(p, p.parseIdentifier)
	if err != nil {
		return nil, err
	}
	if id == nil {
		return nil, p.errorHere(diag.SynExpectName, "Name expected, got %s", p.describeNext())
	}
	return id, nil
}
