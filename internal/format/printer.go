package format

import (
	"context"
	"errors"
	"io"

	"yapl/internal/ast"
	"yapl/internal/diag"
	"yapl/internal/parser"
	"yapl/internal/source"
	"yapl/internal/token"
)

// Options controls the printed layout.
type Options struct {
	IndentWidth  int  // spaces per level, 4 when zero
	UseTabs      bool // indent with one tab per level instead
	KeepComments bool // re-emit comments found in node trivia
}

func (o Options) withDefaults() Options {
	if o.IndentWidth <= 0 {
		o.IndentWidth = 4
	}
	return o
}

// printer is an ast.Visitor writing source text. braces counts the
// enclosing positions where more text may follow on the same line;
// blocks printed there use braces instead of indentation.
type printer struct {
	w      *Writer
	opt    Options
	braces int
}

// Print writes pkg as source text to w.
func Print(w io.Writer, pkg *ast.Package, opt Options) error {
	if pkg == nil {
		return errors.New("format: nil package")
	}
	_, err := w.Write(Source(pkg, opt))
	return err
}

// Source returns pkg as source text.
func Source(pkg *ast.Package, opt Options) []byte {
	opt = opt.withDefaults()
	p := &printer{w: NewWriter(opt), opt: opt}
	p.node(pkg)
	p.w.Newline()
	return p.w.Bytes()
}

func (p *printer) node(n ast.Node) {
	ast.Dispatch(p, n)
}

// inner prints n where the line continues after it.
func (p *printer) inner(n ast.Node) {
	p.braces++
	p.node(n)
	p.braces--
}

// block prints a statement list. At statement level it is an indented
// block on the following lines, elsewhere a braced one on this line.
func (p *printer) block(stmts []ast.Node) {
	if len(stmts) == 0 || p.braces > 0 {
		p.w.Space()
		p.braced(stmts)
		return
	}
	p.w.Newline()
	p.w.IndentPush()
	for _, s := range stmts {
		p.leadingComments(s)
		p.node(s)
		p.w.Newline()
	}
	p.w.IndentPop()
}

func (p *printer) braced(stmts []ast.Node) {
	if len(stmts) == 0 {
		p.w.WriteString("{}")
		return
	}
	p.w.WriteString("{ ")
	p.braces++
	for i, s := range stmts {
		if i > 0 {
			p.w.WriteString("; ")
		}
		p.node(s)
	}
	p.braces--
	p.w.WriteString(" }")
}

// leadingComments writes the comments absorbed in front of n, each on
// its own line. Line comments cannot be written inside braces.
func (p *printer) leadingComments(n ast.Node) {
	if !p.opt.KeepComments || p.braces > 0 || !n.Span().IsValid() {
		return
	}
	start := n.Span().Start.Off
	var trivia []token.Token
	trivia = append(trivia, n.Trivia()...)
	if d, ok := n.(ast.Definition); ok {
		for _, m := range d.Modifiers() {
			trivia = append(trivia, m.Trivia()...)
		}
	}
	for _, tok := range trivia {
		if tok.Kind == token.Comment && tok.Span.Start.Off < start {
			p.comment(tok)
		}
	}
}

func (p *printer) comment(tok token.Token) {
	p.w.WriteString("#" + tok.Value)
	p.w.Newline()
}

// CheckRoundTrip prints the file's tree, parses the output again and
// compares both trees.
func CheckRoundTrip(sf *source.File, opt Options, maxDiag int) (ok bool, msg string) {
	origBag := diag.NewBag(maxDiag)
	orig, err := parseOnce(sf, origBag)
	if err != nil || origBag.HasErrors() {
		return false, "fmt-check: initial parse has errors"
	}

	formatted := Source(orig, opt)
	rebuilt := source.NewVirtualFile(sf.Path, string(formatted))
	newBag := diag.NewBag(maxDiag)
	again, err := parseOnce(rebuilt, newBag)
	if err != nil || newBag.HasErrors() {
		return false, "fmt-check: reparse failed"
	}
	if !ast.Equal(orig, again) {
		return false, "fmt-check: tree differs after round-trip"
	}
	return true, "fmt-check: OK"
}

func parseOnce(sf *source.File, bag *diag.Bag) (*ast.Package, error) {
	return parser.ParseFile(context.Background(), sf, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
}
