package driver

import (
	"context"
	"fmt"

	"yapl/internal/ast"
	"yapl/internal/diag"
	"yapl/internal/dialect"
	"yapl/internal/parser"
	"yapl/internal/source"
	"yapl/internal/trace"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Package *ast.Package // nil when parsing failed
	Bag     *diag.Bag
	Err     error // the syntax error that stopped the parse
}

// Parse loads and parses path. Only I/O problems are returned as errors;
// syntax errors land in the result.
func Parse(ctx context.Context, path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	file, err := loadFile(ctx, fs, path)
	if err != nil {
		return nil, err
	}
	return parseInto(ctx, fs, file, maxDiagnostics), nil
}

// ParseSource parses content under the display name name, e.g. "<stdin>".
func ParseSource(ctx context.Context, name string, content []byte, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, content))
	return parseInto(ctx, fs, file, maxDiagnostics)
}

func parseInto(ctx context.Context, fs *source.FileSet, file *source.File, maxDiagnostics int) *ParseResult {
	bag := diag.NewBag(maxDiagnostics)
	pkg, err := parseFile(ctx, file, bag)
	return &ParseResult{
		FileSet: fs,
		File:    file,
		Package: pkg,
		Bag:     bag,
		Err:     err,
	}
}

func parseFile(ctx context.Context, file *source.File, bag *diag.Bag) (*ast.Package, error) {
	sp := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", trace.ParentSpan(ctx))
	// lexer and parser share one reporter; identical reports collapse
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: bag})
	pkg, err := parser.ParseFile(trace.WithParent(ctx, sp), file, parser.Options{Reporter: reporter})
	if err != nil {
		// a hint about foreign syntax rides along with the failure
		if d := dialect.Diagnose(file); d != nil {
			bag.Add(d)
		}
		sp.End("failed")
		return nil, err
	}
	sp.End(pluralize(len(pkg.Body), "item"))
	return pkg, nil
}

func loadFile(ctx context.Context, fs *source.FileSet, path string) (*source.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sp := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "load", trace.ParentSpan(ctx)).WithExtra("path", path)
	id, err := fs.Load(path)
	if err != nil {
		sp.End("failed")
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	file := fs.Get(id)
	sp.End(fmt.Sprintf("%d bytes", file.Size()))
	return file, nil
}

func pluralize(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
