package parser

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"yapl/internal/ast"
	"yapl/internal/diag"
	"yapl/internal/lexer"
	"yapl/internal/source"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Error())
	}
	return strings.Join(lines, "; ")
}

func parseSource(t *testing.T, src string) (*ast.Package, *diag.Bag, error) {
	t.Helper()
	file := source.NewVirtualFile("test.yp", src)
	bag := diag.NewBag(0)
	pkg, err := ParseFile(context.Background(), file, Options{Reporter: diag.BagReporter{Bag: bag}})
	return pkg, bag, err
}

func mustParse(t *testing.T, src string) *ast.Package {
	t.Helper()
	pkg, bag, err := parseSource(t, src)
	if err != nil {
		t.Fatalf("parse %q: %v (%s)", src, err, diagnosticsSummary(bag))
	}
	if bag.Len() != 0 {
		t.Fatalf("parse %q: unexpected diagnostics %s", src, diagnosticsSummary(bag))
	}
	return pkg
}

// initOf parses "val x = <expr>" and returns the initializer.
func initOf(t *testing.T, expr string) ast.Expr {
	t.Helper()
	pkg := mustParse(t, "val x = "+expr+"\n")
	if len(pkg.Body) != 1 {
		t.Fatalf("%q: got %d top-level nodes, want 1: %s", expr, len(pkg.Body), ast.Sprint(pkg))
	}
	val, ok := pkg.Body[0].(*ast.Val)
	if !ok {
		t.Fatalf("%q: got %s, want Val", expr, pkg.Body[0].Kind())
	}
	return val.Init
}

func newTestParser(src string) (*Parser, *diag.Bag) {
	file := source.NewVirtualFile("test.yp", src)
	bag := diag.NewBag(0)
	rep := diag.BagReporter{Bag: bag}
	return New(lexer.New(file, lexer.Options{Reporter: rep}), Options{Reporter: rep}), bag
}
