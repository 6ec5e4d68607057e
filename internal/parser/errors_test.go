package parser

import (
	"context"
	"errors"
	"strings"
	"testing"

	"yapl/internal/ast"
	"yapl/internal/diag"
	"yapl/internal/source"
)

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
		at   string // text the primary span starts at, "" for end of input
	}{
		{"unknown char", "val x = 1 @", diag.LexUnknownChar, "@"},
		{"multiple superclasses", "class A extends B, C\n", diag.SynMultipleSuperclasses, ", C"},
		{"modifiers without definition", "public\n", diag.SynExpectDefinition, ""},
		{"missing value name", "val = 1\n", diag.SynExpectName, "= 1"},
		{"missing type", "val x: = 1\n", diag.SynExpectType, "= 1"},
		{"empty explicit body", "fun f() =\n", diag.SynExpectExpression, ""},
		{"missing condition", "val x = if then 1\n", diag.SynExpectCondition, "then"},
		{"unclosed paren", "val x = (1 + 2\n", diag.SynExpectToken, ""},
		{"expression at top level", "5 * 10\n", diag.SynExpectDefinition, "5"},
		{"detached suffix operator", "fun f()\n    x ++\n", diag.SynExpectExpression, ""},
		{"unexpected indent", "class A\n    val x\n        y\n", diag.SynUnexpectedToken, "        y"},
		{"argument without type", "fun f(a Int)\n", diag.SynExpectToken, "Int"},
		{"dangling use dot", "use a.\n", diag.SynExpectName, ""},
		{"non-definition class member", "interface I\n    5\n", diag.SynExpectDefinition, "5"},
		{"named argument without value", "val x = f(k: )\n", diag.SynExpectExpression, ")"},
		{"unclosed template", "val x = `a\n", diag.SynExpectToken, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg, bag, err := parseSource(t, tt.src)
			if err == nil {
				t.Fatalf("expected error, got %s", ast.Sprint(pkg))
			}
			if pkg != nil {
				t.Errorf("expected nil package on error")
			}
			if bag.Len() != 1 {
				t.Fatalf("expected exactly one diagnostic, got %s", diagnosticsSummary(bag))
			}
			d := bag.Items()[0]
			if d.Code != tt.code {
				t.Errorf("code = %s, want %s (%s)", d.Code.ID(), tt.code.ID(), diagnosticsSummary(bag))
			}
			var got *diag.Diagnostic
			if !errors.As(err, &got) || got != d {
				t.Errorf("returned error %v is not the reported diagnostic", err)
			}
			if errors.Is(err, ErrInternal) {
				t.Errorf("syntax error must not be internal")
			}

			wantOff := len(strings.TrimRight(tt.src, "\n"))
			if tt.at != "" {
				wantOff = strings.Index(tt.src, tt.at)
			}
			if off := int(d.Primary.Start.Off); tt.at != "" && off != wantOff {
				t.Errorf("diagnostic at offset %d, want %d", off, wantOff)
			} else if tt.at == "" && off < wantOff {
				t.Errorf("diagnostic at offset %d, want end of input (>= %d)", off, wantOff)
			}
		})
	}
}

func TestUnknownCharReportedOnce(t *testing.T) {
	src := "val x = 1 @"
	_, bag, err := parseSource(t, src)
	if err == nil {
		t.Fatal("expected error")
	}
	if bag.Len() != 1 {
		t.Fatalf("got %s", diagnosticsSummary(bag))
	}
	d := bag.Items()[0]
	if d.Code != diag.LexUnknownChar {
		t.Fatalf("code = %s", d.Code.ID())
	}
	if d.Primary.Start.Off != 10 || d.Primary.End.Off != 11 {
		t.Errorf("span = %d..%d, want 10..11", d.Primary.Start.Off, d.Primary.End.Off)
	}
}

func TestNilReporter(t *testing.T) {
	file := source.NewVirtualFile("test.yp", "val = 1")
	_, err := ParseFile(context.Background(), file, Options{})
	var d *diag.Diagnostic
	if !errors.As(err, &d) || d.Code != diag.SynExpectName {
		t.Fatalf("got %v, want a %s diagnostic", err, diag.SynExpectName.ID())
	}
}

func TestOneOfDetectsBrokenProduction(t *testing.T) {
	p, bag := newTestParser("a b")
	rogue := func() (ast.Node, error) {
		_, err := p.next(true)
		return nil, err
	}
	_, err := oneOf(p, rogue)
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("got %v, want ErrInternal", err)
	}
	var d *diag.Diagnostic
	if !errors.As(err, &d) || d.Code != diag.SynInternal {
		t.Errorf("internal error does not carry a %s diagnostic: %v", diag.SynInternal.ID(), err)
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.SynInternal {
		t.Errorf("got %s", diagnosticsSummary(bag))
	}
}
