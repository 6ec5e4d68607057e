package diag

import (
	"errors"
	"testing"

	"yapl/internal/source"
)

type recordingReporter struct {
	got []*Diagnostic
}

func (r *recordingReporter) Report(d *Diagnostic) { r.got = append(r.got, d) }

func TestDiagnosticError(t *testing.T) {
	f := source.NewVirtualFile("err.yp", "val x = @\n")
	tests := []struct {
		name string
		span source.Span
		want string
	}{
		{"range", source.SpanOf(f, 8, 9), "Unexpected @ at 1:9-1:10"},
		{"point", source.SpanOf(f, 8, 8), "Unexpected @ at 1:9"},
		{"no span", source.Span{}, "Unexpected @"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewError(LexUnknownChar, tt.span, "Unexpected @")
			if got := d.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	f := source.NewVirtualFile("b.yp", "x")
	rec := &recordingReporter{}
	b := ReportError(rec, SynExpectToken, source.SpanOf(f, 0, 1), "expected ')'").
		WithNote(source.SpanOf(f, 0, 0), "opened here")
	first := b.Emit()
	second := b.Emit()
	if len(rec.got) != 1 {
		t.Fatalf("reported %d times, want 1", len(rec.got))
	}
	if first != second || first != rec.got[0] {
		t.Error("Emit should return the reported diagnostic")
	}
	if len(first.Notes) != 1 {
		t.Errorf("notes = %d", len(first.Notes))
	}

	var err error = first
	var d *Diagnostic
	if !errors.As(err, &d) || d.Code != SynExpectToken {
		t.Error("diagnostic should be usable as an error")
	}
}

func TestReportBuilderNilReporter(t *testing.T) {
	d := ReportError(nil, SynInternal, source.Span{}, "boom").Emit()
	if d == nil || d.Message != "boom" {
		t.Fatalf("unexpected %v", d)
	}
}

func TestBagLimitSortDedup(t *testing.T) {
	f := source.NewVirtualFile("bag.yp", "0123456789")
	bag := NewBag(3)
	bag.Add(NewError(SynExpectToken, source.SpanOf(f, 5, 6), "b"))
	bag.Add(NewError(LexUnknownChar, source.SpanOf(f, 1, 2), "a"))
	bag.Add(NewError(LexUnknownChar, source.SpanOf(f, 1, 2), "a again"))
	if bag.Add(NewError(LexUnknownChar, source.SpanOf(f, 7, 8), "dropped")) {
		t.Error("bag should be full")
	}
	if !bag.HasErrors() {
		t.Error("HasErrors() = false")
	}

	bag.Sort()
	bag.Dedup()
	items := bag.Items()
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	if items[0].Message != "a" || items[1].Message != "b" {
		t.Errorf("order = %q, %q", items[0].Message, items[1].Message)
	}
}

func TestDedupReporter(t *testing.T) {
	f := source.NewVirtualFile("d.yp", "xx")
	rec := &recordingReporter{}
	r := NewDedupReporter(rec)
	d := NewError(LexUnknownChar, source.SpanOf(f, 0, 1), "Unexpected x")
	r.Report(d)
	r.Report(NewError(LexUnknownChar, source.SpanOf(f, 0, 1), "Unexpected x"))
	r.Report(NewError(LexUnknownChar, source.SpanOf(f, 1, 2), "Unexpected x"))
	if len(rec.got) != 2 {
		t.Errorf("forwarded %d, want 2", len(rec.got))
	}
}

func TestFormatShort(t *testing.T) {
	f := source.NewVirtualFile("short.yp", "a\nb\n")
	diags := []*Diagnostic{
		NewError(SynExpectToken, source.SpanOf(f, 2, 3), "second\nline"),
		NewError(LexUnknownChar, source.SpanOf(f, 0, 1), "first").
			WithNote(source.SpanOf(f, 2, 2), "see here"),
	}
	want := "error LEX1001 short.yp:1:1 first\n" +
		"error SYN2001 short.yp:2:1 second line\n" +
		"note LEX1001 short.yp:2:1 see here"
	if got := FormatShort(diags, true); got != want {
		t.Errorf("FormatShort:\nwant:\n%s\ngot:\n%s", want, got)
	}
	if FormatShort(nil, true) != "" {
		t.Error("empty input should render empty")
	}
}
