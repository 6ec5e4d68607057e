package source

import "testing"

func TestSpanCover(t *testing.T) {
	f := NewVirtualFile("span.yp", "0123456789")
	g := NewVirtualFile("other.yp", "0123456789")
	tests := []struct {
		name string
		a, b Span
		want [2]uint32
	}{
		{"disjoint", SpanOf(f, 1, 3), SpanOf(f, 6, 8), [2]uint32{1, 8}},
		{"nested", SpanOf(f, 1, 9), SpanOf(f, 3, 4), [2]uint32{1, 9}},
		{"reversed", SpanOf(f, 6, 8), SpanOf(f, 1, 3), [2]uint32{1, 8}},
		{"other file ignored", SpanOf(f, 2, 3), SpanOf(g, 0, 9), [2]uint32{2, 3}},
		{"invalid receiver", Span{}, SpanOf(f, 4, 5), [2]uint32{4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Cover(tt.b)
			if got.Start.Off != tt.want[0] || got.End.Off != tt.want[1] {
				t.Errorf("Cover = [%d,%d), want [%d,%d)", got.Start.Off, got.End.Off, tt.want[0], tt.want[1])
			}
		})
	}
}

func TestSpanTextAndString(t *testing.T) {
	f := NewVirtualFile("span.yp", "val x\nval y")
	s := SpanOf(f, 6, 11)
	if s.Text() != "val y" {
		t.Errorf("Text() = %q", s.Text())
	}
	if s.String() != "2:1-2:6" {
		t.Errorf("String() = %q", s.String())
	}
	if s.IsPoint() || s.Len() != 5 {
		t.Errorf("unexpected IsPoint=%v Len=%d", s.IsPoint(), s.Len())
	}
	if !SpanOf(f, 0, 11).Contains(s) {
		t.Error("whole file should contain the span")
	}
}
