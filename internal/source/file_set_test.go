package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.yp", []byte("hello world"), 0)
	id2 := fs.Add("test.yp", []byte("hello universe"), 0)
	if id1 != 0 || id2 != 1 {
		t.Fatalf("unexpected ids %d, %d", id1, id2)
	}

	latest, ok := fs.GetLatest("test.yp")
	if !ok || latest != id2 {
		t.Errorf("GetLatest = %d, %v; want %d", latest, ok, id2)
	}
	if string(fs.Get(id1).Content) != "hello world" {
		t.Error("first version lost")
	}
	if fs.Len() != 2 {
		t.Errorf("Len() = %d", fs.Len())
	}
}

func TestFilePointersStable(t *testing.T) {
	fs := NewFileSet()
	first := fs.Get(fs.AddVirtual("a.yp", []byte("a")))
	for i := 0; i < 64; i++ {
		fs.AddVirtual("b.yp", []byte("b"))
	}
	if fs.Get(0) != first {
		t.Error("file pointer changed after growth")
	}
}

func TestFileLines(t *testing.T) {
	f := NewVirtualFile("lines.yp", "a\nbb\n\nccc")
	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "a"},
		{2, "bb"},
		{3, ""},
		{4, "ccc"},
		{5, ""},
	}
	for _, tt := range tests {
		if got := f.Line(tt.line); got != tt.want {
			t.Errorf("Line(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
	if f.LineCount() != 4 {
		t.Errorf("LineCount() = %d, want 4", f.LineCount())
	}
}

func TestNormalization(t *testing.T) {
	crlf, changed := normalizeCRLF([]byte("a\r\nb\rc\r\n"))
	if !changed || string(crlf) != "a\nb\rc\n" {
		t.Errorf("normalizeCRLF = %q, %v", crlf, changed)
	}

	noBOM, had := removeBOM([]byte{0xEF, 0xBB, 0xBF, 'x'})
	if !had || string(noBOM) != "x" {
		t.Errorf("removeBOM = %q, %v", noBOM, had)
	}

	composed, changed := normalizeNFC([]byte("e\u0301"))
	if !changed || string(composed) != "\u00e9" {
		t.Errorf("normalizeNFC = %q, %v", composed, changed)
	}
	if _, changed := normalizeNFC([]byte("plain")); changed {
		t.Error("ascii should already be NFC")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.yp")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFval x\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "val x\n" {
		t.Errorf("content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("flags = %b", f.Flags)
	}

	if _, err := fs.Load(filepath.Join(dir, "missing.yp")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRelativePath(t *testing.T) {
	tmp := t.TempDir()
	base := filepath.Join(tmp, "base")
	inside := filepath.Join(base, "nested", "file.yp")
	outside := filepath.Join(tmp, "other", "file.yp")

	got, err := RelativePath(inside, base)
	if err != nil || got != "nested/file.yp" {
		t.Errorf("inside: %q, %v", got, err)
	}
	got, err = RelativePath(outside, base)
	if err != nil || got != normalizePath(outside) {
		t.Errorf("outside: %q, %v", got, err)
	}
}
