package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestName), "[package]\nname = \"demo\"\n")
	nested := filepath.Join(root, "src", "deep")
	writeFile(t, filepath.Join(nested, "main.yp"), "val x = 1\n")

	for _, start := range []string{root, nested, filepath.Join(nested, "main.yp")} {
		got, ok, err := FindManifest(start)
		if err != nil || !ok {
			t.Fatalf("FindManifest(%q) = %q, %v, %v", start, got, ok, err)
		}
		if got != filepath.Join(root, ManifestName) {
			t.Fatalf("FindManifest(%q) = %q", start, got)
		}
	}

	projectRoot, ok, err := FindProjectRoot(nested)
	if err != nil || !ok || projectRoot != root {
		t.Fatalf("FindProjectRoot = %q, %v, %v", projectRoot, ok, err)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestName), `
[package]
name = "demo.app"
root = "src"

[diagnostics]
max = 5
`)
	if err := os.Mkdir(filepath.Join(root, "src"), 0o755); err != nil {
		t.Fatal(err)
	}

	m, ok, err := Load(root)
	if err != nil || !ok {
		t.Fatalf("Load: %v, %v", ok, err)
	}
	want := DefaultConfig()
	want.Package = PackageConfig{Name: "demo.app", Root: "src"}
	want.Diagnostics.Max = 5
	if m.Config != want {
		t.Fatalf("config = %+v, want %+v", m.Config, want)
	}

	src, err := m.SourceRoot()
	if err != nil || src != filepath.Join(root, "src") {
		t.Fatalf("SourceRoot = %q, %v", src, err)
	}
	cache, err := m.CacheDir()
	if err != nil || cache != filepath.Join(root, ".yapl-cache") {
		t.Fatalf("CacheDir = %q, %v", cache, err)
	}
}

func TestLoadWithoutManifest(t *testing.T) {
	dir := t.TempDir()
	m, ok, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if ok || m.Path != "" || m.Config != DefaultConfig() {
		t.Fatalf("unexpected manifest %+v (ok=%v)", m, ok)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		is      error
		substr  string
	}{
		{name: "syntax", content: "[package\n", substr: "failed to parse TOML"},
		{name: "unknown key", content: "[format]\nindent = \"  \"\n", substr: "unknown keys: format.indent"},
		{name: "bad name", content: "[package]\nname = \"1demo\"\n", is: ErrInvalidPackageName},
		{name: "bad indent", content: "[format]\nindent_width = 0\n", is: ErrInvalidIndentWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ManifestName)
			writeFile(t, path, tt.content)
			_, err := LoadConfig(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Fatalf("error %v is not %v", err, tt.is)
			}
			if tt.substr != "" && !strings.Contains(err.Error(), tt.substr) {
				t.Fatalf("error %q does not mention %q", err, tt.substr)
			}
		})
	}
}

func TestSourceRootMustStayInside(t *testing.T) {
	m := &Manifest{Root: t.TempDir(), Config: DefaultConfig()}
	for _, root := range []string{"../elsewhere", "/abs", "missing"} {
		m.Config.Package.Root = root
		if _, err := m.SourceRoot(); err == nil {
			t.Errorf("root %q accepted", root)
		}
	}
}

func TestIsValidPackageName(t *testing.T) {
	for name, want := range map[string]bool{
		"demo":     true,
		"a.b_c.d1": true,
		"":         false,
		"a..b":     false,
		"a.1b":     false,
		"dé":       false,
	} {
		if got := IsValidPackageName(name); got != want {
			t.Errorf("IsValidPackageName(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestCombineIsOrderSensitive(t *testing.T) {
	a, b, c := StringDigest("a"), StringDigest("b"), StringDigest("c")
	if Combine(a, b, c) == Combine(a, c, b) {
		t.Fatal("salt order ignored")
	}
	if Combine(a, b) != Combine(a, b) {
		t.Fatal("Combine is not deterministic")
	}
}
