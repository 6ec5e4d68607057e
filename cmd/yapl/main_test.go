package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliResult struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return cliResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestVersionJSON(t *testing.T) {
	res := runCLI(t, "", "version", "--format", "json", "--full")
	if res.code != 0 {
		t.Fatalf("exit %d: %s", res.code, res.stderr)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(res.stdout), &payload); err != nil {
		t.Fatalf("decode %q: %v", res.stdout, err)
	}
	if payload.Tool != "yapl" || payload.Version == "" || payload.GitCommit == "" {
		t.Fatalf("payload = %+v", payload)
	}
}

func TestTokenizeReportsLexErrors(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "main.yp"), "val x = 1 @\n")
	res := runCLI(t, "", "tokenize", path)
	if res.code != 1 {
		t.Fatalf("exit %d, want 1", res.code)
	}
	if !strings.Contains(res.stderr, "error[LEX") {
		t.Fatalf("stderr lacks the lexer diagnostic:\n%s", res.stderr)
	}
	if !strings.Contains(res.stdout, "EOF") {
		t.Fatalf("tokens not printed:\n%s", res.stdout)
	}
}

func TestParseFromStdin(t *testing.T) {
	res := runCLI(t, "val x=1\n", "parse", "--format", "source", "-")
	if res.code != 0 {
		t.Fatalf("exit %d: %s", res.code, res.stderr)
	}
	if res.stdout != "val x = 1\n" {
		t.Fatalf("stdout = %q", res.stdout)
	}

	res = runCLI(t, "val x = (\n", "parse", "-")
	if res.code != 1 || !strings.Contains(res.stderr, "error[SYN") {
		t.Fatalf("syntax error not reported: exit %d\n%s", res.code, res.stderr)
	}

	res = runCLI(t, "", "parse", "--format", "yaml", "-")
	if res.code != 1 || !strings.Contains(res.stderr, "unknown format") {
		t.Fatalf("bad format accepted: exit %d\n%s", res.code, res.stderr)
	}
}

func TestExports(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "lib.yp"), "package demo\nexport fun f() = 1\nfun g() = 2\n")
	res := runCLI(t, "", "exports", path)
	if res.code != 0 {
		t.Fatalf("exit %d: %s", res.code, res.stderr)
	}
	if !strings.Contains(res.stdout, "package demo") || !strings.Contains(res.stdout, "export fun f()") {
		t.Fatalf("exports output:\n%s", res.stdout)
	}
	if strings.Contains(res.stdout, "g()") || strings.Contains(res.stdout, "= 1") {
		t.Fatalf("private definition or body leaked:\n%s", res.stdout)
	}
}

func TestFmtCheckAndWrite(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "messy.yp"), "val x=1+2\n")

	res := runCLI(t, "", "fmt", "--check", path)
	if res.code != 1 || strings.TrimSpace(res.stdout) != path {
		t.Fatalf("--check: exit %d, stdout %q", res.code, res.stdout)
	}

	res = runCLI(t, "", "fmt", path)
	if res.code != 0 || res.stdout != "val x = 1 + 2\n" {
		t.Fatalf("fmt to stdout: exit %d, stdout %q", res.code, res.stdout)
	}

	if res = runCLI(t, "", "fmt", "--write", path); res.code != 0 {
		t.Fatalf("--write: exit %d: %s", res.code, res.stderr)
	}
	if res = runCLI(t, "", "fmt", "--check", path); res.code != 0 {
		t.Fatalf("file still unformatted after --write: %s", res.stdout)
	}

	if res = runCLI(t, "", "fmt", "--check", "--write", path); res.code != 1 {
		t.Fatal("--check with --write accepted")
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "good.yp"), "val x = 1\n")
	writeFile(t, filepath.Join(dir, "bad.yp"), "fun f(\n")

	res := runCLI(t, "", "check", "--ui", "off", "--no-cache", dir)
	if res.code != 1 {
		t.Fatalf("exit %d, want 1", res.code)
	}
	if !strings.Contains(res.stdout, "checked 2 file(s), 0 cached") {
		t.Fatalf("summary missing:\n%s", res.stdout)
	}
	if !strings.Contains(res.stderr, "bad.yp") {
		t.Fatalf("diagnostic for bad.yp missing:\n%s", res.stderr)
	}

	res = runCLI(t, "", "check", "--no-cache", "--format", "short", dir)
	if res.code != 1 || !strings.HasPrefix(res.stdout, "error SYN") {
		t.Fatalf("short format: exit %d\n%s", res.code, res.stdout)
	}

	res = runCLI(t, "", "check", "--ui", "off", "--no-cache", filepath.Join(dir, "good.yp"))
	if res.code != 0 {
		t.Fatalf("good file: exit %d\n%s", res.code, res.stderr)
	}
}

func TestCheckUsesManifest(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "yapl.toml"), "[package]\nname = \"demo\"\nroot = \"src\"\n\n[cache]\ndir = \"cache\"\n")
	writeFile(t, filepath.Join(root, "src", "main.yp"), "package demo\nval x = 1\n")
	t.Chdir(root)

	res := runCLI(t, "", "check", "--ui", "off")
	if res.code != 0 || !strings.Contains(res.stdout, "checked 1 file(s), 0 cached") {
		t.Fatalf("first run: exit %d\n%s%s", res.code, res.stdout, res.stderr)
	}
	if _, err := os.Stat(filepath.Join(root, "cache")); err != nil {
		t.Fatalf("cache directory not created: %v", err)
	}
	res = runCLI(t, "", "check", "--ui", "off")
	if res.code != 0 || !strings.Contains(res.stdout, "checked 1 file(s), 1 cached") {
		t.Fatalf("second run: exit %d\n%s%s", res.code, res.stdout, res.stderr)
	}
}

func TestTraceOutput(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "main.yp"), "val x = 1\n")
	tracePath := filepath.Join(dir, "trace.ndjson")

	res := runCLI(t, "", "--trace", tracePath, "parse", path)
	if res.code != 0 {
		t.Fatalf("exit %d: %s", res.code, res.stderr)
	}
	data, err := os.ReadFile(tracePath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"name":"parse"`) {
		t.Fatalf("trace lacks the parse span:\n%s", data)
	}
}

func TestInvalidColorFlag(t *testing.T) {
	res := runCLI(t, "", "--color", "sometimes", "parse", "-")
	if res.code != 1 || !strings.Contains(res.stderr, "invalid --color value") {
		t.Fatalf("exit %d: %s", res.code, res.stderr)
	}
}
