package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10

var builtinSeeds = []string{
	"",
	"package demo\n",
	"package a.b\nuse c.d\nuse e.*\nuse f as g\n",
	"val x = 1 + 2 * 3\nvar y: Int\n",
	"export fun add a: Int, b: Int: Int = a + b\n",
	"fun main()\n    val x = f(k: 3) { it }\n    print(x)\n",
	"class A extends B implements C, D\n    private val x = 1\n    fun get(): Int = x\n",
	"interface I extends A, B {\n    fun f(): Int\n}\n",
	"val t = `hello, name`\nval s = 'single' + \"double\"\n",
	"val a = if c then { x; y } else z\nval b = c ? a : b\n",
	"val m: [2, n]Float\nval f: fun(x: Int): Int = g\n",
	"val g = (-x)++ - --y\nval h = not a and b or c\n",
	"fun f()\n\tx\n    y\n",
	"val x = (1 +\n",
	"fun f(\n",
	"class A\n    val x\n        y\n",
	"val x = 1 @ 2\n",
	"fun f()\n    if x then\n        a\n    else\n        b\n    c\n",
	"fun f()\n    val x = 1 +\n        2\n    val y = g(\n        3)\n",
	"val a =\n    -x\n    y\n",
	"val a = { b } d\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds adds every *.yp file under testdata/, if present.
func addTestdataSeeds(f *testing.F) {
	root := "testdata"
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".yp" {
			return nil
		}
		// #nosec G304 -- path comes from the testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
