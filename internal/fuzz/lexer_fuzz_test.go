package fuzztests

import (
	"testing"

	"yapl/internal/diag"
	"yapl/internal/lexer"
	"yapl/internal/source"
	"yapl/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		file := source.NewVirtualFile("fuzz.yp", string(clampInput(input)))
		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

		var last uint32
		// every token consumes input, so the loop is bounded by the file size
		for i := 0; ; i++ {
			if i > 4*len(file.Content)+16 {
				t.Fatalf("lexer does not terminate on %q", file.Content)
			}
			tok, _ := lx.Next(false)
			if tok.Span.Start.Off < last {
				t.Fatalf("token %s at %d goes back before %d", tok.Kind, tok.Span.Start.Off, last)
			}
			last = tok.Span.Start.Off
			if tok.Kind == token.EOF {
				break
			}
		}
	})
}
