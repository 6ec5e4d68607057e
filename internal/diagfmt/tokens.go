package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"yapl/internal/source"
	"yapl/internal/token"
)

// SpanJSON is a byte range with its resolved start.
type SpanJSON struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
	Line  uint32 `json:"line"`
	Col   uint32 `json:"col"`
}

func makeSpan(sp source.Span) SpanJSON {
	lc := sp.Start.LineCol()
	return SpanJSON{Start: sp.Start.Off, End: sp.End.Off, Line: lc.Line, Col: lc.Col}
}

type TokenOutput struct {
	Kind  string   `json:"kind"`
	Text  string   `json:"text,omitempty"`
	Value string   `json:"value,omitempty"`
	Span  SpanJSON `json:"span"`
}

// FormatTokensPretty writes one line per token:
//
//	  3: Identifier      "main" at 1:5-1:9
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		start, end := tok.Span.Start.LineCol(), tok.Span.End.LineCol()

		if _, err := fmt.Fprintf(w, "%3d: %-15s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d\n", start.Line, start.Col, end.Line, end.Col)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON writes the tokens as a JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Span: makeSpan(tok.Span),
		}
		if tok.Value != tok.Text {
			out.Value = tok.Value
		}
		output = append(output, out)

		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
