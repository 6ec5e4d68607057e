package lexer

import (
	"yapl/internal/diag"
	"yapl/internal/source"
)

// Options configures a Lexer.
type Options struct {
	// Reporter receives every lexical error once, when it is scanned.
	// It may be nil; errors are still returned from Peek and Next.
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) error {
	return diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
}
