// Package diag defines the diagnostic model shared by the lexer and the parser.
//
// Diagnostic is the central record: severity, a stable numeric Code, a short
// message, the primary span and optional notes. A *Diagnostic is also an
// error value, so producers can report it to a Reporter and return it to
// unwind the current parse in one step:
//
//	return nil, diag.ReportError(p.opts.Reporter, diag.SynExpectToken, tok.Span, "expected ')'").Emit()
//
// Package diag performs no formatting beyond single-line summaries; caret
// rendering lives in internal/diagfmt.
package diag
