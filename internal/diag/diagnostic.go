package diag

import (
	"yapl/internal/source"
)

// Note is a secondary span with a message.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a positional finding. It implements error.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// New builds a diagnostic without reporting it.
func New(sev Severity, code Code, primary source.Span, msg string) *Diagnostic {
	return &Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

// NewError builds an error-severity diagnostic.
func NewError(code Code, primary source.Span, msg string) *Diagnostic {
	return New(SevError, code, primary, msg)
}

// IsPoint reports whether the primary span is empty.
func (d *Diagnostic) IsPoint() bool {
	return d.Primary.IsPoint()
}

// Error renders "message at l:c-l:c", or "message at l:c" for a point.
func (d *Diagnostic) Error() string {
	if !d.Primary.IsValid() {
		return d.Message
	}
	if d.IsPoint() {
		return d.Message + " at " + d.Primary.Start.String()
	}
	return d.Message + " at " + d.Primary.String()
}

// WithNote returns d with an extra note.
func (d *Diagnostic) WithNote(sp source.Span, msg string) *Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}
