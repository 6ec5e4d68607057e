package dialect

import (
	"yapl/internal/diag"
	"yapl/internal/source"
)

// Thresholds a classification must reach before a hint is reported.
const (
	MinScore      = 4
	MinConfidence = 0.6
)

// Diagnose classifies file and returns an informational diagnostic for the
// strongest signal of the dominant dialect, or nil when the evidence is
// too weak.
func Diagnose(file *source.File) *diag.Diagnostic {
	e := Collect(file)
	c := Classify(e)
	if c.Kind == Unknown || c.Score < MinScore || c.Confidence < MinConfidence {
		return nil
	}
	h, ok := e.Strongest(c.Kind)
	if !ok {
		return nil
	}
	msg, note := Render(h)
	d := diag.New(diag.SevInfo, diag.SynForeignSyntax, h.Span, msg)
	if note != "" {
		d.WithNote(h.Span, note)
	}
	return d
}
