package diag

import "yapl/internal/source"

// Reporter is the sink phases report diagnostics to.
// Implementations: BagReporter, DedupReporter, ReporterFunc.
type Reporter interface {
	Report(d *Diagnostic)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(d *Diagnostic)

// Report calls f(d).
func (f ReporterFunc) Report(d *Diagnostic) { f(d) }

// ReportBuilder accumulates diagnostic details before emitting to Reporter.
type ReportBuilder struct {
	reporter Reporter
	diag     *Diagnostic
	emitted  bool
}

// NewReportBuilder constructs a builder bound to r. A nil r is allowed:
// Emit then only returns the diagnostic.
func NewReportBuilder(r Reporter, sev Severity, code Code, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{
		reporter: r,
		diag:     New(sev, code, primary, msg),
	}
}

// ReportError is a shortcut for SevError diagnostics.
func ReportError(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevError, code, primary, msg)
}

// ReportWarning is a shortcut for SevWarning diagnostics.
func ReportWarning(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevWarning, code, primary, msg)
}

// WithNote appends a note to the diagnostic.
func (b *ReportBuilder) WithNote(sp source.Span, msg string) *ReportBuilder {
	if b == nil {
		return nil
	}
	b.diag.WithNote(sp, msg)
	return b
}

// Emit sends the diagnostic to the reporter exactly once and returns it.
func (b *ReportBuilder) Emit() *Diagnostic {
	if b == nil {
		return nil
	}
	if !b.emitted && b.reporter != nil {
		b.reporter.Report(b.diag)
	}
	b.emitted = true
	return b.diag
}

// BagReporter writes into a *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d *Diagnostic) {
	if r.Bag == nil || d == nil {
		return
	}
	r.Bag.Add(d)
}
