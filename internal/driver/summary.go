package driver

import (
	"fortio.org/safecast"

	"yapl/internal/ast"
	"yapl/internal/diag"
	"yapl/internal/export"
	"yapl/internal/source"
)

// DefinitionSummary describes one top-level definition of a checked file.
type DefinitionSummary struct {
	Kind     string
	Name     string
	Exported bool
	Members  uint16
}

// NoteRecord is a diag.Note with its span reduced to offsets.
type NoteRecord struct {
	HasSpan    bool
	Start, End uint32
	Msg        string
}

// DiagnosticRecord is a diagnostic detached from its file so it can be
// cached and restored against the same content later.
type DiagnosticRecord struct {
	Severity   uint8
	Code       uint16
	Message    string
	HasSpan    bool
	Start, End uint32
	Notes      []NoteRecord
}

// FileSummary is what `yapl check` keeps about a file.
type FileSummary struct {
	Schema      uint16
	Path        string
	Package     string
	Definitions []DefinitionSummary
	Diagnostics []DiagnosticRecord
	Broken      bool
}

// Exports counts the exported definitions.
func (s *FileSummary) Exports() int {
	n := 0
	for _, d := range s.Definitions {
		if d.Exported {
			n++
		}
	}
	return n
}

// Summarize builds the summary of a parsed file. pkg is nil when the parse
// failed.
func Summarize(path string, pkg *ast.Package, bag *diag.Bag) *FileSummary {
	s := &FileSummary{Schema: diskCacheSchemaVersion, Path: path}
	if pkg != nil {
		s.Package = pkg.Name
		for _, def := range export.Definitions(pkg) {
			s.Definitions = append(s.Definitions, summarizeDefinition(def))
		}
	}
	if bag != nil {
		for _, d := range bag.Items() {
			s.Diagnostics = append(s.Diagnostics, recordOf(d))
		}
		s.Broken = bag.HasErrors()
	}
	if pkg == nil {
		s.Broken = true
	}
	return s
}

func summarizeDefinition(def ast.Definition) DefinitionSummary {
	out := DefinitionSummary{
		Kind:     def.Kind().String(),
		Exported: ast.HasModifier(def, "export"),
	}
	var members int
	switch d := def.(type) {
	case *ast.Val:
		out.Name = d.Name.Name
	case *ast.Var:
		out.Name = d.Name.Name
	case *ast.Function:
		if d.Name != nil {
			out.Name = d.Name.Name
		}
	case *ast.Class:
		out.Name = d.Name.Name
		members = len(d.Members)
	case *ast.Interface:
		out.Name = d.Name.Name
		members = len(d.Members)
	}
	m, err := safecast.Conv[uint16](members)
	if err != nil {
		m = ^uint16(0)
	}
	out.Members = m
	return out
}

func recordOf(d *diag.Diagnostic) DiagnosticRecord {
	r := DiagnosticRecord{
		Severity: uint8(d.Severity),
		Code:     uint16(d.Code),
		Message:  d.Message,
		HasSpan:  d.Primary.IsValid(),
		Start:    d.Primary.Start.Off,
		End:      d.Primary.End.Off,
	}
	for _, n := range d.Notes {
		r.Notes = append(r.Notes, NoteRecord{
			HasSpan: n.Span.IsValid(),
			Start:   n.Span.Start.Off,
			End:     n.Span.End.Off,
			Msg:     n.Msg,
		})
	}
	return r
}

// Restore rebuilds the recorded diagnostics against file, which must have
// the content the summary was made from.
func (s *FileSummary) Restore(file *source.File, maxDiagnostics int) *diag.Bag {
	bag := diag.NewBag(maxDiagnostics)
	span := func(ok bool, start, end uint32) source.Span {
		if !ok {
			return source.Span{}
		}
		return source.SpanOf(file, start, end)
	}
	for _, r := range s.Diagnostics {
		d := diag.New(diag.Severity(r.Severity), diag.Code(r.Code), span(r.HasSpan, r.Start, r.End), r.Message)
		for _, n := range r.Notes {
			d.WithNote(span(n.HasSpan, n.Start, n.End), n.Msg)
		}
		bag.Add(d)
	}
	return bag
}
