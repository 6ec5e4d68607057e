package diag

import (
	"fmt"
	"sort"
	"strings"

	"yapl/internal/source"
)

type shortDiagnostic struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatShort renders one line per diagnostic (and per note when
// includeNotes is set), sorted deterministically:
//
//	error SYN2001 main.yp:3:7 expected ')'
func FormatShort(diags []*Diagnostic, includeNotes bool) string {
	if len(diags) == 0 {
		return ""
	}

	rendered := make([]shortDiagnostic, 0, len(diags))
	for _, d := range diags {
		rendered = append(rendered, shortOf(strings.ToLower(d.Severity.String()), d.Code, d.Primary.File(), d.Primary.Start.LineCol(), d.Message))
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			rendered = append(rendered, shortOf("note", d.Code, n.Span.File(), n.Span.Start.LineCol(), n.Msg))
		}
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		return di.Column < dj.Column
	})

	lines := make([]string, 0, len(rendered))
	for _, r := range rendered {
		lines = append(lines, fmt.Sprintf("%s %s %s:%d:%d %s", r.Severity, r.Code, r.Path, r.Line, r.Column, r.Message))
	}
	return strings.Join(lines, "\n")
}

func shortOf(sev string, code Code, file *source.File, lc source.LineCol, msg string) shortDiagnostic {
	path := "<unknown>"
	if file != nil {
		path = file.DisplayPath("auto")
	}
	return shortDiagnostic{
		Severity: sev,
		Code:     code.ID(),
		Path:     path,
		Line:     lc.Line,
		Column:   lc.Col,
		Message:  strings.Join(strings.Fields(msg), " "),
	}
}
