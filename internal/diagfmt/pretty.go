package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"yapl/internal/diag"
	"yapl/internal/source"
)

type palette struct {
	err, warn, info *color.Color
	gutter          *color.Color
	message         *color.Color
	note            *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		err:     mk(color.FgRed, color.Bold),
		warn:    mk(color.FgYellow, color.Bold),
		info:    mk(color.FgCyan, color.Bold),
		gutter:  mk(color.FgBlue, color.Bold),
		message: mk(color.Bold),
		note:    mk(color.FgGreen, color.Bold),
	}
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty renders the diagnostics of bag in a human readable form:
//
//	error[SYN2001]: expected ')'
//	 --> main.yp:3:12
//	  |
//	3 | val x = f(a
//	  |            ^
//
// Items are rendered in bag order; call bag.Sort() first for stable output.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) error {
	if bag == nil {
		return nil
	}
	r := prettyRenderer{opts: opts, pal: newPalette(opts.Color), tab: opts.TabWidth}
	if r.tab <= 0 {
		r.tab = 4
	}
	for i, d := range bag.Items() {
		if i > 0 {
			r.sb.WriteByte('\n')
		}
		r.diagnostic(d)
	}
	_, err := io.WriteString(w, r.sb.String())
	return err
}

type prettyRenderer struct {
	opts   PrettyOpts
	pal    palette
	tab    int
	sb     strings.Builder
	gutter int
}

func (r *prettyRenderer) diagnostic(d *diag.Diagnostic) {
	r.gutter = 0
	sev := r.pal.severity(d.Severity)
	fmt.Fprintf(&r.sb, "%s: %s\n",
		sev.Sprintf("%s[%s]", strings.ToLower(d.Severity.String()), d.Code.ID()),
		r.pal.message.Sprint(d.Message))

	if d.Primary.IsValid() {
		r.excerpt(d.Primary, sev)
	}
	if !r.opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		fmt.Fprintf(&r.sb, "%s %s %s", strings.Repeat(" ", r.gutter), r.pal.gutter.Sprint("="), r.pal.note.Sprint("note:"))
		fmt.Fprintf(&r.sb, " %s", n.Msg)
		if n.Span.IsValid() {
			lc := n.Span.Start.LineCol()
			fmt.Fprintf(&r.sb, " at %s:%d:%d", displayPath(n.Span.File(), r.opts.PathMode), lc.Line, lc.Col)
		}
		r.sb.WriteByte('\n')
	}
}

func (r *prettyRenderer) excerpt(sp source.Span, sev *color.Color) {
	f := sp.File()
	first := sp.Start.LineCol()
	last := first
	if !sp.IsPoint() {
		last = f.Resolve(sp.End.Off - 1)
	}

	ctx := uint32(max(r.opts.Context, 0))
	from := uint32(1)
	if first.Line > ctx {
		from = first.Line - ctx
	}
	to := min(last.Line+ctx, max(f.LineCount(), last.Line))
	r.gutter = len(strconv.FormatUint(uint64(to), 10))

	pad := strings.Repeat(" ", r.gutter)
	fmt.Fprintf(&r.sb, "%s%s %s:%d:%d\n", pad, r.pal.gutter.Sprint("-->"), displayPath(f, r.opts.PathMode), first.Line, first.Col)
	fmt.Fprintf(&r.sb, "%s %s\n", pad, r.pal.gutter.Sprint("|"))

	for l := from; l < first.Line; l++ {
		r.sourceLine(f, l)
	}

	switch {
	case sp.IsPoint():
		r.sourceLine(f, first.Line)
		line := f.Line(first.Line)
		r.marker(sev, strings.Repeat(" ", r.cellsBefore(line, first.Col))+"^")
	case first.Line == last.Line:
		r.sourceLine(f, first.Line)
		line := f.Line(first.Line)
		start := r.cellsBefore(line, first.Col)
		end := max(r.cellsBefore(line, last.Col+1), start+1)
		r.marker(sev, strings.Repeat(" ", start)+"^"+strings.Repeat("~", end-start-1))
	default:
		r.sourceLine(f, first.Line)
		line := f.Line(first.Line)
		start := r.cellsBefore(line, first.Col)
		end := r.cellsBefore(line, uint32(len(line))+1)
		r.marker(sev, strings.Repeat(" ", start)+"^"+strings.Repeat("~", max(end-start-1, 0)))

		if last.Line-first.Line > 1 {
			r.sourceLine(f, first.Line+1)
		}
		if last.Line-first.Line > 2 {
			r.sb.WriteString("...\n")
		}

		r.sourceLine(f, last.Line)
		line = f.Line(last.Line)
		end = max(r.cellsBefore(line, last.Col+1), 1)
		r.marker(sev, strings.Repeat("~", end-1)+"^")
	}

	for l := last.Line + 1; l <= to; l++ {
		r.sourceLine(f, l)
	}
}

func (r *prettyRenderer) sourceLine(f *source.File, n uint32) {
	num := r.pal.gutter.Sprintf("%*d |", r.gutter, n)
	text := r.expand(f.Line(n))
	if text == "" {
		fmt.Fprintf(&r.sb, "%s\n", num)
		return
	}
	fmt.Fprintf(&r.sb, "%s %s\n", num, text)
}

func (r *prettyRenderer) marker(sev *color.Color, marks string) {
	fmt.Fprintf(&r.sb, "%s %s %s\n", strings.Repeat(" ", r.gutter), r.pal.gutter.Sprint("|"), sev.Sprint(marks))
}

// cellsBefore returns the display width of the runes before column col
// (1-based) of line, tabs expanded to the tab width.
func (r *prettyRenderer) cellsBefore(line string, col uint32) int {
	cells := 0
	c := uint32(1)
	for _, ch := range line {
		if c >= col {
			break
		}
		if ch == '\t' {
			cells += r.tab
		} else {
			cells += runewidth.RuneWidth(ch)
		}
		c++
	}
	return cells
}

func (r *prettyRenderer) expand(line string) string {
	return strings.ReplaceAll(line, "\t", strings.Repeat(" ", r.tab))
}
