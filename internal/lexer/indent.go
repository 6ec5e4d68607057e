package lexer

import (
	"strings"

	"yapl/internal/diag"
	"yapl/internal/source"
	"yapl/internal/token"
)

// indentState tracks the blank prefix of the current block.
//
// current is the literal run that introduced the innermost block and unit is
// the first increment ever seen. Once unit is known every deepening adds
// exactly one unit and every dedent removes whole units.
type indentState struct {
	current     string
	unit        string
	atLineStart bool
	pending     []entry
}

func (s *indentState) push(e entry) {
	s.pending = append(s.pending, e)
}

func (s *indentState) pop() (entry, bool) {
	if len(s.pending) == 0 {
		return entry{}, false
	}
	e := s.pending[0]
	s.pending = s.pending[1:]
	return e, true
}

// levels is the number of open indentation blocks.
func (s *indentState) levels() int {
	if s.unit == "" {
		return 0
	}
	return len(s.current) / len(s.unit)
}

// resolveIndent compares the leading run sp of a non-blank line with the
// current indentation and emits Indent, Outdent or plain whitespace.
func (lx *Lexer) resolveIndent(sp source.Span) (entry, bool) {
	run := sp.Text()
	st := &lx.indent

	switch {
	case run == st.current:
		if run == "" {
			return entry{}, false
		}
		return entry{tok: lx.token(token.Whitespace, sp, run)}, true

	case len(run) > len(st.current) && strings.HasPrefix(run, st.current):
		added := run[len(st.current):]
		if st.unit == "" {
			st.unit = added
		} else if added != st.unit {
			return lx.inconsistentIndent(sp), true
		}
		st.current = run
		return entry{tok: lx.token(token.Indent, sp, run)}, true

	case len(run) < len(st.current) && strings.HasPrefix(st.current, run):
		removed := st.current[len(run):]
		if st.unit == "" || len(removed)%len(st.unit) != 0 ||
			removed != strings.Repeat(st.unit, len(removed)/len(st.unit)) {
			return lx.inconsistentIndent(sp), true
		}
		st.current = run
		at := source.Span{Start: sp.Start, End: sp.Start}
		for range len(removed) / len(st.unit) {
			st.push(entry{tok: lx.token(token.Outdent, at, "")})
		}
		if run != "" {
			st.push(entry{tok: lx.token(token.Whitespace, sp, run)})
		}
		e, _ := st.pop()
		return e, true
	}
	return lx.inconsistentIndent(sp), true
}

func (lx *Lexer) inconsistentIndent(sp source.Span) entry {
	err := lx.report(diag.LexInconsistentIndent, sp, "Inconsistent indentation")
	return entry{tok: lx.token(token.Whitespace, sp, sp.Text()), err: err}
}
