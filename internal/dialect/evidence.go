package dialect

import "yapl/internal/source"

// Hint is a single piece of evidence for a dialect.
type Hint struct {
	Dialect Kind
	Alien   AlienKind
	Score   int
	Reason  string
	Span    source.Span
}

// Evidence aggregates the hints of one file.
type Evidence struct {
	hints []Hint
}

func NewEvidence() *Evidence {
	return &Evidence{hints: make([]Hint, 0, 16)}
}

func (e *Evidence) Add(h Hint) {
	if e == nil {
		return
	}
	e.hints = append(e.hints, h)
}

func (e *Evidence) Hints() []Hint {
	if e == nil {
		return nil
	}
	return e.hints
}

// Strongest returns the first hint with the highest score for d.
func (e *Evidence) Strongest(d Kind) (Hint, bool) {
	var best Hint
	found := false
	for _, h := range e.Hints() {
		if h.Dialect == d && (!found || h.Score > best.Score) {
			best, found = h, true
		}
	}
	return best, found
}
