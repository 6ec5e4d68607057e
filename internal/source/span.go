package source

import (
	"fmt"
)

// Span is a half-open [Start, End) range of a single file.
type Span struct {
	Start Position
	End   Position
}

// SpanOf builds a span between two offsets of f.
func SpanOf(f *File, start, end uint32) Span {
	return Span{Start: At(f, start), End: At(f, end)}
}

// File returns the file the span belongs to.
func (s Span) File() *File {
	return s.Start.File
}

// IsValid reports whether the span refers to a file.
func (s Span) IsValid() bool {
	return s.Start.File != nil
}

// IsPoint reports whether the span is empty.
func (s Span) IsPoint() bool {
	return s.Start.Off == s.End.Off
}

// Len returns the length in bytes.
func (s Span) Len() uint32 {
	if s.End.Off < s.Start.Off {
		return 0
	}
	return s.End.Off - s.Start.Off
}

// Text returns the source text covered by the span.
func (s Span) Text() string {
	text, err := s.Start.Until(s.End)
	if err != nil {
		return ""
	}
	return text
}

// Cover returns the smallest span containing s and other.
// Spans of different files are not merged.
func (s Span) Cover(other Span) Span {
	if !s.IsValid() {
		return other
	}
	if !other.IsValid() || s.Start.File != other.Start.File {
		return s
	}
	if other.Start.Off < s.Start.Off {
		s.Start = other.Start
	}
	if other.End.Off > s.End.Off {
		s.End = other.End
	}
	return s
}

// Contains reports whether other lies within s.
func (s Span) Contains(other Span) bool {
	return s.Start.File == other.Start.File &&
		s.Start.Off <= other.Start.Off && other.End.Off <= s.End.Off
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}
