package source

import (
	"errors"
	"fmt"
)

// ErrForeignPosition is returned when two positions from different files are combined.
var ErrForeignPosition = errors.New("positions belong to different files")

// Position is an immutable offset into a File. Line and column are derived
// on demand; positions produced by the lexer cursor carry them precomputed.
type Position struct {
	File *File
	Off  uint32

	lc LineCol // zero when not yet known
}

// At builds a position for an arbitrary offset in f.
func At(f *File, off uint32) Position {
	if f != nil && off > f.Size() {
		off = f.Size()
	}
	return Position{File: f, Off: off}
}

// WithLineCol builds a position whose line and column are already known.
// The caller guarantees lc matches off.
func WithLineCol(f *File, off uint32, lc LineCol) Position {
	return Position{File: f, Off: off, lc: lc}
}

// IsValid reports whether the position refers to a file.
func (p Position) IsValid() bool {
	return p.File != nil
}

// LineCol returns the 1-based line and column of p.
func (p Position) LineCol() LineCol {
	if p.lc.Line != 0 || p.File == nil {
		return p.lc
	}
	return p.File.Resolve(p.Off)
}

// Line returns the 1-based line number.
func (p Position) Line() uint32 {
	return p.LineCol().Line
}

// Column returns the 1-based column, counted in runes.
func (p Position) Column() uint32 {
	return p.LineCol().Col
}

// Relative returns a position delta bytes away on the same file,
// clamped to the file bounds.
func (p Position) Relative(delta int) Position {
	off := int(p.Off) + delta
	if off < 0 {
		off = 0
	}
	if p.File != nil && off > len(p.File.Content) {
		off = len(p.File.Content)
	}
	return Position{File: p.File, Off: mustU32(off)}
}

// Until returns the raw text between p and other, whichever comes first.
func (p Position) Until(other Position) (string, error) {
	if p.File != other.File {
		return "", ErrForeignPosition
	}
	if p.File == nil {
		return "", nil
	}
	lo, hi := p.Off, other.Off
	if lo > hi {
		lo, hi = hi, lo
	}
	return string(p.File.Content[lo:hi]), nil
}

// Same reports whether p and other denote the same offset of the same file.
func (p Position) Same(other Position) bool {
	return p.File == other.File && p.Off == other.Off
}

// Before reports whether p lies strictly before other on the same file.
func (p Position) Before(other Position) bool {
	return p.File == other.File && p.Off < other.Off
}

func (p Position) String() string {
	lc := p.LineCol()
	return fmt.Sprintf("%d:%d", lc.Line, lc.Col)
}
