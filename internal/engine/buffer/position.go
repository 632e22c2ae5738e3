package buffer

import "fmt"

// Offset represents a character position in the buffer.
// This is the fundamental position type, directly indexing into the text.
// Offsets count runes, not bytes, so single-step cursor arithmetic is
// always one character.
type Offset = int

// Point represents a line and column position.
// Both Line and Column are 0-indexed. Column is measured in characters
// from the start of the line.
type Point struct {
	Line   int
	Column int
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Point) Compare(other Point) int {
	if p.Line != other.Line {
		if p.Line < other.Line {
			return -1
		}
		return 1
	}
	if p.Column != other.Column {
		if p.Column < other.Column {
			return -1
		}
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Point) Before(other Point) bool {
	return p.Compare(other) < 0
}

// Locator resolves to a buffer offset. A plain offset can be wrapped
// with At; a Cursor is a live locator whose offset is read at the moment
// of resolution and never again.
type Locator interface {
	Offset() Offset
}

// At wraps a plain offset as a Locator.
func At(o Offset) Locator {
	return fixed(o)
}

type fixed Offset

func (f fixed) Offset() Offset { return Offset(f) }
