package buffer

import (
	"sort"
	"strings"
)

// Buffer is a line-indexed text buffer addressed by character offsets.
//
// The text is stored as a rune slice alongside an index of line start
// offsets. The index is rebuilt after every edit; command dispatch is
// single-threaded so there is no synchronization.
type Buffer struct {
	text       []rune
	lineStarts []Offset
}

// New creates a buffer holding the given text.
func New(text string) *Buffer {
	b := &Buffer{text: []rune(text)}
	b.reindex()
	return b
}

// reindex rebuilds the line start index.
// Line i starts at lineStarts[i]; the character before it (if any) is '\n'.
func (b *Buffer) reindex() {
	b.lineStarts = b.lineStarts[:0]
	b.lineStarts = append(b.lineStarts, 0)
	for i, r := range b.text {
		if r == '\n' {
			b.lineStarts = append(b.lineStarts, Offset(i)+1)
		}
	}
}

// Len returns the buffer length in characters.
func (b *Buffer) Len() Offset {
	return Offset(len(b.text))
}

// String returns the buffer contents.
func (b *Buffer) String() string {
	return string(b.text)
}

// RuneAt returns the character at the given offset.
// Returns 0 if the offset is out of bounds.
func (b *Buffer) RuneAt(o Offset) rune {
	if o < 0 || o >= b.Len() {
		return 0
	}
	return b.text[o]
}

// Slice returns the text in the half-open range [begin, end).
// Out-of-bounds offsets are clamped.
func (b *Buffer) Slice(begin, end Offset) string {
	begin = b.Clamp(begin)
	end = b.Clamp(end)
	if begin >= end {
		return ""
	}
	return string(b.text[begin:end])
}

// Clamp restricts an offset to [0, Len()].
func (b *Buffer) Clamp(o Offset) Offset {
	if o < 0 {
		return 0
	}
	if o > b.Len() {
		return b.Len()
	}
	return o
}

// LineCount returns the number of lines in the buffer.
// An empty buffer has one (empty) line.
func (b *Buffer) LineCount() int {
	return len(b.lineStarts)
}

// LineOf returns the 0-indexed line containing the given offset.
// Offsets at or beyond the end of the buffer map to the last line.
func (b *Buffer) LineOf(o Offset) int {
	o = b.Clamp(o)
	// First line start strictly greater than o, minus one.
	i := sort.Search(len(b.lineStarts), func(i int) bool {
		return b.lineStarts[i] > o
	})
	return i - 1
}

// LineStart returns the offset of the first character of the given line.
func (b *Buffer) LineStart(line int) Offset {
	if line < 0 {
		return 0
	}
	if line >= len(b.lineStarts) {
		return b.Len()
	}
	return b.lineStarts[line]
}

// LineEnd returns the offset just past the last character of the line,
// excluding the trailing newline.
func (b *Buffer) LineEnd(line int) Offset {
	if line < 0 {
		return 0
	}
	if line+1 < len(b.lineStarts) {
		return b.lineStarts[line+1] - 1
	}
	return b.Len()
}

// NextLineStart returns the offset of the start of the line following
// the given line, or Len() if it is the last line.
func (b *Buffer) NextLineStart(line int) Offset {
	if line+1 < len(b.lineStarts) {
		return b.lineStarts[line+1]
	}
	return b.Len()
}

// IsLineStart returns true if the offset sits at a start-of-line boundary.
// Both offset 0 and Len() after a trailing newline qualify.
func (b *Buffer) IsLineStart(o Offset) bool {
	if o == 0 {
		return true
	}
	if o < 0 || o > b.Len() {
		return false
	}
	return b.text[o-1] == '\n'
}

// IsBlankLine returns true if the line is empty or all whitespace.
func (b *Buffer) IsBlankLine(line int) bool {
	s := b.Slice(b.LineStart(line), b.LineEnd(line))
	return strings.TrimSpace(s) == ""
}

// ColumnOf returns the 0-indexed column of the offset within its line.
func (b *Buffer) ColumnOf(o Offset) int {
	o = b.Clamp(o)
	return o - b.LineStart(b.LineOf(o))
}

// PointOf returns the line/column position of an offset.
func (b *Buffer) PointOf(o Offset) Point {
	line := b.LineOf(o)
	return Point{Line: line, Column: b.Clamp(o) - b.LineStart(line)}
}

// OffsetOf returns the offset of a line/column position, clamping the
// column to the line's length.
func (b *Buffer) OffsetOf(p Point) Offset {
	start := b.LineStart(p.Line)
	end := b.LineEnd(p.Line)
	o := start + p.Column
	if o > end {
		o = end
	}
	return o
}

// Insert inserts text at the given offset.
func (b *Buffer) Insert(o Offset, s string) {
	o = b.Clamp(o)
	ins := []rune(s)
	b.text = append(b.text[:o], append(ins, b.text[o:]...)...)
	b.reindex()
}

// Delete removes the half-open range [begin, end) and returns the
// deleted text.
func (b *Buffer) Delete(begin, end Offset) string {
	begin = b.Clamp(begin)
	end = b.Clamp(end)
	if begin >= end {
		return ""
	}
	removed := string(b.text[begin:end])
	b.text = append(b.text[:begin], b.text[end:]...)
	b.reindex()
	return removed
}

// Replace substitutes the half-open range [begin, end) with the given
// text and returns the replaced portion.
func (b *Buffer) Replace(begin, end Offset, s string) string {
	removed := b.Delete(begin, end)
	b.Insert(begin, s)
	return removed
}
