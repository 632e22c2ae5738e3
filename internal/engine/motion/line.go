package motion

import "github.com/vicmd/vicmd/internal/engine/buffer"

// LineStart moves to the first character of the current line.
func LineStart(b *buffer.Buffer, pos buffer.Offset) buffer.Offset {
	return b.LineStart(b.LineOf(pos))
}

// LineEnd moves just past the last character of the current line.
func LineEnd(b *buffer.Buffer, pos buffer.Offset) buffer.Offset {
	return b.LineEnd(b.LineOf(pos))
}

// CharForward moves count characters right within the buffer, stopping
// at the end of the current line. Returns the new position and unmet
// steps.
func CharForward(b *buffer.Buffer, pos buffer.Offset, count int) (buffer.Offset, int) {
	end := LineEnd(b, pos)
	for ; count > 0; count-- {
		if pos >= end {
			return pos, count
		}
		pos++
	}
	return pos, 0
}

// CharBackward moves count characters left, stopping at the start of
// the current line. Returns the new position and unmet steps (negative).
func CharBackward(b *buffer.Buffer, pos buffer.Offset, count int) (buffer.Offset, int) {
	start := LineStart(b, pos)
	for ; count > 0; count-- {
		if pos <= start {
			return pos, -count
		}
		pos--
	}
	return pos, 0
}

// DocumentStart moves to offset 0.
func DocumentStart(b *buffer.Buffer) buffer.Offset {
	return 0
}

// DocumentEnd moves to the start of the last line. A trailing newline
// does not count as a line of its own.
func DocumentEnd(b *buffer.Buffer) buffer.Offset {
	last := b.LineCount() - 1
	if last > 0 && b.LineStart(last) == b.Len() {
		last--
	}
	return b.LineStart(last)
}

// GotoLine moves to the start of the given 1-indexed line, clamped.
// As with DocumentEnd, a trailing newline does not add a line.
func GotoLine(b *buffer.Buffer, line int) buffer.Offset {
	last := b.LineCount() - 1
	if last > 0 && b.LineStart(last) == b.Len() {
		last--
	}
	if line < 1 {
		line = 1
	}
	if line > last+1 {
		line = last + 1
	}
	return b.LineStart(line - 1)
}
