package motion

import "github.com/vicmd/vicmd/internal/engine/buffer"

// Paragraph seeks the next (count > 0) or previous (count < 0)
// blank-line paragraph boundary, |count| times.
//
// Each satisfied step lands on the start of a blank line. A step that
// runs out of boundaries lands on the hard buffer edge instead and
// counts as unmet, so repeated calls past the limit return overshoot of
// strictly non-decreasing magnitude: reaching the true buffer end with
// no trailing blank line is never reported as success.
func Paragraph(b *buffer.Buffer, pos buffer.Offset, count int) (buffer.Offset, int) {
	for count > 0 {
		next, ok := nextBlankLine(b, pos)
		if !ok {
			return b.Len(), count
		}
		pos = next
		count--
	}

	for count < 0 {
		prev, ok := prevBlankLine(b, pos)
		if !ok {
			return 0, count
		}
		pos = prev
		count++
	}

	return pos, 0
}

// nextBlankLine finds the start of the first blank line on a line
// strictly after pos's line, preceded by at least one non-blank line or
// directly adjacent to pos.
func nextBlankLine(b *buffer.Buffer, pos buffer.Offset) (buffer.Offset, bool) {
	line := b.LineOf(pos)

	// Skip the blank run the position is already inside, so that
	// consecutive boundaries are distinct paragraphs, not re-matches.
	for line < b.LineCount() && b.IsBlankLine(line) && b.LineStart(line) <= pos {
		line++
	}

	for ; line < b.LineCount(); line++ {
		if b.IsBlankLine(line) && b.LineStart(line) > pos {
			return b.LineStart(line), true
		}
	}
	return 0, false
}

func prevBlankLine(b *buffer.Buffer, pos buffer.Offset) (buffer.Offset, bool) {
	line := b.LineOf(pos)

	for line >= 0 && b.IsBlankLine(line) && b.LineStart(line) >= pos {
		line--
	}

	for ; line >= 0; line-- {
		if b.IsBlankLine(line) && b.LineStart(line) < pos {
			return b.LineStart(line), true
		}
	}
	return 0, false
}
