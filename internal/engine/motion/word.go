package motion

import "github.com/vicmd/vicmd/internal/engine/buffer"

// WordForward moves to the start of the next word, count times.
// Returns the new position and the number of unmet steps.
func WordForward(b *buffer.Buffer, pos buffer.Offset, count int) (buffer.Offset, int) {
	for ; count > 0; count-- {
		next := wordForwardOnce(b, pos, Word)
		if next == pos {
			return pos, count
		}
		pos = next
	}
	return pos, 0
}

// BigWordForward is WordForward over whitespace-delimited WORDs.
func BigWordForward(b *buffer.Buffer, pos buffer.Offset, count int) (buffer.Offset, int) {
	for ; count > 0; count-- {
		next := wordForwardOnce(b, pos, Not(Space))
		if next == pos {
			return pos, count
		}
		pos = next
	}
	return pos, 0
}

func wordForwardOnce(b *buffer.Buffer, pos buffer.Offset, word CharClass) buffer.Offset {
	if pos >= b.Len() {
		return pos
	}
	r := b.RuneAt(pos)
	switch {
	case word(r):
		pos = skipRun(b, pos, word, 1)
	case !Space(r):
		pos = skipRun(b, pos, Punct, 1)
	}
	return skipRun(b, pos, Space, 1)
}

// WordBackward moves to the start of the previous word, count times.
func WordBackward(b *buffer.Buffer, pos buffer.Offset, count int) (buffer.Offset, int) {
	for ; count > 0; count-- {
		next := wordBackwardOnce(b, pos, Word)
		if next == pos {
			return pos, -count
		}
		pos = next
	}
	return pos, 0
}

// BigWordBackward is WordBackward over whitespace-delimited WORDs.
func BigWordBackward(b *buffer.Buffer, pos buffer.Offset, count int) (buffer.Offset, int) {
	for ; count > 0; count-- {
		next := wordBackwardOnce(b, pos, Not(Space))
		if next == pos {
			return pos, -count
		}
		pos = next
	}
	return pos, 0
}

func wordBackwardOnce(b *buffer.Buffer, pos buffer.Offset, word CharClass) buffer.Offset {
	pos = skipRun(b, pos, Space, -1)
	if pos <= 0 {
		return pos
	}
	prev := b.RuneAt(pos - 1)
	if word(prev) {
		return skipRun(b, pos, word, -1)
	}
	return skipRun(b, pos, Punct, -1)
}

// WordEnd moves to the last character of the current or next word,
// count times. The motion is inclusive: operators take the landing
// character too.
func WordEnd(b *buffer.Buffer, pos buffer.Offset, count int) (buffer.Offset, int) {
	for ; count > 0; count-- {
		next := wordEndOnce(b, pos)
		if next == pos {
			return pos, count
		}
		pos = next
	}
	return pos, 0
}

func wordEndOnce(b *buffer.Buffer, pos buffer.Offset) buffer.Offset {
	// Step off the current character, then skip whitespace.
	probe := pos + 1
	probe = skipRun(b, probe, Space, 1)
	if probe >= b.Len() {
		return pos
	}
	if Word(b.RuneAt(probe)) {
		probe = skipRun(b, probe, Word, 1)
	} else {
		probe = skipRun(b, probe, Punct, 1)
	}
	if probe-1 <= pos {
		return pos
	}
	return probe - 1
}
