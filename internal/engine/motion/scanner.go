package motion

import "github.com/vicmd/vicmd/internal/engine/buffer"

// ScanChars scans from pos through characters matching class, at most
// |count| steps, forward when count > 0 and backward when count < 0.
// Scanning stops at the first non-matching character or at a buffer
// boundary.
//
// The returned overshoot is 0 when the full count was satisfied;
// otherwise it is the signed number of unmet steps. Callers detect
// boundary hits from the overshoot alone, the position is always the
// point where scanning stopped.
func ScanChars(b *buffer.Buffer, pos buffer.Offset, class CharClass, count int) (buffer.Offset, int) {
	pos = b.Clamp(pos)

	for count > 0 {
		if pos >= b.Len() || !class(b.RuneAt(pos)) {
			return pos, count
		}
		pos++
		count--
	}

	for count < 0 {
		if pos <= 0 || !class(b.RuneAt(pos-1)) {
			return pos, count
		}
		pos--
		count++
	}

	return pos, 0
}

// skipRun advances past every consecutive character matching class in
// the given direction (+1 forward, -1 backward) and returns the new
// position.
func skipRun(b *buffer.Buffer, pos buffer.Offset, class CharClass, dir int) buffer.Offset {
	pos, _ = ScanChars(b, pos, class, dir*(b.Len()+1))
	return pos
}
