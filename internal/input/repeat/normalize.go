package repeat

import "github.com/vicmd/vicmd/internal/input/key"

// Normalize collapses every maximal run of consecutive Literal tokens
// into a single flattened Literal, preserving key order. Symbolic
// tokens remain standalone, interleaved in their original positions.
//
// The result has (#Symbolic tokens) + (#maximal Literal runs) elements,
// and normalizing an already-normalized sequence is the identity.
func Normalize(tokens []Token) []Token {
	if len(tokens) == 0 {
		return nil
	}

	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind == Literal && len(out) > 0 && out[len(out)-1].Kind == Literal {
			last := &out[len(out)-1]
			keys := make([]key.Event, 0, len(last.Keys)+len(t.Keys))
			keys = append(keys, last.Keys...)
			keys = append(keys, t.Keys...)
			last.Keys = keys
			continue
		}
		out = append(out, t)
	}
	return out
}
