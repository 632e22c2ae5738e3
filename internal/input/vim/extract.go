package vim

import (
	"github.com/vicmd/vicmd/internal/input/keymap"
)

// Parsed is the result of extracting a count and command from a raw key
// string. It is produced once per top-level dispatch and not retained.
type Parsed struct {
	// Count is the extracted count. Valid only when HasCount is true.
	Count int

	// HasCount distinguishes an explicit count from the default of 1.
	HasCount bool

	// Binding is the resolved command.
	Binding keymap.Binding

	// Consumed is the exact key substring that resolved to the command,
	// excluding any count digits.
	Consumed string

	// Rest is the unconsumed remainder of the input.
	Rest string
}

// EffectiveCount returns the count, defaulting to 1.
func (p Parsed) EffectiveCount() int {
	if !p.HasCount || p.Count <= 0 {
		return 1
	}
	return p.Count
}

// Extract parses a raw key string into (count, command, consumed,
// remainder) against the given command table.
//
// A leading digit run forms the count, except that a leading '0' is
// never consumed as a count digit: a lone '0' is the line-start motion,
// complete by itself, so "020" reads '0' as that motion and leaves "20"
// unconsumed. Multi-digit counts accumulate only after a non-zero
// leading digit.
//
// Returns ErrIncompleteCount when the string is digits only with no
// trailing command, and ErrUnknownCommand when the post-count substring
// resolves to nothing bound.
func Extract(table *keymap.Table, raw string) (Parsed, error) {
	if raw == "" {
		return Parsed{}, ErrUnknownCommand
	}

	var count CountState
	runes := []rune(raw)
	i := 0
	if IsCountStart(runes[i]) {
		for i < len(runes) && count.AccumulateDigit(runes[i]) {
			i++
		}
	}

	sub := string(runes[i:])
	if sub == "" {
		return Parsed{}, ErrIncompleteCount
	}

	binding, consumed, rest, ok := table.Resolve(sub)
	if !ok {
		return Parsed{}, ErrUnknownCommand
	}

	return Parsed{
		Count:    count.Value,
		HasCount: count.Active,
		Binding:  binding,
		Consumed: consumed,
		Rest:     rest,
	}, nil
}
