package repeat

import "errors"

// Replay errors.
var (
	// ErrRepeatUnsafe indicates a guarded replay would perform a
	// context-destroying action.
	ErrRepeatUnsafe = errors.New("repeat: unsafe to replay")

	// ErrNothingToRepeat indicates no repeatable command is stored.
	ErrNothingToRepeat = errors.New("repeat: nothing to repeat")
)
