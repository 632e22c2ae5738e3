package vim

import "errors"

// Parsing errors.
var (
	// ErrUnknownCommand indicates the key sequence resolves to nothing bound.
	ErrUnknownCommand = errors.New("vim: unknown command")

	// ErrIncompleteCount indicates a digits-only sequence with no
	// resolvable trailing command.
	ErrIncompleteCount = errors.New("vim: count without command")
)
