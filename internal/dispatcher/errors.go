package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrQuit indicates the session should end.
	ErrQuit = errors.New("dispatcher: quit")

	// ErrNoHandler indicates no handler is registered for an action.
	ErrNoHandler = errors.New("dispatcher: no handler for action")
)
