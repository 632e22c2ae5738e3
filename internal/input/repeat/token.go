package repeat

import (
	"fmt"

	"github.com/vicmd/vicmd/internal/input/key"
)

// Kind discriminates the closed token variant.
type Kind uint8

const (
	// Literal holds an ordered sequence of key codes that replay
	// through the normal dispatch path.
	Literal Kind = iota

	// Symbolic holds an opaque re-invocable action reference for
	// interactive completions that cannot replay as keys.
	Symbolic
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Symbolic:
		return "symbolic"
	default:
		return "unknown"
	}
}

// Token is one element of a recorded command script.
type Token struct {
	// Kind discriminates the variant.
	Kind Kind

	// Keys holds the key codes of a Literal token.
	Keys []key.Event

	// Action names the action of a Symbolic token.
	Action string

	// Invoke re-runs a Symbolic token's action. It carries whatever
	// state the action needs; the player calls it directly instead of
	// replaying keys.
	Invoke func() error
}

// NewLiteral creates a Literal token from key events.
func NewLiteral(events ...key.Event) Token {
	return Token{Kind: Literal, Keys: events}
}

// NewSymbolic creates a Symbolic token.
func NewSymbolic(action string, invoke func() error) Token {
	return Token{Kind: Symbolic, Action: action, Invoke: invoke}
}

// String returns a compact representation for logs and tests.
func (t Token) String() string {
	switch t.Kind {
	case Literal:
		return fmt.Sprintf("lit(%s)", key.StringFromEvents(t.Keys))
	case Symbolic:
		return fmt.Sprintf("sym(%s)", t.Action)
	default:
		return "invalid"
	}
}

// equalKeys compares the key sequences of two Literal tokens.
func equalKeys(a, b []key.Event) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}
