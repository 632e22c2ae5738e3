package key

import (
	"strings"
	"unicode"
)

// Event represents a single key press event.
//
// Events are plain values with no timestamp so that recorded sequences
// compare equal to replayed ones.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
	}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// IsModified returns true if any modifier is pressed.
// For character events, Shift alone is not considered modified
// (since Shift changes the character itself).
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt) != 0
	}
	return e.Modifiers != ModNone
}

// Equals returns true if two events represent the same key press.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key && e.Rune == other.Rune && e.Modifiers == other.Modifiers
}

// String returns a canonical string representation.
// Examples: "a", "Esc", "C-s".
func (e Event) String() string {
	var parts []string

	if e.Modifiers.HasCtrl() {
		parts = append(parts, "C")
	}
	if e.Modifiers.HasAlt() {
		parts = append(parts, "A")
	}
	if e.Modifiers.HasShift() && !e.IsRune() {
		parts = append(parts, "S")
	}

	var keyName string
	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			keyName = "Space"
		} else {
			keyName = string(e.Rune)
		}
	case KeyEscape:
		keyName = "Esc"
	default:
		keyName = e.Key.String()
	}

	parts = append(parts, keyName)
	return strings.Join(parts, "-")
}

// EventsFromString converts a plain string of characters into rune events.
// Every rune becomes one unmodified event; there is no escape syntax.
func EventsFromString(s string) []Event {
	events := make([]Event, 0, len(s))
	for _, r := range s {
		events = append(events, NewRuneEvent(r, ModNone))
	}
	return events
}

// StringFromEvents renders a sequence of rune events back into a string.
// Special keys are rendered in angle brackets, e.g. "<Esc>".
func StringFromEvents(events []Event) string {
	var sb strings.Builder
	for _, e := range events {
		if e.IsRune() {
			sb.WriteRune(e.Rune)
			continue
		}
		sb.WriteString("<")
		sb.WriteString(e.String())
		sb.WriteString(">")
	}
	return sb.String()
}
