// Package key defines the keyboard event model shared by the input
// parsers, the repeat recorder, and the terminal front end.
//
// A key press is an Event: either a character (KeyRune plus Rune) or a
// special key such as Escape. Events are small comparable values so
// that recorded command scripts can be stored, normalized, and replayed
// byte for byte.
package key
