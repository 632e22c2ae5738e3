package motion

import "unicode"

// CharClass matches a set of characters for bounded scanning.
type CharClass func(r rune) bool

// Standard character classes used by the word motions.
var (
	// Word matches "word" characters: letters, digits, underscore.
	Word CharClass = func(r rune) bool {
		return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
	}

	// Space matches horizontal whitespace and newlines.
	Space CharClass = unicode.IsSpace

	// Punct matches anything that is neither a word character nor
	// whitespace.
	Punct CharClass = func(r rune) bool {
		return !Word(r) && !Space(r)
	}
)

// Not inverts a class.
func Not(c CharClass) CharClass {
	return func(r rune) bool { return !c(r) }
}
