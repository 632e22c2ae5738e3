// Package keymap provides the command table mapping key strings to
// named actions, with longest-prefix resolution so partially typed
// sequences can be detected and completed incrementally.
package keymap
