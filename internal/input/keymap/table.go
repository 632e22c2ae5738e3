package keymap

import "fmt"

// Binding maps a key string to a named action.
type Binding struct {
	// Keys is the key sequence that triggers the action, e.g. "w" or "gg".
	Keys string

	// Action is the action name to dispatch, e.g. "cursor.wordForward".
	Action string
}

// Table is a command table resolving raw key strings to bindings by
// longest-prefix match.
type Table struct {
	bindings map[string]Binding
	prefixes map[string]int // proper prefixes of bound keys -> refcount
	maxLen   int
}

// NewTable creates an empty command table.
func NewTable() *Table {
	return &Table{
		bindings: make(map[string]Binding),
		prefixes: make(map[string]int),
	}
}

// Bind adds or replaces a binding. Empty key strings are rejected.
func (t *Table) Bind(keys, action string) error {
	if keys == "" {
		return fmt.Errorf("keymap: empty key string for action %q", action)
	}

	if _, exists := t.bindings[keys]; !exists {
		runes := []rune(keys)
		for i := 1; i < len(runes); i++ {
			t.prefixes[string(runes[:i])]++
		}
		if len(runes) > t.maxLen {
			t.maxLen = len(runes)
		}
	}
	t.bindings[keys] = Binding{Keys: keys, Action: action}
	return nil
}

// Unbind removes a binding if present.
func (t *Table) Unbind(keys string) {
	if _, exists := t.bindings[keys]; !exists {
		return
	}
	delete(t.bindings, keys)
	runes := []rune(keys)
	for i := 1; i < len(runes); i++ {
		p := string(runes[:i])
		if t.prefixes[p]--; t.prefixes[p] <= 0 {
			delete(t.prefixes, p)
		}
	}
}

// Resolve finds the longest bound prefix of s. It returns the binding,
// the consumed prefix, and the unconsumed remainder. ok is false when
// no prefix of s is bound.
func (t *Table) Resolve(s string) (binding Binding, consumed, rest string, ok bool) {
	runes := []rune(s)
	limit := len(runes)
	if limit > t.maxLen {
		limit = t.maxLen
	}
	for n := limit; n > 0; n-- {
		prefix := string(runes[:n])
		if b, found := t.bindings[prefix]; found {
			return b, prefix, string(runes[n:]), true
		}
	}
	return Binding{}, "", s, false
}

// IsPrefix reports whether s is a proper prefix of at least one bound
// key sequence, meaning more input could still resolve it.
func (t *Table) IsPrefix(s string) bool {
	if s == "" {
		return len(t.bindings) > 0
	}
	return t.prefixes[s] > 0
}

// Lookup returns the binding exactly matching keys.
func (t *Table) Lookup(keys string) (Binding, bool) {
	b, ok := t.bindings[keys]
	return b, ok
}

// Len returns the number of bindings.
func (t *Table) Len() int {
	return len(t.bindings)
}
