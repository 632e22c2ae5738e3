package keymap

// defaultBindings is the stock normal-mode command table.
var defaultBindings = []Binding{
	// Character motions
	{Keys: "h", Action: "cursor.left"},
	{Keys: "l", Action: "cursor.right"},
	{Keys: "j", Action: "cursor.down"},
	{Keys: "k", Action: "cursor.up"},
	{Keys: "0", Action: "cursor.lineStart"},
	{Keys: "$", Action: "cursor.lineEnd"},

	// Word motions
	{Keys: "w", Action: "cursor.wordForward"},
	{Keys: "b", Action: "cursor.wordBackward"},
	{Keys: "e", Action: "cursor.wordEnd"},
	{Keys: "W", Action: "cursor.bigWordForward"},
	{Keys: "B", Action: "cursor.bigWordBackward"},

	// Paragraph and document motions
	{Keys: "}", Action: "cursor.paragraphForward"},
	{Keys: "{", Action: "cursor.paragraphBackward"},
	{Keys: "G", Action: "cursor.documentEnd"},
	{Keys: "gg", Action: "cursor.documentStart"},

	// Simple commands
	{Keys: "x", Action: "editor.deleteChar"},
	{Keys: "r", Action: "editor.replaceChar"},
	{Keys: "i", Action: "mode.insert"},
	{Keys: ".", Action: "repeat.last"},
	{Keys: "ZQ", Action: "buffer.discard"},
	{Keys: "ZZ", Action: "buffer.writeQuit"},
}

// Default returns the stock normal-mode table.
func Default() *Table {
	t := NewTable()
	for _, b := range defaultBindings {
		// Bind only rejects empty key strings, which the stock table
		// never contains.
		_ = t.Bind(b.Keys, b.Action)
	}
	return t
}
