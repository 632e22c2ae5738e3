package vim

// DefaultRegister is the unnamed register operators write to.
const DefaultRegister = '"'

// RegisterContent holds yanked or deleted text.
type RegisterContent struct {
	// Text is the stored text.
	Text string

	// Linewise indicates the text represents whole lines.
	Linewise bool
}

// Registers stores named register contents.
type Registers struct {
	content map[rune]RegisterContent
}

// NewRegisters creates an empty register file.
func NewRegisters() *Registers {
	return &Registers{
		content: make(map[rune]RegisterContent),
	}
}

// IsValidRegister returns true for register names a-z, A-Z, 0-9 and the
// default register.
func IsValidRegister(r rune) bool {
	return r == DefaultRegister ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// Write stores text in a register, replacing its previous content.
// Invalid register names are ignored.
func (r *Registers) Write(name rune, text string, linewise bool) {
	if !IsValidRegister(name) {
		return
	}
	r.content[name] = RegisterContent{Text: text, Linewise: linewise}
}

// Read returns the content of a register.
func (r *Registers) Read(name rune) (RegisterContent, bool) {
	c, ok := r.content[name]
	return c, ok
}

// Clear empties a register.
func (r *Registers) Clear(name rune) {
	delete(r.content, name)
}
