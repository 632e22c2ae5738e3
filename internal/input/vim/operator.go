package vim

// Operator represents an operator command: one that acts on the span of
// text a motion produces.
type Operator struct {
	// Name is the operator identifier (e.g., "delete").
	Name string

	// Key is the key that triggers this operator.
	Key rune

	// Action is the action name to dispatch (e.g., "editor.delete").
	Action string

	// LinewiseAction is the action for the doubled-key form (dd, yy).
	LinewiseAction string

	// ChangesText indicates if this operator modifies the buffer, which
	// makes the command recordable for repeat.
	ChangesText bool

	// EntersInsert indicates if this operator enters insert mode after.
	EntersInsert bool
}

// Standard operators.
var (
	OpDelete = Operator{
		Name:           "delete",
		Key:            'd',
		Action:         "editor.delete",
		LinewiseAction: "editor.deleteLine",
		ChangesText:    true,
	}

	OpChange = Operator{
		Name:           "change",
		Key:            'c',
		Action:         "editor.change",
		LinewiseAction: "editor.changeLine",
		ChangesText:    true,
		EntersInsert:   true,
	}

	OpYank = Operator{
		Name:           "yank",
		Key:            'y',
		Action:         "editor.yank",
		LinewiseAction: "editor.yankLine",
	}

	OpIndentRight = Operator{
		Name:           "indentRight",
		Key:            '>',
		Action:         "editor.indentRight",
		LinewiseAction: "editor.indentLineRight",
		ChangesText:    true,
	}

	OpIndentLeft = Operator{
		Name:           "indentLeft",
		Key:            '<',
		Action:         "editor.indentLeft",
		LinewiseAction: "editor.indentLineLeft",
		ChangesText:    true,
	}
)

// operatorMap indexes operators by trigger key.
var operatorMap = map[rune]*Operator{
	'd': &OpDelete,
	'c': &OpChange,
	'y': &OpYank,
	'>': &OpIndentRight,
	'<': &OpIndentLeft,
}

// GetOperator returns the operator bound to a key, or nil.
func GetOperator(r rune) *Operator {
	return operatorMap[r]
}
