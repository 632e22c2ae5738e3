package vim

// MotionType categorizes motions by the range type they produce when an
// operator consumes them.
type MotionType uint8

const (
	// MotionCharwise moves character by character.
	MotionCharwise MotionType = iota

	// MotionLinewise operates on whole lines.
	MotionLinewise
)

// Motion represents a motion command. Motions define how the cursor
// moves and what span an operator affects.
type Motion struct {
	// Name is the motion identifier (e.g., "wordForward").
	Name string

	// Key is the key that triggers this motion.
	Key rune

	// Action is the action name to dispatch (e.g., "cursor.wordForward").
	Action string

	// Type indicates whether the motion is charwise or linewise.
	Type MotionType

	// Inclusive indicates if the motion includes the character it
	// lands on ('e' is inclusive, 'w' is exclusive).
	Inclusive bool
}

// Standard motions.
var (
	MotionLeft = Motion{
		Name:   "left",
		Key:    'h',
		Action: "cursor.left",
		Type:   MotionCharwise,
	}

	MotionRight = Motion{
		Name:   "right",
		Key:    'l',
		Action: "cursor.right",
		Type:   MotionCharwise,
	}

	MotionUp = Motion{
		Name:   "up",
		Key:    'k',
		Action: "cursor.up",
		Type:   MotionLinewise,
	}

	MotionDown = Motion{
		Name:   "down",
		Key:    'j',
		Action: "cursor.down",
		Type:   MotionLinewise,
	}

	MotionWordForward = Motion{
		Name:   "wordForward",
		Key:    'w',
		Action: "cursor.wordForward",
		Type:   MotionCharwise,
	}

	MotionWordBackward = Motion{
		Name:   "wordBackward",
		Key:    'b',
		Action: "cursor.wordBackward",
		Type:   MotionCharwise,
	}

	MotionWordEnd = Motion{
		Name:      "wordEnd",
		Key:       'e',
		Action:    "cursor.wordEnd",
		Type:      MotionCharwise,
		Inclusive: true,
	}

	MotionBigWordForward = Motion{
		Name:   "bigWordForward",
		Key:    'W',
		Action: "cursor.bigWordForward",
		Type:   MotionCharwise,
	}

	MotionBigWordBackward = Motion{
		Name:   "bigWordBackward",
		Key:    'B',
		Action: "cursor.bigWordBackward",
		Type:   MotionCharwise,
	}

	MotionLineStart = Motion{
		Name:   "lineStart",
		Key:    '0',
		Action: "cursor.lineStart",
		Type:   MotionCharwise,
	}

	MotionLineEnd = Motion{
		Name:   "lineEnd",
		Key:    '$',
		Action: "cursor.lineEnd",
		Type:   MotionCharwise,
	}

	MotionParagraphForward = Motion{
		Name:   "paragraphForward",
		Key:    '}',
		Action: "cursor.paragraphForward",
		Type:   MotionCharwise,
	}

	MotionParagraphBackward = Motion{
		Name:   "paragraphBackward",
		Key:    '{',
		Action: "cursor.paragraphBackward",
		Type:   MotionCharwise,
	}

	MotionDocumentEnd = Motion{
		Name:   "documentEnd",
		Key:    'G',
		Action: "cursor.documentEnd",
		Type:   MotionLinewise,
	}
)

// motionMap indexes motions by trigger key.
var motionMap = map[rune]*Motion{
	'h': &MotionLeft,
	'l': &MotionRight,
	'k': &MotionUp,
	'j': &MotionDown,
	'w': &MotionWordForward,
	'b': &MotionWordBackward,
	'e': &MotionWordEnd,
	'W': &MotionBigWordForward,
	'B': &MotionBigWordBackward,
	'0': &MotionLineStart,
	'$': &MotionLineEnd,
	'}': &MotionParagraphForward,
	'{': &MotionParagraphBackward,
	'G': &MotionDocumentEnd,
}

// GetMotion returns the motion bound to a key, or nil.
func GetMotion(r rune) *Motion {
	return motionMap[r]
}
