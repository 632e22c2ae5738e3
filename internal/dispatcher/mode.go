package dispatcher

// Mode is the editing mode the dispatcher is in.
type Mode uint8

const (
	// ModeNormal routes keys through the command parser.
	ModeNormal Mode = iota

	// ModeInsert routes keys into the buffer as text.
	ModeInsert
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInsert:
		return "insert"
	default:
		return "unknown"
	}
}
