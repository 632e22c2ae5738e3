package terminal

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/vicmd/vicmd/internal/input/key"
)

// Terminal is the tcell-backed screen. It is both the key event source
// for the dispatcher and the renderer.
type Terminal struct {
	screen   tcell.Screen
	log      *slog.Logger
	tabWidth int
	top      int // first visible buffer line
}

// New initializes the terminal screen.
func New(log *slog.Logger, tabWidth int) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal: init: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)

	if tabWidth <= 0 {
		tabWidth = 4
	}
	return &Terminal{screen: screen, log: log, tabWidth: tabWidth}, nil
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}

// Next blocks for the next key event. Resize events are absorbed and
// trigger a resync; a finalized screen ends the stream with io.EOF.
func (t *Terminal) Next() (key.Event, error) {
	for {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			return convertKey(ev), nil
		case *tcell.EventResize:
			t.screen.Sync()
		case nil:
			return key.Event{}, io.EOF
		}
	}
}

// convertKey translates a tcell key event into the editor's key model.
func convertKey(ev *tcell.EventKey) key.Event {
	mods := convertMods(ev.Modifiers())

	switch ev.Key() {
	case tcell.KeyRune:
		return key.NewRuneEvent(ev.Rune(), mods)
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods)
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods)
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods)
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods)
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods)
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods)
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods)
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods)
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods)
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods)
	default:
		return key.NewSpecialEvent(key.KeyNone, mods)
	}
}

// convertMods translates tcell modifier bits.
func convertMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= key.ModAlt
	}
	return mods
}
