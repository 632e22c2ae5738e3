package dispatcher

import (
	"io"

	"github.com/vicmd/vicmd/internal/input/key"
)

// Source is an ordered stream of key events with a blocking Next.
// A live terminal and a pre-recorded vector implement the same
// interface, so interactive use and tests share the dispatch path.
type Source interface {
	// Next blocks until the next key event is available. It returns
	// io.EOF when the stream ends.
	Next() (key.Event, error)
}

// Scripted is a Source backed by a fixed event vector.
type Scripted struct {
	events []key.Event
	pos    int
}

// NewScripted creates a source that replays the given events in order.
func NewScripted(events ...key.Event) *Scripted {
	return &Scripted{events: events}
}

// NewScriptedString creates a source from a plain string of characters.
func NewScriptedString(s string) *Scripted {
	return NewScripted(key.EventsFromString(s)...)
}

// Next returns the next event, or io.EOF when exhausted.
func (s *Scripted) Next() (key.Event, error) {
	if s.pos >= len(s.events) {
		return key.Event{}, io.EOF
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, nil
}

// Push appends further events to the stream, for incremental feeding.
func (s *Scripted) Push(events ...key.Event) {
	s.events = append(s.events, events...)
}
