package repeat

import "github.com/vicmd/vicmd/internal/input/key"

// Session is the in-progress log of one recordable command. It is
// append-only while active and finalized exactly once.
type Session struct {
	tokens []Token
	active bool
}

// Active reports whether the session is still accepting tokens.
func (s *Session) Active() bool {
	return s != nil && s.active
}

// RecordKey appends one literal key code to the session.
func (s *Session) RecordKey(ev key.Event) {
	if !s.Active() {
		return
	}
	s.tokens = append(s.tokens, NewLiteral(ev))
}

// RecordKeys appends a run of literal key codes to the session.
func (s *Session) RecordKeys(events ...key.Event) {
	if !s.Active() {
		return
	}
	s.tokens = append(s.tokens, NewLiteral(events...))
}

// RecordAction appends one Symbolic token to the session.
func (s *Session) RecordAction(action string, invoke func() error) {
	if !s.Active() {
		return
	}
	s.tokens = append(s.tokens, NewSymbolic(action, invoke))
}

// Recorder owns the single process-wide "last repeatable command"
// script. A new session overwrites it only once the command is
// confirmed recordable, never mid-write of an unrelated command.
type Recorder struct {
	last      []Token
	session   *Session
	replaying int
}

// NewRecorder creates a recorder with no stored script.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Begin starts a candidate recording session and returns it. Any
// previously active session is abandoned; the stored script is not
// touched until Commit. During replay the returned session is inert, so
// a replayed command can never record into the script being read.
func (r *Recorder) Begin() *Session {
	s := &Session{active: r.replaying == 0}
	r.session = s
	return s
}

// Session returns the current in-progress session, or nil.
func (r *Recorder) Session() *Session {
	return r.session
}

// Commit finalizes the current session. The stored script is replaced
// only when the command turned out to be recordable and produced
// tokens; otherwise the session is discarded and the previous script
// survives.
func (r *Recorder) Commit(recordable bool) {
	s := r.session
	r.session = nil
	if s == nil || !s.active {
		return
	}
	s.active = false
	if !recordable || len(s.tokens) == 0 {
		return
	}
	r.last = Normalize(s.tokens)
}

// Abort discards the current session without touching the stored
// script. Used when a partial parse unwinds.
func (r *Recorder) Abort() {
	if r.session != nil {
		r.session.active = false
		r.session = nil
	}
}

// Last returns a snapshot of the stored script. The snapshot shares no
// mutable state with the recorder; replaying it while a new recording
// starts cannot corrupt it.
func (r *Recorder) Last() []Token {
	if len(r.last) == 0 {
		return nil
	}
	out := make([]Token, len(r.last))
	copy(out, r.last)
	for i := range out {
		if out[i].Kind == Literal {
			keys := make([]key.Event, len(out[i].Keys))
			copy(keys, out[i].Keys)
			out[i].Keys = keys
		}
	}
	return out
}

// HasLast reports whether a repeatable command has been stored.
func (r *Recorder) HasLast() bool {
	return len(r.last) > 0
}

// BeginReplay marks the start of a replay so nested recording attempts
// are suppressed. Calls nest.
func (r *Recorder) BeginReplay() {
	r.replaying++
}

// EndReplay marks the end of a replay.
func (r *Recorder) EndReplay() {
	if r.replaying > 0 {
		r.replaying--
	}
}

// Replaying reports whether a replay is in progress.
func (r *Recorder) Replaying() bool {
	return r.replaying > 0
}
