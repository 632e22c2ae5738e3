package dispatcher

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vicmd/vicmd/internal/engine/buffer"
	"github.com/vicmd/vicmd/internal/engine/motion"
	"github.com/vicmd/vicmd/internal/engine/span"
	"github.com/vicmd/vicmd/internal/input/key"
	"github.com/vicmd/vicmd/internal/input/keymap"
	"github.com/vicmd/vicmd/internal/input/repeat"
	"github.com/vicmd/vicmd/internal/input/vim"
)

// handler is a registered extended command.
type handler struct {
	fn         func() error
	recordable bool
}

// Dispatcher is the command loop: it pulls key events from a Source,
// parses them into commands, and applies the commands to the buffer.
//
// Dispatch is single-threaded. Replayed keys re-enter through Feed on
// the same goroutine, so no state here is synchronized.
type Dispatcher struct {
	log    *slog.Logger
	buf    *buffer.Buffer
	cursor *buffer.Cursor
	parser *vim.Parser
	rec    *repeat.Recorder
	player *repeat.Player
	regs   *vim.Registers
	table  *keymap.Table

	handlers map[string]handler
	unsafe   map[string]bool

	guard      bool
	mode       Mode
	pending    []key.Event
	external   bool // pending sequence is being resolved against the table
	insertSess *repeat.Session
	message    string
	wantSave   bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) { d.log = l }
}

// WithTable sets the command table used for extended key sequences the
// built-in grammar does not know.
func WithTable(t *keymap.Table) Option {
	return func(d *Dispatcher) { d.table = t }
}

// WithUnsafe marks additional actions as context-destroying, blocking
// them from replay.
func WithUnsafe(actions ...string) Option {
	return func(d *Dispatcher) {
		for _, a := range actions {
			d.unsafe[a] = true
		}
	}
}

// WithGuard enables or disables the replay guard. Disabling it lets
// context-destroying actions replay; the classifications stay intact.
func WithGuard(enabled bool) Option {
	return func(d *Dispatcher) { d.guard = enabled }
}

// New creates a dispatcher over the given buffer.
func New(buf *buffer.Buffer, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		buf:      buf,
		cursor:   buffer.NewCursor(buf),
		parser:   vim.NewParser(),
		rec:      repeat.NewRecorder(),
		regs:     vim.NewRegisters(),
		table:    keymap.NewTable(),
		handlers: make(map[string]handler),
		unsafe:   map[string]bool{"buffer.discard": true},
		guard:    true,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.player = repeat.NewPlayer(d.rec, d.classify)
	return d
}

// Buffer returns the buffer being edited.
func (d *Dispatcher) Buffer() *buffer.Buffer { return d.buf }

// Cursor returns the cursor.
func (d *Dispatcher) Cursor() *buffer.Cursor { return d.cursor }

// Mode returns the current editing mode.
func (d *Dispatcher) Mode() Mode { return d.mode }

// Message returns the last status message.
func (d *Dispatcher) Message() string { return d.message }

// Registers returns the register file.
func (d *Dispatcher) Registers() *vim.Registers { return d.regs }

// Recorder returns the repeat recorder.
func (d *Dispatcher) Recorder() *repeat.Recorder { return d.rec }

// Pending returns the keys of the unresolved sequence, for the status line.
func (d *Dispatcher) Pending() string { return key.StringFromEvents(d.pending) }

// WantSave reports whether the quit requested a write first.
func (d *Dispatcher) WantSave() bool { return d.wantSave }

// RegisterAction binds a named extended action to a function. The name
// becomes dispatchable through the command table and, when recordable,
// enters repeat scripts as a symbolic token.
func (d *Dispatcher) RegisterAction(name string, recordable bool, fn func() error) {
	d.handlers[name] = handler{fn: fn, recordable: recordable}
}

// MarkUnsafe marks actions as context-destroying after construction.
func (d *Dispatcher) MarkUnsafe(actions ...string) {
	for _, a := range actions {
		d.unsafe[a] = true
	}
}

// Bind adds a key sequence to the extended command table.
func (d *Dispatcher) Bind(keys, action string) error {
	return d.table.Bind(keys, action)
}

// Text returns the buffer contents.
func (d *Dispatcher) Text() string { return d.buf.String() }

// Offset returns the cursor offset.
func (d *Dispatcher) Offset() int { return int(d.cursor.Offset()) }

// SetOffset moves the cursor, clamped to the buffer.
func (d *Dispatcher) SetOffset(o int) { d.cursor.Set(buffer.Offset(o)) }

// Insert inserts text at the cursor and leaves the cursor after it.
func (d *Dispatcher) Insert(text string) {
	pos := d.cursor.Offset()
	d.buf.Insert(pos, text)
	d.cursor.Set(pos + buffer.Offset(len([]rune(text))))
}

// Notify sets the status message.
func (d *Dispatcher) Notify(message string) { d.message = message }

// classify reports whether an action is blocked from replay.
func (d *Dispatcher) classify(action string) bool {
	return d.guard && d.unsafe[action]
}

// Run pulls events from the source until it ends or a command quits.
func (d *Dispatcher) Run(src Source) error {
	for {
		ev, err := src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("dispatcher: read event: %w", err)
		}
		if err := d.HandleKey(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				return err
			}
			d.log.Warn("command failed", "error", err)
			d.message = err.Error()
		}
	}
}

// Feed dispatches one replayed key event. It implements repeat.Sink, so
// literal keys in a repeat script re-enter the normal dispatch path and
// are re-parsed rather than replayed blindly.
func (d *Dispatcher) Feed(ev key.Event) error {
	return d.HandleKey(ev)
}

// HandleKey dispatches one key event according to the current mode.
func (d *Dispatcher) HandleKey(ev key.Event) error {
	if d.mode == ModeInsert {
		return d.handleInsertKey(ev)
	}
	return d.handleNormalKey(ev)
}

// handleNormalKey routes a key through the command parser, falling back
// to the extended command table when the built-in grammar rejects it.
func (d *Dispatcher) handleNormalKey(ev key.Event) error {
	switch ev.Key {
	case key.KeyLeft, key.KeyRight, key.KeyUp, key.KeyDown:
		return d.arrowMotion(ev.Key)
	}

	d.pending = append(d.pending, ev)

	if d.external {
		return d.resolveExternal()
	}

	res := d.parser.Parse(ev)
	switch res.Status {
	case vim.StatusPending:
		return nil

	case vim.StatusComplete:
		keys := d.takePending()
		return d.runCommand(res.Command, keys)

	case vim.StatusInvalid:
		return d.resolveExternal()

	case vim.StatusPassthrough:
		// Escape unwinds any partial sequence; other unhandled keys are
		// dropped.
		d.takePending()
		d.external = false
		return nil

	default:
		d.takePending()
		return nil
	}
}

// takePending returns the accumulated pending keys and clears them.
func (d *Dispatcher) takePending() []key.Event {
	keys := d.pending
	d.pending = nil
	return keys
}

// arrowMotion maps arrow keys onto the h/l/k/j motions.
func (d *Dispatcher) arrowMotion(k key.Key) error {
	pos := d.cursor.Offset()
	switch k {
	case key.KeyLeft:
		target, _ := motion.CharBackward(d.buf, pos, 1)
		d.cursor.Set(target)
	case key.KeyRight:
		target, _ := motion.CharForward(d.buf, pos, 1)
		d.cursor.Set(target)
	case key.KeyUp:
		d.cursor.MoveVertical(-1)
	case key.KeyDown:
		d.cursor.MoveVertical(1)
	}
	return nil
}

// runCommand executes a complete command, bracketed by a recording
// session so that text-changing commands become the repeat script.
func (d *Dispatcher) runCommand(cmd *vim.Command, keys []key.Event) error {
	if d.rec.Replaying() && d.classify(cmd.Action) {
		return fmt.Errorf("%w: %s", repeat.ErrRepeatUnsafe, cmd.Action)
	}

	sess := d.rec.Begin()
	sess.RecordKeys(keys...)

	err := d.execute(cmd)
	if err != nil {
		d.rec.Abort()
		return err
	}

	if d.mode == ModeInsert {
		// The session stays open: inserted text belongs to the script.
		d.insertSess = sess
		return nil
	}

	d.rec.Commit(isRecordable(cmd))
	return nil
}

// isRecordable reports whether a command changes text and should become
// the repeat script.
func isRecordable(cmd *vim.Command) bool {
	if cmd.Operator != nil {
		return cmd.Operator.ChangesText
	}
	switch cmd.Action {
	case "editor.deleteChar", "editor.replaceChar", "mode.insert":
		return true
	}
	return false
}

// execute applies one parsed command.
func (d *Dispatcher) execute(cmd *vim.Command) error {
	if cmd.Operator != nil {
		return d.applyOperator(cmd)
	}
	if cmd.Motion != nil {
		return d.applyMotion(cmd)
	}

	switch cmd.Action {
	case "editor.deleteChar":
		return d.deleteChar(cmd.GetCount())
	case "editor.replaceChar":
		return d.replaceChar(cmd.GetCount(), cmd.CharArg)
	case "mode.insert":
		d.mode = ModeInsert
		return nil
	case "repeat.last":
		return d.player.Replay(cmd.Count, d)
	case "buffer.discard":
		d.wantSave = false
		return ErrQuit
	case "buffer.writeQuit":
		d.wantSave = true
		return ErrQuit
	default:
		return fmt.Errorf("%w: %s", ErrNoHandler, cmd.Action)
	}
}

// applyMotion moves the cursor.
func (d *Dispatcher) applyMotion(cmd *vim.Command) error {
	count := cmd.GetCount()

	switch cmd.Motion.Action {
	case "cursor.up":
		d.cursor.MoveVertical(-count)
		return nil
	case "cursor.down":
		d.cursor.MoveVertical(count)
		return nil
	case "cursor.documentEnd":
		if cmd.Count > 0 {
			d.cursor.Set(motion.GotoLine(d.buf, cmd.Count))
		} else {
			d.cursor.Set(motion.DocumentEnd(d.buf))
		}
		return nil
	}

	target, _ := d.motionTarget(cmd.Motion, count)
	d.cursor.Set(target)
	return nil
}

// motionTarget computes where a motion lands, starting from the cursor.
// The second result is the signed unmet-step overshoot.
func (d *Dispatcher) motionTarget(m *vim.Motion, count int) (buffer.Offset, int) {
	pos := d.cursor.Offset()

	switch m.Action {
	case "cursor.left":
		return motion.CharBackward(d.buf, pos, count)
	case "cursor.right":
		return motion.CharForward(d.buf, pos, count)
	case "cursor.wordForward":
		return motion.WordForward(d.buf, pos, count)
	case "cursor.wordBackward":
		return motion.WordBackward(d.buf, pos, count)
	case "cursor.wordEnd":
		return motion.WordEnd(d.buf, pos, count)
	case "cursor.bigWordForward":
		return motion.BigWordForward(d.buf, pos, count)
	case "cursor.bigWordBackward":
		return motion.BigWordBackward(d.buf, pos, count)
	case "cursor.lineStart":
		return motion.LineStart(d.buf, pos), 0
	case "cursor.lineEnd":
		return motion.LineEnd(d.buf, pos), 0
	case "cursor.paragraphForward":
		return motion.Paragraph(d.buf, pos, count)
	case "cursor.paragraphBackward":
		return motion.Paragraph(d.buf, pos, -count)
	case "cursor.documentStart":
		return motion.DocumentStart(d.buf), 0
	case "cursor.documentEnd":
		return motion.DocumentEnd(d.buf), 0
	case "cursor.up":
		line := d.buf.LineOf(pos) - count
		if line < 0 {
			line = 0
		}
		return d.buf.LineStart(line), 0
	case "cursor.down":
		line := d.buf.LineOf(pos) + count
		if last := d.buf.LineCount() - 1; line > last {
			line = last
		}
		return d.buf.LineStart(line), 0
	default:
		return pos, 0
	}
}

// applyOperator computes the affected span and applies the operator.
func (d *Dispatcher) applyOperator(cmd *vim.Command) error {
	begin := d.cursor.Offset()

	var target buffer.Offset
	var kind span.Type
	switch {
	case cmd.Linewise:
		// dd, yy, cc: this line plus count-1 following lines.
		line := d.buf.LineOf(begin) + cmd.GetCount() - 1
		if last := d.buf.LineCount() - 1; line > last {
			line = last
		}
		target = d.buf.LineStart(line)
		kind = span.Line

	case cmd.Motion != nil:
		m := cmd.Motion
		// cw acts like ce: change-word does not take the trailing
		// whitespace delete-word would.
		if m.Action == "cursor.wordForward" && cmd.Operator.EntersInsert &&
			begin < d.buf.Len() && d.buf.RuneAt(begin) != ' ' {
			m = &vim.MotionWordEnd
		}
		target, _ = d.motionTarget(m, cmd.GetCount())
		switch {
		case m.Type == vim.MotionLinewise:
			kind = span.Line
		case m.Inclusive:
			kind = span.Inclusive
		default:
			kind = span.Exclusive
		}

	default:
		return fmt.Errorf("dispatcher: operator %q without motion", cmd.Operator.Name)
	}

	raw := span.New(begin, target, kind)
	resolved := span.Resolve(d.buf, raw)
	text := d.buf.Slice(resolved.Begin, resolved.End)
	linewise := resolved.Kind == span.Line
	desc := span.Describe(d.buf, raw)

	switch cmd.Operator.Name {
	case "delete", "change":
		d.regs.Write(vim.DefaultRegister, text, linewise)
		d.buf.Delete(resolved.Begin, resolved.End)
		d.cursor.Set(resolved.Begin)
		d.message = desc
		if cmd.Operator.EntersInsert {
			d.mode = ModeInsert
		}

	case "yank":
		d.regs.Write(vim.DefaultRegister, text, linewise)
		d.cursor.Set(resolved.Begin)
		d.message = desc

	case "indentRight":
		d.indentSpan(resolved, true)
		d.message = desc

	case "indentLeft":
		d.indentSpan(resolved, false)
		d.message = desc

	default:
		return fmt.Errorf("%w: %s", ErrNoHandler, cmd.Operator.Action)
	}

	d.log.Debug("operator applied",
		"operator", cmd.Operator.Name,
		"kind", resolved.Kind.String(),
		"span", desc)
	return nil
}

// indentSpan shifts every line the span touches. Lines are walked
// bottom-up so earlier edits do not move later line starts.
func (d *Dispatcher) indentSpan(s span.Span, right bool) {
	first := d.buf.LineOf(s.Begin)
	last := first
	if s.End > s.Begin {
		last = d.buf.LineOf(s.End - 1)
	}
	for line := last; line >= first; line-- {
		start := d.buf.LineStart(line)
		if right {
			d.buf.Insert(start, "\t")
		} else if d.buf.RuneAt(start) == '\t' {
			d.buf.Delete(start, start+1)
		}
	}
	d.cursor.Set(d.buf.LineStart(first))
}

// deleteChar removes count characters forward, stopping at end of line.
func (d *Dispatcher) deleteChar(count int) error {
	pos := d.cursor.Offset()
	end, _ := motion.CharForward(d.buf, pos, count)
	if end == pos {
		return nil
	}
	removed := d.buf.Delete(pos, end)
	d.regs.Write(vim.DefaultRegister, removed, false)
	line := d.buf.LineOf(pos)
	if pos >= d.buf.LineEnd(line) && pos > d.buf.LineStart(line) {
		d.cursor.Set(pos - 1)
	} else {
		d.cursor.Set(pos)
	}
	return nil
}

// replaceChar overwrites count characters with the given character. The
// whole count must fit on the line or nothing happens.
func (d *Dispatcher) replaceChar(count int, c rune) error {
	pos := d.cursor.Offset()
	end, unmet := motion.CharForward(d.buf, pos, count)
	if unmet != 0 {
		return nil
	}
	d.buf.Replace(pos, end, strings.Repeat(string(c), count))
	d.cursor.Set(end - 1)
	return nil
}

// handleInsertKey routes a key while in insert mode.
func (d *Dispatcher) handleInsertKey(ev key.Event) error {
	switch {
	case ev.Key == key.KeyEscape:
		// Leaving insert mode seals the pending repeat script; the
		// escape itself is part of it so replay also returns to normal.
		d.insertSess.RecordKey(ev)
		d.rec.Commit(true)
		d.insertSess = nil
		d.mode = ModeNormal
		// The cursor steps back onto the last inserted character.
		pos := d.cursor.Offset()
		if pos > d.buf.LineStart(d.buf.LineOf(pos)) {
			d.cursor.Set(pos - 1)
		}
		return nil

	case ev.Key == key.KeyEnter:
		d.insertText(ev, "\n")
		return nil

	case ev.Key == key.KeyBackspace:
		pos := d.cursor.Offset()
		if pos > 0 {
			d.buf.Delete(pos-1, pos)
			d.cursor.Set(pos - 1)
		}
		d.insertSess.RecordKey(ev)
		return nil

	case ev.IsRune() && !ev.IsModified():
		d.insertText(ev, string(ev.Rune))
		return nil

	default:
		return nil
	}
}

// insertText inserts text at the cursor and records the key.
func (d *Dispatcher) insertText(ev key.Event, s string) {
	pos := d.cursor.Offset()
	d.buf.Insert(pos, s)
	d.cursor.Set(pos + buffer.Offset(len([]rune(s))))
	d.insertSess.RecordKey(ev)
}

// resolveExternal matches the pending sequence against the extended
// command table once the built-in grammar has rejected it.
func (d *Dispatcher) resolveExternal() error {
	raw := key.StringFromEvents(d.pending)

	parsed, err := vim.Extract(d.table, raw)
	switch {
	case err == nil && parsed.Rest == "":
		d.takePending()
		d.external = false
		return d.runExternal(parsed)

	case errors.Is(err, vim.ErrIncompleteCount):
		d.external = true
		return nil

	case d.table.IsPrefix(stripCount(raw)):
		// More input could still resolve it.
		d.external = true
		return nil

	default:
		d.takePending()
		d.external = false
		d.log.Debug("unbound key sequence", "keys", raw)
		return fmt.Errorf("dispatcher: unbound sequence %q", raw)
	}
}

// stripCount removes the leading count digits from a raw key string. A
// leading '0' is a motion, never a count, so it is left in place.
func stripCount(raw string) string {
	runes := []rune(raw)
	if len(runes) == 0 || !vim.IsCountStart(runes[0]) {
		return raw
	}
	i := 0
	for i < len(runes) && vim.IsCountDigit(runes[i]) {
		i++
	}
	return string(runes[i:])
}

// runExternal invokes a table-resolved action, count times. Recordable
// actions enter the repeat script as symbolic tokens: the action is
// re-invoked on replay through the guarded player path, never rebuilt
// from keys.
func (d *Dispatcher) runExternal(parsed vim.Parsed) error {
	h, ok := d.handlers[parsed.Binding.Action]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoHandler, parsed.Binding.Action)
	}

	if d.rec.Replaying() && d.classify(parsed.Binding.Action) {
		return fmt.Errorf("%w: %s", repeat.ErrRepeatUnsafe, parsed.Binding.Action)
	}

	// The count is baked into the recorded invoke so replaying the
	// symbolic token repeats the action the same number of times.
	count := parsed.EffectiveCount()
	invoke := func() error {
		for i := 0; i < count; i++ {
			if err := h.fn(); err != nil {
				return err
			}
		}
		return nil
	}

	sess := d.rec.Begin()
	sess.RecordAction(parsed.Binding.Action, invoke)

	if err := invoke(); err != nil {
		d.rec.Abort()
		return fmt.Errorf("dispatcher: action %s: %w", parsed.Binding.Action, err)
	}

	d.rec.Commit(h.recordable)
	return nil
}
