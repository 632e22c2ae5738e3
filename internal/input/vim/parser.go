package vim

import (
	"github.com/vicmd/vicmd/internal/input/key"
)

// ParseStatus indicates the result of parsing a key event.
type ParseStatus uint8

const (
	// StatusPending indicates more input is needed.
	StatusPending ParseStatus = iota

	// StatusComplete indicates a complete command was parsed.
	StatusComplete

	// StatusInvalid indicates the sequence is invalid.
	StatusInvalid

	// StatusPassthrough indicates the key should be passed through.
	StatusPassthrough
)

// String returns a string representation of the status.
func (s ParseStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusComplete:
		return "complete"
	case StatusInvalid:
		return "invalid"
	case StatusPassthrough:
		return "passthrough"
	default:
		return "unknown"
	}
}

// ParseState represents the current state of the parser.
type ParseState uint8

const (
	// StateInitial is waiting for initial input.
	StateInitial ParseState = iota

	// StateCount is accumulating a count prefix.
	StateCount

	// StateOperator has received an operator, waiting for a motion.
	StateOperator

	// StateOperatorCount is accumulating a count after an operator.
	StateOperatorCount

	// StateGPrefix has received 'g', waiting for the second key.
	StateGPrefix

	// StateZPrefix has received 'Z', waiting for the second key.
	StateZPrefix

	// StateReplaceChar has received 'r', waiting for the replacement.
	StateReplaceChar
)

// String returns a string representation of the state.
func (s ParseState) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateCount:
		return "count"
	case StateOperator:
		return "operator"
	case StateOperatorCount:
		return "operatorCount"
	case StateGPrefix:
		return "gPrefix"
	case StateZPrefix:
		return "zPrefix"
	case StateReplaceChar:
		return "replaceChar"
	default:
		return "unknown"
	}
}

// Command represents a parsed command.
type Command struct {
	// Count is the combined repeat count (0 means no explicit count).
	Count int

	// Operator is the operator, if any.
	Operator *Operator

	// Motion is the motion, if any.
	Motion *Motion

	// Linewise indicates a doubled-operator line-wise form (dd, yy).
	Linewise bool

	// Action is the action name to dispatch.
	Action string

	// CharArg is the character argument for replace-char.
	CharArg rune
}

// GetCount returns the effective count (1 if none specified).
func (c *Command) GetCount() int {
	if c.Count <= 0 {
		return 1
	}
	return c.Count
}

// ParseResult contains the result of parsing a key event.
type ParseResult struct {
	// Status indicates the parse result.
	Status ParseStatus

	// Command is the parsed command (if Status == StatusComplete).
	Command *Command

	// PendingDisplay shows the pending keys, for the status line.
	PendingDisplay string
}

// Parser resolves key sequences into commands one event at a time.
//
// Parsing is an explicit suspend loop: every call consumes one key and
// returns StatusPending until the sequence resolves, so a live input
// device and a fixed test vector behave identically.
type Parser struct {
	state ParseState

	count1   CountState // pre-operator count
	count2   CountState // post-operator count
	operator *Operator

	// Key accumulator for display.
	pendingKeys []rune
}

// NewParser creates a command parser in the initial state.
func NewParser() *Parser {
	return &Parser{
		pendingKeys: make([]rune, 0, 8),
	}
}

// Reset clears all parser state, unwinding any partial parse.
func (p *Parser) Reset() {
	p.state = StateInitial
	p.count1.Reset()
	p.count2.Reset()
	p.operator = nil
	p.pendingKeys = p.pendingKeys[:0]
}

// State returns the current parser state.
func (p *Parser) State() ParseState {
	return p.state
}

// PendingKeys returns the pending key display string.
func (p *Parser) PendingKeys() string {
	return string(p.pendingKeys)
}

// Parse processes a key event and returns the result.
func (p *Parser) Parse(event key.Event) ParseResult {
	if event.Key == key.KeyEscape {
		p.Reset()
		return ParseResult{Status: StatusPassthrough}
	}

	if !event.IsRune() || event.IsModified() {
		return ParseResult{Status: StatusPassthrough}
	}

	r := event.Rune
	p.pendingKeys = append(p.pendingKeys, r)

	switch p.state {
	case StateInitial:
		return p.parseInitial(r)
	case StateCount:
		return p.parseCount(r)
	case StateOperator:
		return p.parseOperator(r)
	case StateOperatorCount:
		return p.parseOperatorCount(r)
	case StateGPrefix:
		return p.parseGPrefix(r)
	case StateZPrefix:
		return p.parseZPrefix(r)
	case StateReplaceChar:
		return p.parseReplaceChar(r)
	default:
		p.Reset()
		return ParseResult{Status: StatusInvalid}
	}
}

// pending transitions to the given state and reports pending input.
func (p *Parser) pending(state ParseState) ParseResult {
	p.state = state
	return ParseResult{
		Status:         StatusPending,
		PendingDisplay: p.PendingKeys(),
	}
}

// parseInitial handles input in the initial state.
func (p *Parser) parseInitial(r rune) ParseResult {
	// Count prefix (1-9; 0 is the line-start motion).
	if IsCountStart(r) {
		p.count1.AccumulateDigit(r)
		return p.pending(StateCount)
	}

	return p.parseCommandStart(r)
}

// parseCount handles input during count accumulation.
func (p *Parser) parseCount(r rune) ParseResult {
	if IsCountDigit(r) {
		p.count1.AccumulateDigit(r)
		return p.pending(StateCount)
	}

	return p.parseCommandStart(r)
}

// parseCommandStart resolves the first non-digit key of a command.
func (p *Parser) parseCommandStart(r rune) ParseResult {
	if op := GetOperator(r); op != nil {
		p.operator = op
		return p.pending(StateOperator)
	}

	if r == 'g' {
		return p.pending(StateGPrefix)
	}
	if r == 'Z' {
		return p.pending(StateZPrefix)
	}
	if r == 'r' {
		return p.pending(StateReplaceChar)
	}

	if m := GetMotion(r); m != nil {
		return p.completeMotion(m)
	}

	switch r {
	case 'x':
		return p.completeSimple("editor.deleteChar")
	case 'i':
		return p.completeSimple("mode.insert")
	case '.':
		return p.completeSimple("repeat.last")
	}

	p.Reset()
	return ParseResult{Status: StatusInvalid}
}

// parseOperator handles input after an operator key.
func (p *Parser) parseOperator(r rune) ParseResult {
	if IsCountStart(r) {
		p.count2.AccumulateDigit(r)
		return p.pending(StateOperatorCount)
	}

	// Same operator key = line-wise (dd, yy, cc).
	if p.operator.Key == r {
		return p.completeLinewise()
	}

	if r == 'g' {
		return p.pending(StateGPrefix)
	}

	if m := GetMotion(r); m != nil {
		return p.completeOperatorMotion(m)
	}

	p.Reset()
	return ParseResult{Status: StatusInvalid}
}

// parseOperatorCount handles count accumulation after an operator.
func (p *Parser) parseOperatorCount(r rune) ParseResult {
	if IsCountDigit(r) {
		p.count2.AccumulateDigit(r)
		return p.pending(StateOperatorCount)
	}

	if r == 'g' {
		return p.pending(StateGPrefix)
	}

	if m := GetMotion(r); m != nil {
		return p.completeOperatorMotion(m)
	}

	p.Reset()
	return ParseResult{Status: StatusInvalid}
}

// documentStart is the motion produced by "gg".
var documentStart = Motion{
	Name:   "documentStart",
	Key:    'g',
	Action: "cursor.documentStart",
	Type:   MotionLinewise,
}

// parseGPrefix handles input after 'g'.
func (p *Parser) parseGPrefix(r rune) ParseResult {
	if r == 'g' {
		if p.operator != nil {
			return p.completeOperatorMotion(&documentStart)
		}
		return p.completeMotion(&documentStart)
	}

	p.Reset()
	return ParseResult{Status: StatusInvalid}
}

// parseZPrefix handles input after 'Z'.
func (p *Parser) parseZPrefix(r rune) ParseResult {
	switch r {
	case 'Q':
		return p.completeSimple("buffer.discard")
	case 'Z':
		return p.completeSimple("buffer.writeQuit")
	}

	p.Reset()
	return ParseResult{Status: StatusInvalid}
}

// parseReplaceChar handles the character argument after 'r'.
func (p *Parser) parseReplaceChar(r rune) ParseResult {
	cmd := p.buildBaseCommand()
	cmd.Action = "editor.replaceChar"
	cmd.CharArg = r

	p.Reset()
	return ParseResult{
		Status:  StatusComplete,
		Command: cmd,
	}
}

// completeMotion builds a complete motion command.
func (p *Parser) completeMotion(m *Motion) ParseResult {
	cmd := p.buildBaseCommand()
	cmd.Motion = m
	cmd.Action = m.Action

	p.Reset()
	return ParseResult{
		Status:  StatusComplete,
		Command: cmd,
	}
}

// completeOperatorMotion builds a complete operator+motion command.
func (p *Parser) completeOperatorMotion(m *Motion) ParseResult {
	cmd := p.buildBaseCommand()
	cmd.Operator = p.operator
	cmd.Motion = m
	cmd.Action = p.operator.Action

	p.Reset()
	return ParseResult{
		Status:  StatusComplete,
		Command: cmd,
	}
}

// completeLinewise builds a complete doubled-operator command (dd, yy).
func (p *Parser) completeLinewise() ParseResult {
	cmd := p.buildBaseCommand()
	cmd.Operator = p.operator
	cmd.Linewise = true
	cmd.Action = p.operator.LinewiseAction

	p.Reset()
	return ParseResult{
		Status:  StatusComplete,
		Command: cmd,
	}
}

// completeSimple builds a command that is a bare action.
func (p *Parser) completeSimple(action string) ParseResult {
	cmd := p.buildBaseCommand()
	cmd.Action = action

	p.Reset()
	return ParseResult{
		Status:  StatusComplete,
		Command: cmd,
	}
}

// buildBaseCommand creates a Command with the combined count set.
func (p *Parser) buildBaseCommand() *Command {
	cmd := &Command{}

	cmd.Count = CombineCounts(p.count1.Get(), p.count2.Get())
	if cmd.Count == 1 && !p.count1.Active && !p.count2.Active {
		cmd.Count = 0 // no explicit count
	}

	return cmd
}
