package repeat

import (
	"fmt"

	"github.com/vicmd/vicmd/internal/input/key"
	"github.com/vicmd/vicmd/internal/input/vim"
)

// Sink is the dispatch path a replay feeds into. Literal keys re-enter
// normal key dispatch so nested counts and operators are re-parsed, not
// replayed blindly.
type Sink interface {
	// Feed dispatches one replayed key event.
	Feed(ev key.Event) error
}

// Classifier reports whether an action is context-destroying and
// therefore unsafe to replay through the guarded entry point.
type Classifier func(action string) bool

// Player replays a stored command script.
type Player struct {
	rec      *Recorder
	classify Classifier
}

// NewPlayer creates a player over the recorder's stored script.
// A nil classifier treats every action as safe.
func NewPlayer(rec *Recorder, classify Classifier) *Player {
	return &Player{rec: rec, classify: classify}
}

// Replay re-runs the stored script. count > 0 overrides the count
// attached to the first operator or motion in the script; counts
// recorded deeper in the script replay unchanged.
//
// This is the guarded entry point: a Symbolic token whose action the
// classifier marks context-destroying aborts with ErrRepeatUnsafe
// before it is invoked. Invoking the same action directly, outside the
// player, is permitted; the asymmetry is the trust boundary. Literal
// keys re-enter dispatch via the sink, which performs its own guarded
// check while a replay is in progress.
func (p *Player) Replay(count int, sink Sink) error {
	tokens := p.rec.Last()
	if len(tokens) == 0 {
		return ErrNothingToRepeat
	}

	if count > 0 {
		tokens[0] = overrideLeadingCount(tokens[0], count)
	}

	p.rec.BeginReplay()
	defer p.rec.EndReplay()

	for _, tok := range tokens {
		switch tok.Kind {
		case Literal:
			for _, ev := range tok.Keys {
				if err := sink.Feed(ev); err != nil {
					return err
				}
			}
		case Symbolic:
			if p.classify != nil && p.classify(tok.Action) {
				return fmt.Errorf("%w: %s", ErrRepeatUnsafe, tok.Action)
			}
			if tok.Invoke == nil {
				return fmt.Errorf("repeat: symbolic token %q has no action", tok.Action)
			}
			if err := tok.Invoke(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Unsafe reports whether an action is blocked at the guarded entry.
func (p *Player) Unsafe(action string) bool {
	return p.classify != nil && p.classify(action)
}

// overrideLeadingCount rewrites the leading count digits of a Literal
// token. The first count site is replaced wholesale; a leading '0' is
// a motion, not a count, so a script starting with '0' gains the new
// count in front of it.
func overrideLeadingCount(tok Token, count int) Token {
	if tok.Kind != Literal {
		return tok
	}

	keys := tok.Keys
	i := 0
	if len(keys) > 0 && keys[0].IsRune() && vim.IsCountStart(keys[0].Rune) {
		for i < len(keys) && keys[i].IsRune() && vim.IsCountDigit(keys[i].Rune) {
			i++
		}
	}

	replaced := key.EventsFromString(fmt.Sprintf("%d", count))
	replaced = append(replaced, keys[i:]...)
	return NewLiteral(replaced...)
}
