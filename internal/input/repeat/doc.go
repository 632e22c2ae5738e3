// Package repeat records executed commands as replayable scripts and
// re-runs them.
//
// A script is a normalized sequence of tokens: Literal tokens carry raw
// key codes that re-enter the normal dispatch path on replay, Symbolic
// tokens carry an opaque re-invocable action for interactive
// completions that cannot replay as keys. The recorder keeps a single
// process-wide "last command" script; the player replays it, optionally
// substituting the leading count, behind a safety guard that refuses
// context-destroying actions.
package repeat
