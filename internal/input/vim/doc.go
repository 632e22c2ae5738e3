// Package vim implements the command grammar for key sequences.
//
// The grammar for normal-mode commands is:
//
//	[count] motion
//	[count] operator [count] (motion | operator)
//	[count] simple-command
//
// Examples:
//   - "5j": count=5, motion=j (move down 5 lines)
//   - "d3w": operator=d, count=3, motion=w (delete 3 words)
//   - "2d2l": counts multiply, delete 4 characters
//   - "dd": operator=d doubled, line-wise (delete line)
//   - "13.": repeat the last change with a new leading count
//
// Two entry points share the grammar. Extract parses a complete raw key
// string in one shot and reports exactly what it consumed. Parser
// consumes one key event at a time, suspending with StatusPending when
// more input is required, which keeps live interactive use and fixed
// test vectors behaviorally identical.
//
// A leading '0' is never a count digit: it is the line-start motion,
// complete by itself. Counts before and after an operator combine by
// multiplication.
package vim
