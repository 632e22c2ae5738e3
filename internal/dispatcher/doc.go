// Package dispatcher runs the command loop: key events come in from a
// Source, the vim grammar parses them into commands, and the commands
// are applied to the buffer through the motion and span packages.
//
// The dispatcher is also the repeat sink. Replaying the last command
// feeds its recorded keys back through the same dispatch path, so
// counts and operators in a script are re-parsed against the current
// buffer rather than replayed as canned edits.
package dispatcher
