// Package terminal adapts tcell to the dispatcher: it turns terminal
// key events into the editor's key model and renders the buffer and
// status line.
package terminal
