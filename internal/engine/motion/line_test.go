package motion

import (
	"testing"

	"github.com/vicmd/vicmd/internal/engine/buffer"
)

func TestLineStartEnd(t *testing.T) {
	b := buffer.New("alpha\nbeta gamma\n")

	if got := LineStart(b, 8); got != 6 {
		t.Errorf("LineStart = %d, want 6", got)
	}
	if got := LineEnd(b, 8); got != 16 {
		t.Errorf("LineEnd = %d, want 16", got)
	}
}

func TestCharForwardStopsAtLineEnd(t *testing.T) {
	b := buffer.New("ab\ncd\n")

	pos, unmet := CharForward(b, 0, 5)
	if pos != 2 || unmet != 3 {
		t.Errorf("CharForward = (%d, %d), want (2, 3)", pos, unmet)
	}
}

func TestCharBackwardStopsAtLineStart(t *testing.T) {
	b := buffer.New("ab\ncd\n")

	pos, unmet := CharBackward(b, 4, 3)
	if pos != 3 || unmet != -2 {
		t.Errorf("CharBackward = (%d, %d), want (3, -2)", pos, unmet)
	}
}

func TestDocumentEnd(t *testing.T) {
	tests := []struct {
		name string
		text string
		want buffer.Offset
	}{
		{"trailing newline lands on last real line", "one\ntwo\nthree\n", 8},
		{"no trailing newline", "one\ntwo", 4},
		{"single line", "one", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := buffer.New(tt.text)
			if got := DocumentEnd(b); got != tt.want {
				t.Errorf("DocumentEnd = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGotoLineClamps(t *testing.T) {
	b := buffer.New("one\ntwo\nthree\n")

	if got := GotoLine(b, 2); got != 4 {
		t.Errorf("GotoLine(2) = %d, want 4", got)
	}
	if got := GotoLine(b, 0); got != 0 {
		t.Errorf("GotoLine(0) = %d, want 0", got)
	}
	if got := GotoLine(b, 99); got != 8 {
		t.Errorf("GotoLine(99) = %d, want 8", got)
	}
}
