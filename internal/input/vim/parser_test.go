package vim

import (
	"testing"

	"github.com/vicmd/vicmd/internal/input/key"
)

// Helper to create a rune key event.
func runeEvent(r rune) key.Event {
	return key.NewRuneEvent(r, key.ModNone)
}

// Helper to parse a sequence of characters.
func parseSequence(p *Parser, s string) ParseResult {
	var result ParseResult
	for _, r := range s {
		result = p.Parse(runeEvent(r))
	}
	return result
}

func TestParserMotions(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantAction string
		wantCount  int
	}{
		{"simple h", "h", "cursor.left", 0},
		{"simple l", "l", "cursor.right", 0},
		{"simple w", "w", "cursor.wordForward", 0},
		{"simple 0", "0", "cursor.lineStart", 0},
		{"simple dollar", "$", "cursor.lineEnd", 0},
		{"simple G", "G", "cursor.documentEnd", 0},
		{"gg", "gg", "cursor.documentStart", 0},
		{"paragraph", "}", "cursor.paragraphForward", 0},
		{"5j", "5j", "cursor.down", 5},
		{"10w", "10w", "cursor.wordForward", 10},
		{"25G", "25G", "cursor.documentEnd", 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser()
			result := parseSequence(p, tt.input)

			if result.Status != StatusComplete {
				t.Fatalf("expected StatusComplete, got %v", result.Status)
			}
			if result.Command == nil {
				t.Fatal("expected command, got nil")
			}
			if result.Command.Action != tt.wantAction {
				t.Errorf("expected action %q, got %q", tt.wantAction, result.Command.Action)
			}
			if result.Command.Count != tt.wantCount {
				t.Errorf("expected count %d, got %d", tt.wantCount, result.Command.Count)
			}
		})
	}
}

func TestParserOperatorMotion(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantAction string
		wantMotion string
		wantCount  int
	}{
		{"dw", "dw", "editor.delete", "wordForward", 0},
		{"cw", "cw", "editor.change", "wordForward", 0},
		{"yw", "yw", "editor.yank", "wordForward", 0},
		{"d3w", "d3w", "editor.delete", "wordForward", 3},
		{"3dw", "3dw", "editor.delete", "wordForward", 3},
		{"2d3w", "2d3w", "editor.delete", "wordForward", 6},
		{"2d2l", "2d2l", "editor.delete", "right", 4},
		{"d0", "d0", "editor.delete", "lineStart", 0},
		{"dG", "dG", "editor.delete", "documentEnd", 0},
		{"dgg", "dgg", "editor.delete", "documentStart", 0},
		{"y$", "y$", "editor.yank", "lineEnd", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser()
			result := parseSequence(p, tt.input)

			if result.Status != StatusComplete {
				t.Fatalf("expected StatusComplete, got %v", result.Status)
			}
			cmd := result.Command
			if cmd == nil {
				t.Fatal("expected command, got nil")
			}
			if cmd.Action != tt.wantAction {
				t.Errorf("expected action %q, got %q", tt.wantAction, cmd.Action)
			}
			if cmd.Motion == nil {
				t.Fatal("expected motion, got nil")
			}
			if cmd.Motion.Name != tt.wantMotion {
				t.Errorf("expected motion %q, got %q", tt.wantMotion, cmd.Motion.Name)
			}
			if cmd.Count != tt.wantCount {
				t.Errorf("expected count %d, got %d", tt.wantCount, cmd.Count)
			}
		})
	}
}

func TestParserLinewise(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantAction string
		wantCount  int
	}{
		{"dd", "dd", "editor.deleteLine", 0},
		{"yy", "yy", "editor.yankLine", 0},
		{"cc", "cc", "editor.changeLine", 0},
		{"3dd", "3dd", "editor.deleteLine", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser()
			result := parseSequence(p, tt.input)

			if result.Status != StatusComplete {
				t.Fatalf("expected StatusComplete, got %v", result.Status)
			}
			cmd := result.Command
			if cmd.Action != tt.wantAction {
				t.Errorf("expected action %q, got %q", tt.wantAction, cmd.Action)
			}
			if !cmd.Linewise {
				t.Error("expected linewise command")
			}
			if cmd.Count != tt.wantCount {
				t.Errorf("expected count %d, got %d", tt.wantCount, cmd.Count)
			}
		})
	}
}

func TestParserPositionalDecimalCount(t *testing.T) {
	p := NewParser()

	// Reading "4","0","4" accumulates to 404 once a count is active.
	result := parseSequence(p, "404w")
	if result.Status != StatusComplete {
		t.Fatalf("expected StatusComplete, got %v", result.Status)
	}
	if result.Command.Count != 404 {
		t.Errorf("count = %d, want 404", result.Command.Count)
	}
}

func TestParserPendingStates(t *testing.T) {
	p := NewParser()

	for i, r := range "2d3" {
		result := p.Parse(runeEvent(r))
		if result.Status != StatusPending {
			t.Fatalf("key %d: expected StatusPending, got %v", i, result.Status)
		}
	}
	if p.State() != StateOperatorCount {
		t.Errorf("state = %v, want operatorCount", p.State())
	}
	if p.PendingKeys() != "2d3" {
		t.Errorf("pending keys = %q", p.PendingKeys())
	}

	result := p.Parse(runeEvent('w'))
	if result.Status != StatusComplete {
		t.Fatalf("expected StatusComplete, got %v", result.Status)
	}
	if p.State() != StateInitial {
		t.Error("parser should reset after completion")
	}
}

func TestParserReplaceChar(t *testing.T) {
	p := NewParser()

	result := parseSequence(p, "rX")
	if result.Status != StatusComplete {
		t.Fatalf("expected StatusComplete, got %v", result.Status)
	}
	cmd := result.Command
	if cmd.Action != "editor.replaceChar" {
		t.Errorf("action = %q", cmd.Action)
	}
	if cmd.CharArg != 'X' {
		t.Errorf("char arg = %q, want X", cmd.CharArg)
	}

	result = parseSequence(p, "5ry")
	if result.Command.Count != 5 || result.Command.CharArg != 'y' {
		t.Errorf("counted replace = (%d, %q)", result.Command.Count, result.Command.CharArg)
	}
}

func TestParserRepeatCommand(t *testing.T) {
	p := NewParser()

	result := parseSequence(p, "13.")
	if result.Status != StatusComplete {
		t.Fatalf("expected StatusComplete, got %v", result.Status)
	}
	if result.Command.Action != "repeat.last" {
		t.Errorf("action = %q", result.Command.Action)
	}
	if result.Command.Count != 13 {
		t.Errorf("count = %d, want 13", result.Command.Count)
	}
}

func TestParserEscapeUnwinds(t *testing.T) {
	p := NewParser()

	parseSequence(p, "2d3")
	result := p.Parse(key.NewSpecialEvent(key.KeyEscape, key.ModNone))
	if result.Status != StatusPassthrough {
		t.Fatalf("expected StatusPassthrough, got %v", result.Status)
	}
	if p.State() != StateInitial || p.PendingKeys() != "" {
		t.Error("escape should unwind the partial parse")
	}

	// The next command parses cleanly.
	result = parseSequence(p, "w")
	if result.Status != StatusComplete || result.Command.Count != 0 {
		t.Error("state leaked across escape")
	}
}

func TestParserInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown after operator", "dq"},
		{"unknown g command", "gx"},
		{"unknown initial", "~"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser()
			result := parseSequence(p, tt.input)
			if result.Status != StatusInvalid {
				t.Fatalf("expected StatusInvalid, got %v", result.Status)
			}
			if p.State() != StateInitial {
				t.Error("parser should reset after invalid input")
			}
		})
	}
}

func TestParserZCommands(t *testing.T) {
	p := NewParser()

	result := parseSequence(p, "ZQ")
	if result.Status != StatusComplete || result.Command.Action != "buffer.discard" {
		t.Errorf("ZQ = (%v, %v)", result.Status, result.Command)
	}

	result = parseSequence(p, "ZZ")
	if result.Status != StatusComplete || result.Command.Action != "buffer.writeQuit" {
		t.Errorf("ZZ = (%v, %v)", result.Status, result.Command)
	}
}

func TestCombineCounts(t *testing.T) {
	tests := []struct {
		c1, c2, want int
	}{
		{0, 0, 1},
		{2, 0, 2},
		{0, 3, 3},
		{2, 3, 6},
		{2, 2, 4},
	}

	for _, tt := range tests {
		if got := CombineCounts(tt.c1, tt.c2); got != tt.want {
			t.Errorf("CombineCounts(%d, %d) = %d, want %d", tt.c1, tt.c2, got, tt.want)
		}
	}
}

func TestCountStateLeadingZero(t *testing.T) {
	var c CountState

	if c.AccumulateDigit('0') {
		t.Error("leading 0 must not start a count")
	}
	if !c.AccumulateDigit('2') {
		t.Fatal("2 should start a count")
	}
	if !c.AccumulateDigit('0') {
		t.Fatal("0 should accumulate once active")
	}
	if !c.AccumulateDigit('2') {
		t.Fatal("2 should accumulate")
	}
	if c.Value != 202 {
		t.Errorf("value = %d, want 202", c.Value)
	}
}
