package keymap

import "testing"

func TestResolveLongestPrefix(t *testing.T) {
	tbl := NewTable()
	for _, b := range []Binding{
		{"g", "motion.g"},
		{"gg", "cursor.documentStart"},
		{"w", "cursor.wordForward"},
	} {
		if err := tbl.Bind(b.Keys, b.Action); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		in           string
		wantAction   string
		wantConsumed string
		wantRest     string
		wantOK       bool
	}{
		{"gg", "cursor.documentStart", "gg", "", true},
		{"g", "motion.g", "g", "", true},
		{"ggw", "cursor.documentStart", "gg", "w", true},
		{"w20", "cursor.wordForward", "w", "20", true},
		{"z", "", "", "z", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			b, consumed, rest, ok := tbl.Resolve(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if b.Action != tt.wantAction || consumed != tt.wantConsumed || rest != tt.wantRest {
				t.Errorf("Resolve(%q) = (%q, %q, %q), want (%q, %q, %q)",
					tt.in, b.Action, consumed, rest,
					tt.wantAction, tt.wantConsumed, tt.wantRest)
			}
		})
	}
}

func TestIsPrefix(t *testing.T) {
	tbl := NewTable()
	if err := tbl.Bind("ZQ", "buffer.discard"); err != nil {
		t.Fatal(err)
	}

	if !tbl.IsPrefix("Z") {
		t.Error("Z should be a prefix of ZQ")
	}
	if tbl.IsPrefix("ZQ") {
		t.Error("a complete binding is not a proper prefix")
	}
	if tbl.IsPrefix("Q") {
		t.Error("Q is not a prefix")
	}

	tbl.Unbind("ZQ")
	if tbl.IsPrefix("Z") {
		t.Error("prefix should be gone after Unbind")
	}
}

func TestBindRejectsEmpty(t *testing.T) {
	tbl := NewTable()
	if err := tbl.Bind("", "anything"); err == nil {
		t.Error("expected error for empty key string")
	}
}

func TestDefaultTable(t *testing.T) {
	tbl := Default()

	for _, keys := range []string{"w", "0", "gg", ".", "ZQ"} {
		if _, ok := tbl.Lookup(keys); !ok {
			t.Errorf("default table missing %q", keys)
		}
	}
	// "g" alone must not resolve: it is only a prefix of "gg".
	if _, _, _, ok := tbl.Resolve("g"); ok {
		t.Error("lone g should not resolve in the default table")
	}
	if !tbl.IsPrefix("g") {
		t.Error("g should be a pending prefix")
	}
}
