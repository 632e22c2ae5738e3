package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vicmd/vicmd/internal/input/keymap"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Editor.TabWidth != 4 {
		t.Errorf("TabWidth = %d, want 4", cfg.Editor.TabWidth)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Logging.Level)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
[editor]
tab_width = 8
expand_tab = true

[logging]
level = "debug"

[script]
files = ["init.lua", "extra.lua"]

[repeat]
guard = false

[keymap]
"+" = "user.bump"
" q" = "user.pick"
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Editor.TabWidth != 8 || !cfg.Editor.ExpandTab {
		t.Errorf("editor = %+v", cfg.Editor)
	}
	if cfg.LogLevel() != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel())
	}
	if len(cfg.Script.Files) != 2 || cfg.Script.Files[0] != "init.lua" {
		t.Errorf("script files = %v", cfg.Script.Files)
	}
	if cfg.Keymap["+"] != "user.bump" {
		t.Errorf("keymap = %v", cfg.Keymap)
	}
	if cfg.Repeat.Guard {
		t.Error("guard should be disabled")
	}
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("editor = ["))
	if !errors.Is(err, ErrParse) {
		t.Errorf("error = %v, want ErrParse", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Editor.TabWidth != 4 {
		t.Errorf("TabWidth = %d, want default", cfg.Editor.TabWidth)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("VICMD_LOG_LEVEL", "error")
	t.Setenv("VICMD_TAB_WIDTH", "2")

	cfg, err := Parse([]byte("[logging]\nlevel = \"debug\"\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Level = %q, environment should win", cfg.Logging.Level)
	}
	if cfg.Editor.TabWidth != 2 {
		t.Errorf("TabWidth = %d, want 2", cfg.Editor.TabWidth)
	}
}

func TestApplyKeymap(t *testing.T) {
	cfg := Default()
	cfg.Keymap["+"] = "user.bump"
	cfg.Keymap["w"] = "" // empty action unbinds

	table := keymap.NewTable()
	if err := table.Bind("w", "cursor.wordForward"); err != nil {
		t.Fatal(err)
	}
	if err := cfg.ApplyKeymap(table); err != nil {
		t.Fatalf("ApplyKeymap: %v", err)
	}

	if b, ok := table.Lookup("+"); !ok || b.Action != "user.bump" {
		t.Errorf("binding + = %+v, ok = %v", b, ok)
	}
	if _, ok := table.Lookup("w"); ok {
		t.Error("w should be unbound")
	}
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vicmd.toml")
	if err := os.WriteFile(path, []byte("[editor]\ntab_width = 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan *Config, 1)
	w, err := Watch(path, slog.New(slog.NewTextHandler(io.Discard, nil)), func(cfg *Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[editor]\ntab_width = 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.Editor.TabWidth != 8 {
			t.Errorf("TabWidth = %d, want 8", cfg.Editor.TabWidth)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within timeout")
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vicmd.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path, slog.New(slog.NewTextHandler(io.Discard, nil)), func(*Config) {})
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first close: %v", err)
	}
	if err := w.Close(); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("second close = %v, want ErrWatcherClosed", err)
	}
}
