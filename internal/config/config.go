package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/vicmd/vicmd/internal/input/keymap"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "VICMD_"

// Editor holds buffer and editing settings.
type Editor struct {
	// TabWidth is the display width of a tab character.
	TabWidth int `toml:"tab_width"`

	// ExpandTab inserts spaces instead of tabs.
	ExpandTab bool `toml:"expand_tab"`
}

// Logging holds logger settings.
type Logging struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `toml:"level"`

	// File is the log output path. Empty means stderr.
	File string `toml:"file"`
}

// Script holds user script settings.
type Script struct {
	// Files are Lua scripts loaded at startup, in order.
	Files []string `toml:"files"`
}

// Repeat holds repeat-command settings.
type Repeat struct {
	// Guard blocks context-destroying actions from replay.
	Guard bool `toml:"guard"`
}

// Config is the full configuration.
type Config struct {
	Editor  Editor  `toml:"editor"`
	Logging Logging `toml:"logging"`
	Script  Script  `toml:"script"`
	Repeat  Repeat  `toml:"repeat"`

	// Keymap maps extended key sequences to action names. These are
	// merged into the command table on top of the defaults.
	Keymap map[string]string `toml:"keymap"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: Editor{
			TabWidth: 4,
		},
		Logging: Logging{
			Level: "info",
		},
		Repeat: Repeat{
			Guard: true,
		},
		Keymap: make(map[string]string),
	}
}

// Parse decodes TOML data on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	cfg.applyEnv()
	return cfg, nil
}

// Load reads a TOML config file. A missing file is not an error; the
// defaults (plus environment overrides) are returned instead.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// applyEnv overlays VICMD_ environment variables onto the config.
// Environment wins over file values.
func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_LEVEL"); ok {
		c.Logging.Level = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_FILE"); ok {
		c.Logging.File = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "TAB_WIDTH"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Editor.TabWidth = n
		}
	}
}

// LogLevel translates the configured level name to a slog level.
// Unknown names fall back to info.
func (c *Config) LogLevel() slog.Level {
	switch c.Logging.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ApplyKeymap merges the configured bindings into a command table.
func (c *Config) ApplyKeymap(t *keymap.Table) error {
	for keys, action := range c.Keymap {
		if action == "" {
			t.Unbind(keys)
			continue
		}
		if err := t.Bind(keys, action); err != nil {
			return fmt.Errorf("config: keymap %q: %w", keys, err)
		}
	}
	return nil
}
