// Package main is the entry point for the vicmd editor.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/vicmd/vicmd/internal/config"
	"github.com/vicmd/vicmd/internal/dispatcher"
	"github.com/vicmd/vicmd/internal/engine/buffer"
	"github.com/vicmd/vicmd/internal/input/keymap"
	"github.com/vicmd/vicmd/internal/script"
	"github.com/vicmd/vicmd/internal/terminal"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	configPath string
	logLevel   string
	file       string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfgPath := opts.configPath
	if cfgPath == "" {
		cfgPath = defaultConfigPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}

	logger, logClose, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logClose()

	text := ""
	if opts.file != "" {
		data, err := os.ReadFile(opts.file)
		if err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: read %s: %v\n", opts.file, err)
			return 1
		}
		text = string(data)
	}

	table := keymap.NewTable()
	if err := cfg.ApplyKeymap(table); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	d := dispatcher.New(buffer.New(text),
		dispatcher.WithLogger(logger),
		dispatcher.WithTable(table),
		dispatcher.WithGuard(cfg.Repeat.Guard),
	)

	eng := script.New(d, logger)
	defer eng.Close()
	if err := eng.LoadFiles(cfg.Script.Files); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Config changes are applied on the dispatch goroutine between key
	// events, never from the watcher goroutine.
	reload := make(chan *config.Config, 1)
	if w, err := config.Watch(cfgPath, logger, func(c *config.Config) {
		select {
		case reload <- c:
		default:
		}
	}); err == nil {
		defer w.Close()
	} else {
		logger.Warn("config watch unavailable", "error", err)
	}

	term, err := terminal.New(logger, cfg.Editor.TabWidth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer term.Close()

	logger.Info("vicmd started", "version", version, "file", opts.file)

	if err := loop(d, term, table, reload, logger); err != nil {
		if errors.Is(err, dispatcher.ErrQuit) {
			return finish(d, opts.file, logger)
		}
		term.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loop renders and dispatches until the source ends or a command quits.
func loop(d *dispatcher.Dispatcher, term *terminal.Terminal, table *keymap.Table,
	reload <-chan *config.Config, logger *slog.Logger) error {
	for {
		select {
		case cfg := <-reload:
			if err := cfg.ApplyKeymap(table); err != nil {
				logger.Warn("keymap reload failed", "error", err)
			}
		default:
		}

		term.Render(d)

		ev, err := term.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err := d.HandleKey(ev); err != nil {
			if errors.Is(err, dispatcher.ErrQuit) {
				return err
			}
			logger.Warn("command failed", "error", err)
			d.Notify(err.Error())
		}
	}
}

// finish handles the quit path, writing the buffer back when asked.
func finish(d *dispatcher.Dispatcher, path string, logger *slog.Logger) int {
	if !d.WantSave() || path == "" {
		return 0
	}
	if err := os.WriteFile(path, []byte(d.Text()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: write %s: %v\n", path, err)
		return 1
	}
	logger.Info("buffer written", "path", path)
	return 0
}

// newLogger builds the logger from config. With no log file configured
// the logger discards everything: the terminal owns stderr.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	if cfg.Logging.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.LogLevel()})
	return slog.New(h), func() { f.Close() }, nil
}

// defaultConfigPath returns ~/.config/vicmd/vicmd.toml.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "vicmd.toml"
	}
	return filepath.Join(home, ".config", "vicmd", "vicmd.toml")
}

func parseFlags() options {
	var opts options
	var showVersion bool

	pflag.StringVarP(&opts.configPath, "config", "c", "", "path to configuration file")
	pflag.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pflag.BoolVarP(&showVersion, "version", "v", false, "show version information")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "vicmd - modal command-line editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: vicmd [options] [file]\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if showVersion {
		fmt.Printf("vicmd %s (%s)\n", version, commit)
		os.Exit(0)
	}

	if args := pflag.Args(); len(args) > 0 {
		opts.file = args[0]
	}
	return opts
}
