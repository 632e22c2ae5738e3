package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce coalesces the write bursts editors produce on save.
const defaultDebounce = 100 * time.Millisecond

// ReloadFunc is called with the freshly loaded config after the file
// changes on disk.
type ReloadFunc func(cfg *Config)

// Watcher reloads the config file when it changes.
//
// The parent directory is watched rather than the file itself, so
// rename-and-replace saves (the common editor pattern) keep working.
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	log      *slog.Logger
	onReload ReloadFunc
	debounce time.Duration

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

// Watch starts watching the config file at path. onReload runs on the
// watcher goroutine after every successful reload.
func Watch(path string, log *slog.Logger, onReload ReloadFunc) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", abs, err)
	}

	w := &Watcher{
		fsw:      fsw,
		path:     abs,
		log:      log,
		onReload: onReload,
		debounce: defaultDebounce,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrWatcherClosed
	}
	w.closed = true
	err := w.fsw.Close()
	<-w.done
	return err
}

// loop drains fsnotify events, debounces them, and reloads.
func (w *Watcher) loop() {
	defer close(w.done)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			w.reload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("config watch error", "error", err)
		}
	}
}

// reload re-reads the file and hands the result to the callback.
func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.log.Warn("config reload failed", "path", w.path, "error", err)
		return
	}
	w.log.Info("config reloaded", "path", w.path)
	w.onReload(cfg)
}
