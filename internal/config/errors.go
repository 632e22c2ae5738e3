package config

import "errors"

// Config errors.
var (
	// ErrParse indicates the config file could not be decoded.
	ErrParse = errors.New("config: parse error")

	// ErrWatcherClosed indicates the watcher was already closed.
	ErrWatcherClosed = errors.New("config: watcher closed")
)
