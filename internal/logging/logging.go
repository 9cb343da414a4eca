// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging provides the process-wide structured logger.
//
// The terminal belongs to the UI, so log records go to a file. Until Init
// is called the logger discards everything.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

type ctxKey string

const ctxKeySessionID ctxKey = "session_id"

var (
	mu     sync.RWMutex
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	closer io.Closer
	level  = new(slog.LevelVar)
)

// Options configures Init.
type Options struct {
	Path  string // log file; created with its directory
	Level string // debug, info, warn or error
}

// Init opens the log file and installs it as the global logger.
// Calling Init again replaces the previous file.
func Init(opts Options) error {
	if opts.Path == "" {
		return errors.New("logging: empty path")
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o700); err != nil {
		return errors.Wrap(err, "create log directory")
	}
	f, err := os.OpenFile(opts.Path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return errors.Wrapf(err, "open log file %s", opts.Path)
	}
	SetOutput(f, ParseLevel(opts.Level))

	mu.Lock()
	closer = f
	mu.Unlock()
	return nil
}

// SetOutput installs a text logger writing to w. The previous file, if
// any, is closed.
func SetOutput(w io.Writer, lvl slog.Level) {
	level.Set(lvl)
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: lvl == slog.LevelDebug,
	}))

	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		closer.Close()
		closer = nil
	}
	logger = l
}

// SetLevel changes the minimum level of the installed logger.
func SetLevel(lvl slog.Level) {
	level.Set(lvl)
}

// Close flushes and closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return err
}

// Logger returns the global logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// WithFields returns a logger with additional fields.
func WithFields(kv ...any) *slog.Logger {
	return Logger().With(kv...)
}

// WithSessionID stores a session id in the context.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeySessionID, id)
}

// FromContext returns the logger, tagged with the session id if present.
func FromContext(ctx context.Context) *slog.Logger {
	id, _ := ctx.Value(ctxKeySessionID).(string)
	if id == "" {
		return Logger()
	}
	return Logger().With("session_id", id)
}

// ParseLevel maps a level name to a slog level. Unknown names mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
