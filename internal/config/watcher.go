// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// =============================================================================
// CONFIG FILE WATCHER
// =============================================================================

// Watcher reloads the configuration when its file changes.
//
// The parent directory is watched rather than the file itself so that
// editors which save by rename keep being observed.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onReload func(*Config, error)

	mu      sync.Mutex
	pending time.Time // zero when no change is waiting

	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	started bool
}

// NewWatcher creates a watcher for path. onReload receives the freshly
// loaded configuration, or the load error; it runs on the watcher goroutine.
func NewWatcher(path string, debounce time.Duration, onReload func(*Config, error)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create file watcher")
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		path:     filepath.Clean(path),
		watcher:  fw,
		debounce: debounce,
		onReload: onReload,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}, nil
}

// Watch starts watching. It returns once the watch is registered.
func (w *Watcher) Watch() error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return errors.Wrapf(err, "watch %s", filepath.Dir(w.path))
	}
	w.started = true
	go w.processEvents()
	return nil
}

// processEvents records changes to the config file and reloads it once the
// file has been quiet for the debounce interval.
func (w *Watcher) processEvents() {
	defer close(w.done)

	ticker := time.NewTicker(w.tick())
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.mu.Lock()
				w.pending = time.Now()
				w.mu.Unlock()
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

		case now := <-ticker.C:
			w.mu.Lock()
			due := !w.pending.IsZero() && now.Sub(w.pending) >= w.debounce
			if due {
				w.pending = time.Time{}
			}
			w.mu.Unlock()

			if due && w.onReload != nil {
				w.onReload(LoadFromPath(w.path))
			}
		}
	}
}

func (w *Watcher) tick() time.Duration {
	if w.debounce > 0 && w.debounce < 100*time.Millisecond {
		return w.debounce
	}
	return 100 * time.Millisecond
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	w.cancel()
	err := w.watcher.Close()
	if w.started {
		<-w.done
	}
	return err
}
