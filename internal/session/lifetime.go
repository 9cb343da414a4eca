// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"sync"
)

// =============================================================================
// LIFETIME (THREAD-SAFE CANCELLATION)
// =============================================================================

// lifetime ties deferred work to the owner of a session.
// Always hold it by pointer; Bubble Tea copies models by value on every
// Update and a copied mutex is a bug.
type lifetime struct {
	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	ended  bool
}

// newLifetime creates a lifetime derived from parent.
func newLifetime(parent context.Context) *lifetime {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	return &lifetime{ctx: ctx, cancel: cancel}
}

// context returns the context deferred work must run under.
func (l *lifetime) context() context.Context {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ctx
}

// end cancels the context. Safe to call multiple times.
func (l *lifetime) end() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.ended {
		return
	}
	l.ended = true
	l.cancel()
}

// done reports whether the lifetime has ended, either through end or
// because the parent context was cancelled.
func (l *lifetime) done() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ended || l.ctx.Err() != nil
}
