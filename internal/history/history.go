// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history provides the conversation-history drawer: a read-only list
// of past conversation summaries and a substring filter over it.
package history

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"

	"github.com/jeranaias/lampstand/internal/model"
)

// =============================================================================
// SEED DATA
// =============================================================================

// Seed returns the built-in history entries with timestamps relative to now.
func Seed(now time.Time) []model.HistoryItem {
	return []model.HistoryItem{
		{
			ID:           "1",
			Title:        "Understanding John 3:16",
			Preview:      "Discussion about God's love and sacrifice...",
			Timestamp:    now.Add(-30 * time.Minute),
			MessageCount: 8,
		},
		{
			ID:           "2",
			Title:        "Prayer and Faith",
			Preview:      "Exploring the relationship between prayer and faith...",
			Timestamp:    now.Add(-2 * time.Hour),
			MessageCount: 12,
		},
		{
			ID:           "3",
			Title:        "Psalms 23 Commentary",
			Preview:      "Deep dive into the shepherd psalm...",
			Timestamp:    now.Add(-24 * time.Hour),
			MessageCount: 15,
		},
	}
}

// =============================================================================
// FILTER
// =============================================================================

// Filter returns every item whose title or preview contains query, ignoring
// case. Order is preserved and an empty query matches everything. The input
// slice is never modified.
func Filter(items []model.HistoryItem, query string) []model.HistoryItem {
	out := make([]model.HistoryItem, 0, len(items))
	if query == "" {
		return append(out, items...)
	}

	// cases.Caser is stateful, so each call gets its own.
	fold := cases.Fold()
	needle := fold.String(query)
	for _, item := range items {
		if strings.Contains(fold.String(item.Title), needle) ||
			strings.Contains(fold.String(item.Preview), needle) {
			out = append(out, item)
		}
	}
	return out
}

// =============================================================================
// DRAWER STATE
// =============================================================================

// Drawer holds the history list and the current search query.
type Drawer struct {
	mu    sync.RWMutex
	items []model.HistoryItem
	query string
}

// NewDrawer creates a drawer over items.
func NewDrawer(items []model.HistoryItem) *Drawer {
	copied := make([]model.HistoryItem, len(items))
	copy(copied, items)
	return &Drawer{items: copied}
}

// SetQuery replaces the search query. Called on every keystroke.
func (d *Drawer) SetQuery(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.query = query
}

// Query returns the current search query.
func (d *Drawer) Query() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.query
}

// Items returns every entry regardless of the query.
func (d *Drawer) Items() []model.HistoryItem {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]model.HistoryItem, len(d.items))
	copy(out, d.items)
	return out
}

// Visible returns the entries matching the current query.
func (d *Drawer) Visible() []model.HistoryItem {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return Filter(d.items, d.query)
}
