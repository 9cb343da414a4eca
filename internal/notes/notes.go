// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package notes provides the in-memory notes collection behind the notes panel.
package notes

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/lampstand/internal/model"
)

// ParseTags splits raw on commas, trims each token and drops empty ones.
// Duplicates are kept.
func ParseTags(raw string) []string {
	tags := make([]string, 0)
	for _, tok := range strings.Split(raw, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			tags = append(tags, tok)
		}
	}
	return tags
}

// =============================================================================
// COLLECTION
// =============================================================================

// Collection is an ordered, most-recent-first list of notes.
type Collection struct {
	mu    sync.RWMutex
	notes []model.Note
	now   func() time.Time
	newID func() string
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Create adds a note at the front of the list.
// It reports false, leaving the list untouched, if title or body is blank.
// Title and body are stored as typed.
func (c *Collection) Create(title, body, rawTags string) (model.Note, bool) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(body) == "" {
		return model.Note{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	note := model.Note{
		ID:        c.newID(),
		Title:     title,
		Body:      body,
		Tags:      ParseTags(rawTags),
		CreatedAt: c.now(),
	}
	c.notes = append([]model.Note{note}, c.notes...)
	return note, true
}

// Delete removes the note with the given id.
// It reports whether a note was removed.
func (c *Collection) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, note := range c.notes {
		if note.ID == id {
			c.notes = append(c.notes[:i:i], c.notes[i+1:]...)
			return true
		}
	}
	return false
}

// List returns a copy of the notes, most recent first.
func (c *Collection) List() []model.Note {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Note, len(c.notes))
	copy(out, c.notes)
	return out
}

// Len returns the number of notes.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.notes)
}

// =============================================================================
// DRAFT
// =============================================================================

// Draft is the state of the create-note form.
type Draft struct {
	Title string
	Body  string
	Tags  string
}

// IsZero reports whether every field is empty.
func (d Draft) IsZero() bool {
	return d.Title == "" && d.Body == "" && d.Tags == ""
}

// Save creates a note from d. On success the returned draft is cleared;
// on rejection it is returned unchanged so the form keeps its contents.
func (c *Collection) Save(d Draft) (model.Note, Draft, bool) {
	note, ok := c.Create(d.Title, d.Body, d.Tags)
	if !ok {
		return model.Note{}, d, false
	}
	return note, Draft{}, true
}
