// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// Note is a freeform, tagged study note.
// Tags keep their input order and are not deduplicated.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

// HasTags reports whether the note carries any tags.
func (n Note) HasTags() bool {
	return len(n.Tags) > 0
}

// HistoryItem is a read-only summary of a past conversation.
type HistoryItem struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Preview      string    `json:"preview"`
	Timestamp    time.Time `json:"timestamp"`
	MessageCount int       `json:"message_count"`
}

// Stamp returns the timestamp in the drawer's display format.
func (h HistoryItem) Stamp() string {
	return h.Timestamp.Format("Jan 2, 15:04")
}
