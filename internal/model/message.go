// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations, notes and history.
package model

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/jeranaias/lampstand/internal/util"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser Role = "user"
	RoleAI   Role = "ai"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAI:
		return "Assistant"
	default:
		return string(r)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Insight is a single theologian commentary entry attached to an AI message.
type Insight struct {
	Theologian string `json:"theologian"`
	Commentary string `json:"commentary"`
}

// Message represents a single message in a conversation.
// Messages are immutable once created; use the constructors.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`

	// Only set on AI messages.
	Citation string    `json:"citation,omitempty"`
	Insights []Insight `json:"insights,omitempty"`
}

// NewUserMessage creates a user message stamped with the given instant.
func NewUserMessage(text string, now time.Time) Message {
	return Message{
		ID:        NewMessageID(now),
		Role:      RoleUser,
		Text:      text,
		CreatedAt: now,
	}
}

// NewAIMessage creates an AI message stamped with the given instant.
// The insights slice is copied so the caller cannot mutate the message later.
func NewAIMessage(text, citation string, insights []Insight, now time.Time) Message {
	var copied []Insight
	if len(insights) > 0 {
		copied = make([]Insight, len(insights))
		copy(copied, insights)
	}
	return Message{
		ID:        NewMessageID(now),
		Role:      RoleAI,
		Text:      text,
		CreatedAt: now,
		Citation:  citation,
		Insights:  copied,
	}
}

// IsAI reports whether the message was authored by the assistant.
func (m Message) IsAI() bool {
	return m.Role == RoleAI
}

// HasInsights reports whether the message carries theologian commentary.
func (m Message) HasInsights() bool {
	return len(m.Insights) > 0
}

// Clock returns the creation time formatted as HH:MM.
func (m Message) Clock() string {
	return m.CreatedAt.Format("15:04")
}

// Preview returns a truncated preview of the message text.
// Uses rune-based truncation to handle Unicode correctly.
func (m Message) Preview(maxLen int) string {
	return util.TruncateRunes(m.Text, maxLen)
}

// =============================================================================
// ID GENERATION
// =============================================================================

// lastMessageID holds the last issued id in unix nanoseconds.
var lastMessageID atomic.Int64

// NewMessageID derives a message id from the creation instant.
// Ids are strictly increasing within the process, so two messages created
// at the same clock reading still get distinct ids.
func NewMessageID(now time.Time) string {
	n := now.UnixNano()
	for {
		last := lastMessageID.Load()
		if n <= last {
			n = last + 1
		}
		if lastMessageID.CompareAndSwap(last, n) {
			return "msg_" + strconv.FormatInt(n, 10)
		}
		n = now.UnixNano()
	}
}
