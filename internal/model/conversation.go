// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations, notes and history.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation is an append-only, chronological list of messages.
// It is not safe for concurrent use; the session package guards it.
type Conversation struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	messages []Message
}

// NewConversation creates a new, empty conversation.
func NewConversation() *Conversation {
	now := time.Now()
	return &Conversation{
		ID:        "conv_" + uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		messages:  make([]Message, 0),
	}
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// Append adds a message to the end of the conversation.
// There is deliberately no remove operation.
func (c *Conversation) Append(msg Message) {
	c.messages = append(c.messages, msg)
	c.UpdatedAt = msg.CreatedAt
	c.updateTitle()
}

// Messages returns a copy of the messages in insertion order.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// LastAI returns the most recent assistant message.
func (c *Conversation) LastAI() (Message, bool) {
	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].Role == RoleAI {
			return c.messages[i], true
		}
	}
	return Message{}, false
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// Summary builds a history entry describing this conversation.
func (c *Conversation) Summary() HistoryItem {
	preview := ""
	if last, ok := c.LastAI(); ok {
		preview = last.Preview(60)
	}
	return HistoryItem{
		ID:           c.ID,
		Title:        c.Title,
		Preview:      preview,
		Timestamp:    c.UpdatedAt,
		MessageCount: len(c.messages),
	}
}

// updateTitle sets the title from the first user message.
func (c *Conversation) updateTitle() {
	if c.Title != "" {
		return
	}
	for _, msg := range c.messages {
		if msg.Role != RoleUser {
			continue
		}
		title := strings.ReplaceAll(msg.Text, "\n", " ")
		title = strings.TrimSpace(title)
		runes := []rune(title)
		if len(runes) > 50 {
			title = string(runes[:47]) + "..."
		}
		c.Title = title
		return
	}
}
