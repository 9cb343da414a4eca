// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestRole_DisplayName(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleUser, "You"},
		{RoleAI, "Assistant"},
		{Role("other"), "other"},
	}

	for _, tc := range tests {
		if got := tc.role.DisplayName(); got != tc.want {
			t.Errorf("%q.DisplayName() = %q, want %q", tc.role, got, tc.want)
		}
	}
}

func TestNewMessageID_UniqueForSameInstant(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewMessageID(now)
		require.False(t, seen[id], "duplicate id %s", id)
		require.True(t, strings.HasPrefix(id, "msg_"))
		seen[id] = true
	}
}

func TestNewAIMessage_CopiesInsights(t *testing.T) {
	insights := []Insight{{Theologian: "A", Commentary: "one"}}
	msg := NewAIMessage("text", "John 3:16", insights, time.Now())

	insights[0].Commentary = "mutated"

	assert.Equal(t, "one", msg.Insights[0].Commentary)
	assert.True(t, msg.IsAI())
	assert.True(t, msg.HasInsights())
	assert.Equal(t, "John 3:16", msg.Citation)
}

func TestMessage_Preview(t *testing.T) {
	msg := NewUserMessage("Blessed are the peacemakers", time.Now())

	assert.Equal(t, "Blessed are the peacemakers", msg.Preview(100))
	assert.Equal(t, "Bless...", msg.Preview(8))
	assert.Equal(t, "Bl", msg.Preview(2))
}

func TestMessage_Clock(t *testing.T) {
	at := time.Date(2025, 3, 4, 9, 7, 0, 0, time.UTC)
	msg := NewUserMessage("hi", at)
	assert.Equal(t, "09:07", msg.Clock())
}

// =============================================================================
// CONVERSATION TESTS
// =============================================================================

func TestConversation_AppendKeepsOrder(t *testing.T) {
	conv := NewConversation()
	require.Equal(t, 0, conv.Len())

	now := time.Now()
	first := NewUserMessage("first", now)
	second := NewAIMessage("second", "", nil, now)
	conv.Append(first)
	conv.Append(second)

	msgs := conv.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, first.ID, msgs[0].ID)
	assert.Equal(t, second.ID, msgs[1].ID)

	last, ok := conv.LastAI()
	require.True(t, ok)
	assert.Equal(t, second.ID, last.ID)
}

func TestConversation_MessagesReturnsCopy(t *testing.T) {
	conv := NewConversation()
	conv.Append(NewUserMessage("hello", time.Now()))

	msgs := conv.Messages()
	msgs[0].Text = "changed"

	again := conv.Messages()
	assert.Equal(t, "hello", again[0].Text)
}

func TestConversation_TitleFromFirstUserMessage(t *testing.T) {
	conv := NewConversation()
	conv.Append(NewUserMessage("What does Psalm 23\nteach about rest?", time.Now()))
	conv.Append(NewUserMessage("second question", time.Now()))

	assert.Equal(t, "What does Psalm 23 teach about rest?", conv.Title)

	long := NewConversation()
	long.Append(NewUserMessage(strings.Repeat("a", 80), time.Now()))
	assert.Len(t, []rune(long.Title), 50)
	assert.True(t, strings.HasSuffix(long.Title, "..."))
}

func TestConversation_Summary(t *testing.T) {
	conv := NewConversation()
	conv.Append(NewUserMessage("Grace", time.Now()))
	conv.Append(NewAIMessage("Grace is unmerited favor.", "", nil, time.Now()))

	summary := conv.Summary()
	assert.Equal(t, conv.ID, summary.ID)
	assert.Equal(t, "Grace", summary.Title)
	assert.Equal(t, "Grace is unmerited favor.", summary.Preview)
	assert.Equal(t, 2, summary.MessageCount)
}

// =============================================================================
// NOTE / HISTORY TESTS
// =============================================================================

func TestHistoryItem_Stamp(t *testing.T) {
	item := HistoryItem{Timestamp: time.Date(2025, 1, 9, 14, 30, 0, 0, time.UTC)}
	assert.Equal(t, "Jan 9, 14:30", item.Stamp())
}

func TestNote_HasTags(t *testing.T) {
	assert.False(t, Note{}.HasTags())
	assert.True(t, Note{Tags: []string{"faith"}}.HasTags())
}
