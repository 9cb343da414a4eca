// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations, notes and history.
//
// This package defines the core domain types shared by the session, notes,
// history and UI packages.
//
// # Key Types
//
//   - Conversation: Append-only list of messages with a derived title
//   - Message: Immutable message with role, text, timestamp and optional insights
//   - Insight: Theologian commentary attached to an AI message
//   - Note: Freeform tagged study note
//   - HistoryItem: Read-only summary of a past conversation
//
// # Usage
//
// Build a conversation:
//
//	conv := model.NewConversation()
//	conv.Append(model.NewUserMessage("What is grace?", time.Now()))
//
// Message ids are derived from the creation instant and are unique within
// the process even when the clock does not advance between two messages.
package model
