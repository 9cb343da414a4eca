// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/lampstand/internal/model"
	"github.com/jeranaias/lampstand/internal/session"
)

// ReplyMsg carries the outcome of a pending reply.
type ReplyMsg struct {
	Message model.Message
	Err     error
}

// CopiedMsg reports that a message was placed on the clipboard.
// Failures are not reported.
type CopiedMsg struct {
	MessageID string
	Shared    bool // a formatted share summary rather than the raw text
}

// VoiceToggledMsg asks the owner to flip the voice input indicator.
type VoiceToggledMsg struct{}

// AwaitReply returns a command that blocks until the session resolves its
// pending reply.
func AwaitReply(mgr *session.Manager) tea.Cmd {
	return func() tea.Msg {
		msg, err := mgr.Await()
		return ReplyMsg{Message: msg, Err: err}
	}
}
