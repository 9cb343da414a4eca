// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/lampstand/internal/logging"
	"github.com/jeranaias/lampstand/internal/session"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.focus == focusMessages {
			return m.handleMessageKey(msg)
		}
		return m.handleComposerKey(msg)

	case ReplyMsg:
		return m.handleReply(msg)

	case spinner.TickMsg:
		if !m.session.IsPending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	return m, cmd
}

// =============================================================================
// COMPOSER
// =============================================================================

func (m Model) handleComposerKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Submit):
		return m.submit()

	case key.Matches(msg, m.keyMap.Newline):
		if !m.session.IsPending() {
			m.composer.InsertString("\n")
		}
		return m, nil

	case key.Matches(msg, m.keyMap.SwitchFocus):
		return m.focusMessages(), nil

	case key.Matches(msg, m.keyMap.Voice):
		return m, func() tea.Msg { return VoiceToggledMsg{} }

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.HalfPageUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.HalfPageDown()
		return m, nil
	}

	// The composer is read-only while a reply is pending.
	if m.session.IsPending() {
		return m, nil
	}

	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	return m, cmd
}

// submit hands the composer text to the session. Blank input and
// submissions while a reply is pending change nothing.
func (m Model) submit() (Model, tea.Cmd) {
	sent, err := m.session.Submit(m.composer.Value())
	if err != nil {
		logging.Logger().Debug("submit ignored", "reason", err)
		return m, nil
	}
	logging.Logger().Debug("message submitted",
		"session_id", m.session.SessionID(),
		"message_id", sent.ID,
	)

	m.composer.Reset()
	m.refresh()
	m.viewport.GotoBottom()
	return m, tea.Batch(m.spinner.Tick, AwaitReply(m.session))
}

func (m Model) handleReply(msg ReplyMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		if errors.Is(msg.Err, session.ErrClosed) {
			return m, nil
		}
		logging.Logger().Warn("reply failed", "error", msg.Err)
	} else {
		logging.Logger().Debug("reply delivered", "message_id", msg.Message.ID)
	}
	m.refresh()
	m.viewport.GotoBottom()
	return m, nil
}

// =============================================================================
// MESSAGE LIST
// =============================================================================

// focusMessages moves focus to the message list and selects the newest
// message.
func (m Model) focusMessages() Model {
	n := m.session.Len()
	if n == 0 {
		return m
	}
	m.focus = focusMessages
	m.selected = n - 1
	m.composer.Blur()
	m.refresh()
	m.viewport.GotoBottom()
	return m
}

func (m Model) handleMessageKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.SwitchFocus), msg.Type == tea.KeyEsc:
		cmd := m.Focus()
		return m, cmd

	case key.Matches(msg, m.keyMap.Up):
		if m.selected > 0 {
			m.selected--
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Down):
		if m.selected < m.session.Len()-1 {
			m.selected++
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.HalfPageUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.HalfPageDown()
		return m, nil

	case key.Matches(msg, m.keyMap.Voice):
		return m, func() tea.Msg { return VoiceToggledMsg{} }
	}

	sel, ok := m.Selected()
	if !ok || !sel.IsAI() {
		// Actions are offered on assistant messages only.
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keyMap.Copy):
		if err := m.copier.Copy(sel.Text); err != nil {
			logging.Logger().Debug("copy failed", "error", err)
			return m, nil
		}
		id := sel.ID
		return m, func() tea.Msg { return CopiedMsg{MessageID: id} }

	case key.Matches(msg, m.keyMap.Speak):
		if err := m.speaker.Speak(sel.Text); err != nil {
			logging.Logger().Debug("speech failed", "error", err)
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Share):
		if _, err := m.sharer.Share(sel); err != nil {
			logging.Logger().Debug("share failed", "error", err)
			return m, nil
		}
		id := sel.ID
		return m, func() tea.Msg { return CopiedMsg{MessageID: id, Shared: true} }

	case key.Matches(msg, m.keyMap.Insight):
		idx := int(msg.Runes[0] - '1')
		if idx < len(sel.Insights) {
			m.Disclosure(sel.ID).Toggle(sel.Insights[idx].Theologian)
			m.refresh()
		}
		return m, nil
	}

	return m, nil
}
