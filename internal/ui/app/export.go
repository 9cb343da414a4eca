// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/lampstand/internal/export"
)

// ExportedMsg carries the result of a C-x export.
type ExportedMsg struct {
	Path string
	Err  error
}

// exportCmd snapshots the conversation and notes now and writes them as
// Markdown off the UI goroutine.
func (m Model) exportCmd() tea.Cmd {
	mgr := m.chat.Session()
	t := export.Transcript{
		Title:     mgr.Summary().Title,
		SessionID: mgr.SessionID(),
		Exported:  m.now(),
		Messages:  mgr.Messages(),
		Notes:     m.notes.coll.List(),
	}
	dir := m.exportDir
	return func() tea.Msg {
		path, err := export.ExportToFile(t, export.NewMarkdownExporter(nil), dir)
		return ExportedMsg{Path: path, Err: err}
	}
}
