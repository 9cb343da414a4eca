// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/lampstand/internal/insights"
	"github.com/jeranaias/lampstand/internal/model"
)

const (
	emptyTitle    = "Start Your Bible Study"
	emptyBody     = "Ask questions about verses, seek spiritual guidance, or explore biblical themes"
	thinkingText  = "AI is thinking..."
	insightsTitle = "Theologian Insights"
	insightRole   = "Biblical Scholar & Theologian"
)

// View renders the conversation, the thinking indicator, the composer and
// the help line.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.session.IsPending() {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(m.theme.ThinkingText.Render(thinkingText))
	}
	b.WriteString("\n")

	b.WriteString(m.theme.Composer.Render(m.composer.View()))
	b.WriteString("\n")
	b.WriteString(m.helpView())

	return b.String()
}

func (m Model) helpView() string {
	h := help.New()
	h.Width = m.width
	if m.focus == focusMessages {
		return h.ShortHelpView(m.keyMap.MessageHelp())
	}
	return h.ShortHelpView(m.keyMap.ShortHelp())
}

// refresh re-renders the message list into the viewport.
func (m *Model) refresh() {
	msgs := m.session.Messages()
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}

	if len(msgs) == 0 {
		m.viewport.SetContent(m.renderEmpty(width, m.viewport.Height))
		return
	}

	blocks := make([]string, 0, len(msgs))
	for i, msg := range msgs {
		block := m.renderMessage(msg, width, i == m.selected && m.focus == focusMessages)
		blocks = append(blocks, block)
	}
	m.viewport.SetContent(strings.Join(blocks, "\n\n"))
}

func (m Model) renderEmpty(width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.EmptyTitle.Render(emptyTitle),
		"",
		m.theme.EmptyBody.Width(min(width-4, 60)).Render(emptyBody),
	)
	return lipgloss.Place(width, max(height, 1), lipgloss.Center, lipgloss.Center, content)
}

// =============================================================================
// MESSAGE RENDERING
// =============================================================================

func (m Model) renderMessage(msg model.Message, width int, selected bool) string {
	var block string
	if msg.IsAI() {
		block = m.renderAIMessage(msg, width, selected)
	} else {
		block = m.renderUserMessage(msg, width)
	}
	if selected {
		block = m.theme.Selected.Render(block)
	}
	return block
}

func (m Model) renderUserMessage(msg model.Message, width int) string {
	header := m.theme.Sender.Render(msg.Role.DisplayName()) + " " + m.theme.Timestamp.Render(msg.Clock())
	bubble := m.theme.UserBubble.
		MaxWidth(width - 2).
		Width(min(lipgloss.Width(msg.Text)+4, max(width-12, 10))).
		Render(msg.Text)

	return lipgloss.JoinVertical(lipgloss.Right, header, bubble)
}

func (m Model) renderAIMessage(msg model.Message, width int, selected bool) string {
	inner := max(width-10, 10)

	body := msg.Text
	if m.renderer != nil {
		body = renderMarkdown(m.renderer, msg.Text)
	} else {
		body = lipgloss.NewStyle().Width(inner).Render(body)
	}

	parts := []string{body}
	if msg.Citation != "" {
		parts = append(parts, "", m.theme.Citation.Width(inner).Render(msg.Citation))
	}

	header := m.theme.Sender.Render(msg.Role.DisplayName()) + " " + m.theme.Timestamp.Render(msg.Clock())
	out := []string{header, m.theme.AIBubble.Render(strings.Join(parts, "\n"))}

	if selected {
		out = append(out, m.theme.ActionHint.Render("[c] copy  [r] read aloud  [s] share"))
	}
	if msg.HasInsights() {
		out = append(out, "", m.renderInsights(msg, inner, selected))
	}
	return strings.Join(out, "\n")
}

// renderInsights draws the accordion. Numbers are shown on the selected
// message because that is where the number keys apply.
func (m Model) renderInsights(msg model.Message, width int, selected bool) string {
	d := m.disclosures[msg.ID]

	lines := []string{m.theme.InsightTitle.Render("❝ " + insightsTitle)}
	for i, in := range msg.Insights {
		open := d != nil && d.IsExpanded(in.Theologian)

		marker := "▸"
		if open {
			marker = "▾"
		}
		label := fmt.Sprintf("%s %s %s", marker, insights.Avatar(in.Theologian), in.Theologian)
		if selected {
			label = fmt.Sprintf("%d %s", i+1, label)
		}
		lines = append(lines, m.theme.ItemTitle.Render(label)+"  "+m.theme.ItemMeta.Render(insightRole))

		if open {
			lines = append(lines, m.theme.InsightBody.Width(width).Render(`"`+in.Commentary+`"`))
		}
	}
	return strings.Join(lines, "\n")
}
