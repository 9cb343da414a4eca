// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/lampstand/internal/history"
	"github.com/jeranaias/lampstand/internal/ui/styles"
	"github.com/jeranaias/lampstand/internal/util"
)

// =============================================================================
// HISTORY DRAWER
// =============================================================================

// historyDrawer is the search box and list over a history.Drawer.
// Selecting an entry has no effect beyond highlighting it.
type historyDrawer struct {
	drawer   *history.Drawer
	keys     KeyMap
	search   textinput.Model
	selected int
	now      func() time.Time
}

func newHistoryDrawer(d *history.Drawer, keys KeyMap, now func() time.Time) historyDrawer {
	search := textinput.New()
	search.Placeholder = "Search conversations..."
	search.Prompt = "⌕ "
	search.CharLimit = 100

	return historyDrawer{
		drawer: d,
		keys:   keys,
		search: search,
		now:    now,
	}
}

// open focuses the search box.
func (h *historyDrawer) open() tea.Cmd {
	return h.search.Focus()
}

func (h *historyDrawer) close() {
	h.search.Blur()
}

// update handles a key while the drawer is open. Every other key goes to
// the search box, and the filter follows each keystroke.
func (h historyDrawer) update(msg tea.KeyMsg) (historyDrawer, tea.Cmd) {
	visible := h.drawer.Visible()
	switch {
	case key.Matches(msg, h.keys.Up):
		if h.selected > 0 {
			h.selected--
		}
		return h, nil
	case key.Matches(msg, h.keys.Down):
		if h.selected < len(visible)-1 {
			h.selected++
		}
		return h, nil
	case key.Matches(msg, h.keys.Select):
		return h, nil
	}

	var cmd tea.Cmd
	h.search, cmd = h.search.Update(msg)
	if h.search.Value() != h.drawer.Query() {
		h.drawer.SetQuery(h.search.Value())
		h.selected = 0
	}
	return h, cmd
}

// =============================================================================
// VIEW
// =============================================================================

func (h historyDrawer) view(theme *styles.Theme, width int) string {
	inner := max(width-4, 10)
	h.search.Width = inner - 2

	var b strings.Builder
	b.WriteString(theme.PanelTitle.Render("Chat History"))
	b.WriteString("\n")
	b.WriteString(h.search.View())
	b.WriteString("\n\n")

	visible := h.drawer.Visible()
	if len(visible) == 0 {
		b.WriteString(theme.Muted.Render("No conversations found"))
		return theme.Panel.Width(width).Render(b.String())
	}

	now := h.now()
	for i, item := range visible {
		titleStyle := theme.ItemTitle
		prefix := "  "
		if i == h.selected {
			titleStyle = theme.ItemSelected
			prefix = "› "
		}
		b.WriteString(titleStyle.Render(prefix + util.TruncateWidth(item.Title, inner-2)))
		b.WriteString("\n")
		b.WriteString("  " + theme.Muted.Render(util.TruncateWidth(util.SingleLine(item.Preview), inner-2)))
		b.WriteString("\n")
		meta := fmt.Sprintf("%s · %s · %d messages",
			item.Stamp(), util.RelativeAge(item.Timestamp, now), item.MessageCount)
		b.WriteString("  " + theme.ItemMeta.Render(meta))
		b.WriteString("\n")
	}
	return theme.Panel.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}
