// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/lampstand/internal/nav"
	"github.com/jeranaias/lampstand/internal/util"
)

const (
	brand          = "✦ Bible AI"
	listeningLabel = "● Listening"
	micLabel       = "○ Voice"
	comingSoon     = "This page is not available yet."
	landingTitle   = "Welcome to Bible AI"
	landingBody    = "Press F1 to start a Bible study conversation."

	maxPanelWidth = 48
)

// View renders the nav bar above the current page, with any open panel
// docked on the right.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	body := m.pageView()
	if panel := m.panelView(); panel != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, panel)
	}

	view := lipgloss.JoinVertical(lipgloss.Left, m.navView(), body)
	return m.alert.Render(view)
}

// =============================================================================
// NAV BAR
// =============================================================================

func (m Model) navView() string {
	t := m.theme

	left := []string{t.NavBrand.Render(brand)}
	for _, l := range nav.Links() {
		style := t.NavItem
		if l.Route == m.bar.Current {
			style = t.NavItemActive
		}
		left = append(left, style.Render(l.Title))
	}

	var right []string
	if m.bar.Listening {
		right = append(right, t.Listening.Render(listeningLabel))
	} else {
		right = append(right, t.NavItem.Render(micLabel))
	}
	if badge := m.bar.Badge(); badge != "" {
		right = append(right, t.Badge.Render(badge))
	}
	right = append(right, t.Avatar.Render(m.profile.user.Initial()))

	leftStr := lipgloss.JoinHorizontal(lipgloss.Center, left...)
	rightStr := strings.Join(right, " ")

	gap := m.width - lipgloss.Width(leftStr) - lipgloss.Width(rightStr) - 2
	if gap < 1 {
		// Too narrow for the links; keep the brand and the right cluster.
		leftStr = left[0]
		gap = max(m.width-lipgloss.Width(leftStr)-lipgloss.Width(rightStr)-2, 1)
	}
	line := leftStr + t.NavBar.Render(strings.Repeat(" ", gap)) + rightStr
	return t.NavBar.Width(m.width).MaxWidth(m.width).Render(line)
}

// =============================================================================
// PAGES
// =============================================================================

func (m Model) pageView() string {
	switch m.bar.Current {
	case nav.RouteDashboard:
		return m.chat.View()
	case nav.RouteLanding:
		return m.placeholder(landingTitle, landingBody)
	default:
		return m.placeholder(m.bar.Current.Title(), comingSoon)
	}
}

func (m Model) placeholder(title, body string) string {
	width := m.bodyWidth()
	content := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.EmptyTitle.Render(title),
		"",
		m.theme.EmptyBody.Render(util.TruncateWidth(body, width)),
	)
	return lipgloss.Place(width, max(m.height-2, 1), lipgloss.Center, lipgloss.Center, content)
}

func (m Model) panelView() string {
	width := m.panelWidth()
	switch {
	case m.bar.ProfileOpen:
		return m.profile.view(m.theme, width)
	case m.bar.NotesOpen:
		return m.notes.view(m.theme, width)
	case m.bar.HistoryOpen:
		return m.history.view(m.theme, width)
	}
	return ""
}

// panelWidth is the width of a docked panel including its border.
func (m Model) panelWidth() int {
	return min(maxPanelWidth, m.width/2)
}

// bodyWidth is what the page gets once any panel is docked.
func (m Model) bodyWidth() int {
	if m.overlayOpen() {
		return max(m.width-m.panelWidth()-2, 10)
	}
	return m.width
}
