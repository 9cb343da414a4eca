// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/lampstand/internal/auth"
	"github.com/jeranaias/lampstand/internal/ui/styles"
)

// =============================================================================
// PROFILE MENU
// =============================================================================

const (
	menuProfile = iota
	menuSettings
	menuSignOut
	menuCount
)

var menuLabels = [menuCount]string{"Profile", "Settings", "Sign Out"}

// signOutTimeout bounds one sign-out attempt.
const signOutTimeout = 10 * time.Second

// SignOutMsg carries the result of a sign-out attempt.
type SignOutMsg struct {
	Outcome auth.Outcome
}

// signOutCmd runs the sign-out off the UI goroutine.
func signOutCmd(p auth.Provider) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), signOutTimeout)
		defer cancel()
		return SignOutMsg{Outcome: auth.SignOut(ctx, p)}
	}
}

type profileMenu struct {
	keys     KeyMap
	user     auth.User
	selected int
}

// update handles a key while the menu is open. Only Sign Out does anything
// when chosen.
func (p profileMenu) update(msg tea.KeyMsg, provider auth.Provider) (profileMenu, tea.Cmd) {
	switch {
	case key.Matches(msg, p.keys.Up):
		if p.selected > 0 {
			p.selected--
		}
	case key.Matches(msg, p.keys.Down):
		if p.selected < menuCount-1 {
			p.selected++
		}
	case key.Matches(msg, p.keys.Select):
		if p.selected == menuSignOut {
			return p, signOutCmd(provider)
		}
	}
	return p, nil
}

func (p profileMenu) view(theme *styles.Theme, width int) string {
	var b strings.Builder
	b.WriteString(theme.Avatar.Render(p.user.Initial()))
	b.WriteString(" ")
	b.WriteString(theme.ItemTitle.Render(p.user.Label()))
	if p.user.Email != "" {
		b.WriteString("\n")
		b.WriteString(theme.Muted.Render(p.user.Email))
	}
	b.WriteString("\n\n")

	for i, label := range menuLabels {
		style := theme.ItemTitle
		prefix := "  "
		if i == p.selected {
			style = theme.ItemSelected
			prefix = "› "
		}
		if i == menuSignOut {
			b.WriteString("\n")
		}
		b.WriteString(style.Render(prefix + label))
		if i < menuCount-1 {
			b.WriteString("\n")
		}
	}
	return theme.Panel.Width(width).Render(b.String())
}
