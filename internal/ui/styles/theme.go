// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
type Theme struct {
	IsDark       bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// NAV BAR STYLES
	// ==========================================================================

	NavBar        lipgloss.Style
	NavBrand      lipgloss.Style
	NavItem       lipgloss.Style
	NavItemActive lipgloss.Style
	Badge         lipgloss.Style
	Avatar        lipgloss.Style
	Listening     lipgloss.Style

	// ==========================================================================
	// MESSAGE STYLES
	// ==========================================================================

	UserBubble   lipgloss.Style
	AIBubble     lipgloss.Style
	Selected     lipgloss.Style
	Sender       lipgloss.Style
	Timestamp    lipgloss.Style
	Citation     lipgloss.Style
	InsightTitle lipgloss.Style
	InsightBody  lipgloss.Style
	ActionHint   lipgloss.Style

	// ==========================================================================
	// COMPOSER AND THINKING STYLES
	// ==========================================================================

	Composer     lipgloss.Style
	Spinner      lipgloss.Style
	ThinkingText lipgloss.Style

	// ==========================================================================
	// EMPTY STATE STYLES
	// ==========================================================================

	EmptyTitle lipgloss.Style
	EmptyBody  lipgloss.Style

	// ==========================================================================
	// PANEL STYLES (NOTES, HISTORY, PROFILE MENU)
	// ==========================================================================

	Panel        lipgloss.Style
	PanelTitle   lipgloss.Style
	ItemTitle    lipgloss.Style
	ItemSelected lipgloss.Style
	ItemMeta     lipgloss.Style
	Tag          lipgloss.Style
	FieldLabel   lipgloss.Style

	// ==========================================================================
	// STATUS STYLES
	// ==========================================================================

	Help    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// NewTheme creates a theme for mode ("dark", "light" or "auto").
// Auto asks the terminal for its background.
func NewTheme(mode string) *Theme {
	t := &Theme{
		IsDark:       resolveDark(mode),
		ColorProfile: termenv.ColorProfile(),
	}
	lipgloss.SetHasDarkBackground(t.IsDark)
	t.initStyles()
	return t
}

// terminalDark queries the terminal once. Later queries would race the
// running program for stdin.
var terminalDark = sync.OnceValue(termenv.HasDarkBackground)

// DetectBackground asks the terminal for its background so that "auto"
// themes built later do not have to.
func DetectBackground() {
	terminalDark()
}

func resolveDark(mode string) bool {
	switch strings.ToLower(mode) {
	case "dark":
		return true
	case "light":
		return false
	default:
		return terminalDark()
	}
}

// GlamourStyle returns the glamour standard style name matching the theme.
func (t *Theme) GlamourStyle() string {
	if t.ColorProfile == termenv.Ascii {
		return "notty"
	}
	if t.IsDark {
		return "dark"
	}
	return "light"
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// Nav bar
	t.NavBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Padding(0, 1)

	t.NavBrand = lipgloss.NewStyle().
		Bold(true).
		Foreground(Gold).
		Background(SurfaceDim).
		PaddingRight(2)

	t.NavItem = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceDim).
		Padding(0, 1)

	t.NavItemActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(Blue).
		Background(SurfaceDim).
		Underline(true).
		Padding(0, 1)

	t.Badge = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Rose).
		Padding(0, 1)

	t.Avatar = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Blue).
		Padding(0, 1)

	t.Listening = lipgloss.NewStyle().
		Bold(true).
		Foreground(Rose)

	// Messages
	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		Background(UserBubbleBg).
		Padding(0, 2).
		MarginLeft(8)

	t.AIBubble = lipgloss.NewStyle().
		Foreground(AIBubbleFg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(AIBubbleBorder).
		Padding(0, 1).
		MarginRight(4)

	t.Selected = lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(Blue).
		BorderLeft(true).
		BorderTop(false).
		BorderRight(false).
		BorderBottom(false)

	t.Sender = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Citation = lipgloss.NewStyle().
		Foreground(Gold).
		Italic(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Gold).
		BorderLeft(true).
		BorderTop(false).
		BorderRight(false).
		BorderBottom(false).
		PaddingLeft(1)

	t.InsightTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Violet)

	t.InsightBody = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true).
		PaddingLeft(4)

	t.ActionHint = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Composer
	t.Composer = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.Spinner = lipgloss.NewStyle().
		Foreground(Blue)

	t.ThinkingText = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Empty state
	t.EmptyTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary).
		Align(lipgloss.Center)

	t.EmptyBody = lipgloss.NewStyle().
		Foreground(TextMuted).
		Align(lipgloss.Center)

	// Panels
	t.Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.PanelTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary).
		MarginBottom(1)

	t.ItemTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.ItemSelected = lipgloss.NewStyle().
		Bold(true).
		Foreground(Blue)

	t.ItemMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Tag = lipgloss.NewStyle().
		Foreground(Emerald)

	t.FieldLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Status
	t.Help = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Success = lipgloss.NewStyle().
		Foreground(Emerald)

	t.Error = lipgloss.NewStyle().
		Foreground(Rose)
}
