// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.dalton.dog/bubbleup"

	"github.com/jeranaias/lampstand/internal/auth"
	"github.com/jeranaias/lampstand/internal/config"
	"github.com/jeranaias/lampstand/internal/logging"
	"github.com/jeranaias/lampstand/internal/nav"
	"github.com/jeranaias/lampstand/internal/ui/chat"
	"github.com/jeranaias/lampstand/internal/ui/styles"
)

const (
	copiedAlert   = "Copied to clipboard"
	sharedAlert   = "Share summary copied to clipboard"
	reloadedAlert = "Configuration reloaded"
	reloadFailed  = "Config reload failed"
	exportFailed  = "Export failed"
)

type overlay int

const (
	overlayHistory overlay = iota
	overlayNotes
	overlayProfile
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The alert model sees every message so its timers advance.
	outAlert, alertCmd := m.alert.Update(msg)
	m.alert = outAlert.(bubbleup.AlertModel)
	if alertCmd != nil {
		cmds = append(cmds, alertCmd)
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()

	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case chat.CopiedMsg:
		if !m.cfg.UI.ActionAlerts {
			break
		}
		text := copiedAlert
		if msg.Shared {
			text = sharedAlert
		}
		cmd = m.alert.NewAlertCmd(bubbleup.InfoKey, text)

	case chat.VoiceToggledMsg:
		m.bar.ToggleListening()

	case SignOutMsg:
		m, cmd = m.handleSignOut(msg)

	case ConfigReloadedMsg:
		m, cmd = m.handleConfigReload(msg)

	case ExportedMsg:
		if msg.Err != nil {
			logging.Logger().Warn("export failed", "error", msg.Err)
			cmd = m.alert.NewAlertCmd(bubbleup.ErrorKey, exportFailed)
		} else {
			logging.Logger().Info("conversation exported", "path", msg.Path)
			cmd = m.alert.NewAlertCmd(bubbleup.InfoKey, "Exported to "+msg.Path)
		}

	default:
		m.chat, cmd = m.chat.Update(msg)
	}

	if m.ready && m.docked != m.overlayOpen() {
		m.layout()
	}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// =============================================================================
// KEY ROUTING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		m.chat.Session().Close()
		return m, tea.Quit
	}

	if route, ok := m.keys.Routes[msg.String()]; ok {
		return m.navigate(route)
	}

	switch {
	case key.Matches(msg, m.keys.History):
		return m.toggle(overlayHistory)
	case key.Matches(msg, m.keys.Notes):
		return m.toggle(overlayNotes)
	case key.Matches(msg, m.keys.Profile):
		return m.toggle(overlayProfile)
	case key.Matches(msg, m.keys.Export) && m.exportDir != "":
		return m, m.exportCmd()
	}

	switch {
	case m.bar.ProfileOpen:
		if key.Matches(msg, m.keys.Close) {
			return m.closeOverlays()
		}
		var cmd tea.Cmd
		m.profile, cmd = m.profile.update(msg, m.auth)
		return m, cmd

	case m.bar.NotesOpen:
		var (
			cmd      tea.Cmd
			consumed bool
		)
		m.notes, cmd, consumed = m.notes.update(msg)
		if !consumed && key.Matches(msg, m.keys.Close) {
			return m.closeOverlays()
		}
		return m, cmd

	case m.bar.HistoryOpen:
		if key.Matches(msg, m.keys.Close) {
			return m.closeOverlays()
		}
		var cmd tea.Cmd
		m.history, cmd = m.history.update(msg)
		return m, cmd
	}

	if m.bar.Current != nav.RouteDashboard {
		return m, nil
	}
	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return m, cmd
}

// navigate switches route and closes any open panel.
func (m Model) navigate(route nav.Route) (Model, tea.Cmd) {
	m, _ = m.closeOverlays()
	m.bar.Navigate(route)
	if route != nav.RouteDashboard {
		m.chat.Blur()
		return m, nil
	}
	return m, m.chat.Focus()
}

// toggle opens o, closing the other panels, or closes it if it is open.
func (m Model) toggle(o overlay) (Model, tea.Cmd) {
	wasOpen := m.isOpen(o)
	m, cmd := m.closeOverlays()
	if wasOpen {
		return m, cmd
	}

	m.chat.Blur()
	switch o {
	case overlayHistory:
		m.bar.ToggleHistory()
		return m, m.history.open()
	case overlayNotes:
		m.bar.ToggleNotes()
		if m.notes.creating {
			return m, m.notes.focusField(m.notes.field)
		}
	case overlayProfile:
		m.bar.ToggleProfile()
		m.profile.selected = 0
	}
	return m, nil
}

func (m Model) isOpen(o overlay) bool {
	switch o {
	case overlayHistory:
		return m.bar.HistoryOpen
	case overlayNotes:
		return m.bar.NotesOpen
	default:
		return m.bar.ProfileOpen
	}
}

// closeOverlays closes every panel and hands the keyboard back to the
// conversation when it is on screen.
func (m Model) closeOverlays() (Model, tea.Cmd) {
	if !m.overlayOpen() {
		return m, nil
	}
	if m.bar.HistoryOpen {
		m.history.close()
		m.bar.ToggleHistory()
	}
	if m.bar.NotesOpen {
		m.notes.title.Blur()
		m.notes.body.Blur()
		m.notes.tags.Blur()
		m.bar.ToggleNotes()
	}
	if m.bar.ProfileOpen {
		m.bar.ToggleProfile()
	}
	if m.bar.Current == nav.RouteDashboard {
		return m, m.chat.Focus()
	}
	return m, nil
}

// =============================================================================
// RESULTS
// =============================================================================

func (m Model) handleSignOut(msg SignOutMsg) (Model, tea.Cmd) {
	out := msg.Outcome
	if !out.OK {
		logging.WithFields("event", "sign_out").Error("sign out failed", "error", out.Err)
		return m, m.alert.NewAlertCmd(bubbleup.ErrorKey, out.Notification)
	}

	logging.WithFields("event", "sign_out").Info("signed out")
	m, _ = m.closeOverlays()
	m.bar.Navigate(out.Route)
	m.chat.Blur()
	return m, m.alert.NewAlertCmd(bubbleup.InfoKey, out.Notification)
}

func (m Model) handleConfigReload(msg ConfigReloadedMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		logging.Logger().Warn("config reload failed", "error", msg.Err)
		return m, m.alert.NewAlertCmd(bubbleup.ErrorKey, reloadFailed)
	}
	cfg := msg.Config
	if cfg == nil {
		cfg = config.Global()
	}
	m = m.applyConfig(cfg)
	logging.Logger().Info("config reloaded", "theme", cfg.UI.Theme, "markdown", cfg.UI.Markdown)
	return m, m.alert.NewAlertCmd(bubbleup.InfoKey, reloadedAlert)
}

// applyConfig applies the settings the interface owns. The reply delay and
// the log level belong to the process and are applied where it reloads.
func (m Model) applyConfig(cfg *config.Config) Model {
	if !strings.EqualFold(cfg.UI.Theme, m.cfg.UI.Theme) {
		m.theme = styles.NewTheme(cfg.UI.Theme)
	}
	if m.theme != m.chat.Theme() || cfg.UI.Markdown != m.chat.Markdown() {
		m.chat.SetStyle(m.theme, cfg.UI.Markdown)
	}

	user := auth.User{DisplayName: cfg.Profile.DisplayName, Email: cfg.Profile.Email}
	m.profile.user = user
	if local, ok := m.auth.(*auth.Local); ok {
		local.Configure(user, cfg.Profile.FailSignOut)
	}

	m.bar.Notifications = cfg.Notifications.Count
	m.cfg = cfg
	return m
}
