// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.dalton.dog/bubbleup"

	"github.com/jeranaias/lampstand/internal/auth"
	"github.com/jeranaias/lampstand/internal/config"
	"github.com/jeranaias/lampstand/internal/history"
	"github.com/jeranaias/lampstand/internal/nav"
	"github.com/jeranaias/lampstand/internal/notes"
	"github.com/jeranaias/lampstand/internal/session"
	"github.com/jeranaias/lampstand/internal/ui/chat"
	"github.com/jeranaias/lampstand/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// ConfigReloadedMsg is sent when the config file changed on disk.
// A nil Config means the reloaded config.Global.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// =============================================================================
// MODEL
// =============================================================================

// Options configures the root model.
type Options struct {
	Theme   *styles.Theme
	Session *session.Manager
	Config  *config.Config

	Auth auth.Provider
	User auth.User

	Notes   *notes.Collection
	History *history.Drawer

	// ExportDir receives C-x exports; empty disables the key.
	ExportDir string

	// Action backends for the chat view; nil means the system implementation.
	Copier  chat.Copier
	Speaker chat.Speaker
	Sharer  chat.Sharer

	Clock func() time.Time
}

// Model is the root Bubble Tea model.
type Model struct {
	theme *styles.Theme
	keys  KeyMap
	cfg   *config.Config

	bar  nav.Bar
	chat chat.Model

	notes   notesPanel
	history historyDrawer
	profile profileMenu

	auth      auth.Provider
	alert     bubbleup.AlertModel
	exportDir string
	now       func() time.Time

	width    int
	height   int
	ready    bool
	docked   bool // a panel was open at the last layout
	quitting bool
}

// New creates the root model. The session is required; everything else
// falls back to defaults.
func New(opts Options) Model {
	if opts.Theme == nil {
		opts.Theme = styles.NewTheme("auto")
	}
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Notes == nil {
		opts.Notes = notes.NewCollection()
	}
	if opts.History == nil {
		opts.History = history.NewDrawer(history.Seed(opts.Clock()))
	}
	if opts.Auth == nil {
		opts.Auth = auth.NewLocal(opts.User, false)
	}

	keys := DefaultKeyMap()
	bar := nav.NewBar(opts.Config.Notifications.Count)
	bar.Navigate(nav.RouteDashboard)

	return Model{
		theme: opts.Theme,
		keys:  keys,
		cfg:   opts.Config,
		bar:   bar,
		chat: chat.New(chat.Options{
			Theme:    opts.Theme,
			Session:  opts.Session,
			Copier:   opts.Copier,
			Speaker:  opts.Speaker,
			Sharer:   opts.Sharer,
			Markdown: opts.Config.UI.Markdown,
		}),
		notes:     newNotesPanel(opts.Notes, keys),
		history:   newHistoryDrawer(opts.History, keys, opts.Clock),
		profile:   profileMenu{keys: keys, user: opts.User},
		auth:      opts.Auth,
		alert:     *bubbleup.NewAlertModel(40, true, 2),
		exportDir: opts.ExportDir,
		now:       opts.Clock,
	}
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Bar returns the navigation state.
func (m Model) Bar() nav.Bar {
	return m.bar
}

// Chat returns the conversation view.
func (m Model) Chat() chat.Model {
	return m.chat
}

// Theme returns the active theme.
func (m Model) Theme() *styles.Theme {
	return m.theme
}

// Session returns the conversation session.
func (m Model) Session() *session.Manager {
	return m.chat.Session()
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// overlayOpen reports whether a panel currently owns the keyboard.
func (m Model) overlayOpen() bool {
	return m.bar.ProfileOpen || m.bar.NotesOpen || m.bar.HistoryOpen
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts the composer blink and the alert ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.chat.Init(),
		m.alert.Init(),
	)
}

// layout sizes the chat view to whatever the nav bar and any docked panel
// leave.
func (m *Model) layout() {
	const navHeight = 1
	m.docked = m.overlayOpen()
	m.chat.SetSize(m.bodyWidth(), max(m.height-navHeight-1, 5))
}
