// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/lampstand/internal/actions"
	"github.com/jeranaias/lampstand/internal/insights"
	"github.com/jeranaias/lampstand/internal/model"
	"github.com/jeranaias/lampstand/internal/session"
	"github.com/jeranaias/lampstand/internal/ui/styles"
)

// =============================================================================
// ACTION INTERFACES
// =============================================================================

// Copier places text on the clipboard.
type Copier interface {
	Copy(text string) error
}

// Speaker reads text aloud.
type Speaker interface {
	Speak(text string) error
}

// Sharer formats a message and hands it on.
type Sharer interface {
	Share(msg model.Message) (string, error)
}

// =============================================================================
// FOCUS
// =============================================================================

type focus int

const (
	focusComposer focus = iota
	focusMessages
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Options configures a chat view.
type Options struct {
	Theme   *styles.Theme
	Session *session.Manager

	// Action backends; nil means the system implementation.
	Copier  Copier
	Speaker Speaker
	Sharer  Sharer

	// Markdown renders assistant replies through glamour.
	Markdown bool
}

// Model is the Bubble Tea model for the conversation view.
type Model struct {
	theme   *styles.Theme
	session *session.Manager

	width  int
	height int

	viewport viewport.Model
	composer textarea.Model
	spinner  spinner.Model
	keyMap   KeyMap

	focus    focus
	selected int // index into the session's messages; -1 for none

	// One accordion per assistant message, keyed by message ID.
	// Pointers so the map entries survive Bubble Tea's value copies.
	disclosures map[string]*insights.Disclosure

	copier  Copier
	speaker Speaker
	sharer  Sharer

	markdown bool
	renderer *glamour.TermRenderer
}

// New creates a conversation view over opts.Session.
func New(opts Options) Model {
	if opts.Theme == nil {
		opts.Theme = styles.NewTheme("auto")
	}
	if opts.Copier == nil {
		opts.Copier = actions.NewCopier()
	}
	if opts.Sharer == nil {
		opts.Sharer = actions.NewSharer(actions.NewCopier())
	}
	if opts.Speaker == nil {
		opts.Speaker = actions.NewSpeaker()
	}

	ta := textarea.New()
	ta.Placeholder = "Ask about a verse, seek guidance, or explore biblical themes..."
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 4000
	ta.SetHeight(3)
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = opts.Theme.Spinner

	vp := viewport.New(80, 20)

	m := Model{
		theme:       opts.Theme,
		session:     opts.Session,
		viewport:    vp,
		composer:    ta,
		spinner:     sp,
		keyMap:      DefaultKeyMap(),
		focus:       focusComposer,
		selected:    -1,
		disclosures: make(map[string]*insights.Disclosure),
		copier:      opts.Copier,
		speaker:     opts.Speaker,
		sharer:      opts.Sharer,
		markdown:    opts.Markdown,
	}
	m.refresh()
	return m
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Session returns the session behind the view.
func (m Model) Session() *session.Manager {
	return m.session
}

// Selected returns the selected message, if the message list has focus.
func (m Model) Selected() (model.Message, bool) {
	msgs := m.session.Messages()
	if m.focus != focusMessages || m.selected < 0 || m.selected >= len(msgs) {
		return model.Message{}, false
	}
	return msgs[m.selected], true
}

// ComposerFocused reports whether keystrokes go to the composer.
func (m Model) ComposerFocused() bool {
	return m.focus == focusComposer
}

// Draft returns the composer's current text.
func (m Model) Draft() string {
	return m.composer.Value()
}

// Disclosure returns the insight accordion for an assistant message.
func (m Model) Disclosure(messageID string) *insights.Disclosure {
	d, ok := m.disclosures[messageID]
	if !ok {
		d = &insights.Disclosure{}
		m.disclosures[messageID] = d
	}
	return d
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts the composer's cursor blink.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// SetSize sets the area available to the view.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	m.composer.SetWidth(max(width-4, 10))

	// composer box (3 lines + border) + thinking line + help line
	chrome := m.composer.Height() + 2 + 1 + 1
	m.viewport.Width = width
	m.viewport.Height = max(height-chrome, 3)

	m.renderer = nil
	if m.markdown {
		m.renderer = newRenderer(m.theme, width-8)
	}
	m.refresh()
}

// SetStyle swaps the theme and markdown setting, rebuilding the renderer
// for the current size.
func (m *Model) SetStyle(theme *styles.Theme, markdown bool) {
	m.theme = theme
	m.spinner.Style = theme.Spinner
	m.markdown = markdown
	m.SetSize(m.width, m.height)
}

// Theme returns the active theme.
func (m Model) Theme() *styles.Theme {
	return m.theme
}

// Markdown reports whether replies render through glamour.
func (m Model) Markdown() bool {
	return m.markdown
}

// Blur releases the composer, e.g. while a panel is open.
func (m *Model) Blur() {
	m.composer.Blur()
}

// Focus returns keystrokes to the composer.
func (m *Model) Focus() tea.Cmd {
	m.focus = focusComposer
	m.selected = -1
	m.refresh()
	return m.composer.Focus()
}
