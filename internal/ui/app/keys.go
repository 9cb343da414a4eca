// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/jeranaias/lampstand/internal/nav"
)

// KeyMap defines the global bindings handled by the root model.
type KeyMap struct {
	History key.Binding
	Notes   key.Binding
	Profile key.Binding
	Export  key.Binding
	Close   key.Binding
	Quit    key.Binding

	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Next   key.Binding

	NewNote    key.Binding
	DeleteNote key.Binding
	SaveNote   key.Binding

	Routes map[string]nav.Route
}

// DefaultKeyMap returns the default global bindings.
func DefaultKeyMap() KeyMap {
	routes := make(map[string]nav.Route)
	for _, l := range nav.Links() {
		routes[l.Key] = l.Route
	}

	return KeyMap{
		History: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "history"),
		),
		Notes: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("C-o", "notes"),
		),
		Profile: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("C-g", "profile"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("C-x", "export"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("up", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("down", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "select"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next field"),
		),
		NewNote: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new note"),
		),
		DeleteNote: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		SaveNote: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "save"),
		),
		Routes: routes,
	}
}
