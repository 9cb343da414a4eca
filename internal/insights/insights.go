// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package insights holds the accordion state for theologian commentary.
package insights

// avatars maps known theologians to their display glyph.
var avatars = map[string]string{
	"C.S. Lewis":             "🎓",
	"Charles Spurgeon":       "⛪",
	"Martin Luther King Jr.": "✊",
	"Sam Shamoun":            "📚",
}

// DefaultAvatar is shown for theologians without a glyph of their own.
const DefaultAvatar = "👤"

// Avatar returns the display glyph for a theologian.
func Avatar(theologian string) string {
	if a, ok := avatars[theologian]; ok {
		return a
	}
	return DefaultAvatar
}

// Disclosure tracks which entry of one insights panel is expanded.
// At most one entry is expanded at a time. The zero value has none expanded.
type Disclosure struct {
	expanded string
	open     bool
}

// Toggle expands theologian, or collapses it if it is already expanded.
// Expanding an entry collapses any other.
func (d *Disclosure) Toggle(theologian string) {
	if d.open && d.expanded == theologian {
		d.Collapse()
		return
	}
	d.expanded = theologian
	d.open = true
}

// Collapse closes whatever entry is expanded.
func (d *Disclosure) Collapse() {
	d.expanded = ""
	d.open = false
}

// Expanded returns the expanded entry, if any.
func (d *Disclosure) Expanded() (string, bool) {
	return d.expanded, d.open
}

// IsExpanded reports whether theologian is the expanded entry.
func (d *Disclosure) IsExpanded(theologian string) bool {
	return d.open && d.expanded == theologian
}
