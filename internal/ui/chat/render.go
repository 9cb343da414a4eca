// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/lampstand/internal/logging"
	"github.com/jeranaias/lampstand/internal/ui/styles"
)

// newRenderer builds a glamour renderer for assistant replies. It returns
// nil when glamour cannot be initialized; callers fall back to plain text.
func newRenderer(theme *styles.Theme, width int) *glamour.TermRenderer {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		logging.Logger().Warn("markdown renderer unavailable", "error", err)
		return nil
	}
	return r
}

// renderMarkdown renders text with r, or returns it unchanged without one.
func renderMarkdown(r *glamour.TermRenderer, text string) string {
	if r == nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}
