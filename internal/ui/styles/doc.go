// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the lampstand TUI.
//
// Colors are lipgloss AdaptiveColor values; the Theme bundles the styles
// for the nav bar, messages, panels and notifications, and picks a
// light or dark palette from configuration or the terminal background.
//
// # Usage
//
//	theme := styles.NewTheme(cfg.UI.Theme)
//	rendered := theme.UserBubble.Render(msg.Text)
package styles
