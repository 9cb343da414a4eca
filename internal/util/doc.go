// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across lampstand.
//
// # Key Functions
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe truncation with ellipsis
//   - TruncateWidth, PadRight: terminal-column aware layout
//   - SingleLine: whitespace collapsing for one-line previews
//   - RelativeAge: humanized "2 hours ago" style ages
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
//
// # Usage
//
//	title := util.TruncateWidth(item.Title, 30)
//	err := util.AtomicWriteFile(path, data, 0600)
package util
