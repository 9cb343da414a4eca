// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes a study session transcript to a file.
//
// # Supported Formats
//
//   - Markdown: human-readable, with citations and theologian insights
//   - JSON: the full message and note data
//
// # Usage
//
//	t := export.Transcript{Title: conv.Title, Messages: msgs, Notes: notes}
//	path, err := export.ExportToFile(t, export.NewMarkdownExporter(nil), dir)
package export
