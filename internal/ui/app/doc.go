// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app is the root Bubble Tea model of the lampstand TUI.
//
// It composes the navigation bar, the conversation view, the notes panel,
// the history drawer and the profile menu, and routes key events to
// whichever of them is open. Widgets never talk to each other directly;
// the root model threads open/closed flags and results between them.
//
// # Keys
//
//	F1-F5    navigate (Bible AI, Study Rooms, Devotionals, Notes, Profile)
//	C-r      chat history drawer
//	C-o      quick notes panel
//	C-g      profile menu
//	C-l      voice input indicator
//	C-x      export the conversation and notes as Markdown
//	Esc      close the open panel
//	C-c      quit
package app
