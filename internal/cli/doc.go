// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the lampstand command line.
//
// # Commands
//
//	lampstand                 Full-screen TUI (line mode when stdin is not a terminal)
//	lampstand chat            Line-mode conversation with input history
//	lampstand history [query] Print past conversations, optionally filtered
//	lampstand config [show]   Print the effective configuration
//	lampstand config path     Print the config file location
//	lampstand config reset    Write the default configuration
//	lampstand version         Print version information
//
// # Global Flags
//
//	--config PATH       Config file (default ~/.lampstand/config.toml)
//	--reply-delay MS    Assistant reply delay in milliseconds
//	--debug             Debug logging
//
// Configuration is loaded once per invocation, before any command runs,
// and the log file is opened from it. The TUI also watches the config file
// and applies edits while running. Flags keep precedence over the file
// across reloads.
package cli
