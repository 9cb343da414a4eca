// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chat provides the conversation view of the lampstand TUI.

The view shows the message list in a scrolling viewport, a multi-line
composer, and a spinner while the assistant reply is pending. Assistant
messages carry a citation, a theologian insights accordion, and the copy,
read-aloud and share actions.

# Focus

The view has two focus targets. In the composer, Enter submits and
Alt+Enter inserts a newline. Tab moves focus to the message list, where
up/down select a message and the action keys apply to the selection:

	c        copy the message text
	r        read the message aloud
	s        share the message (copy a formatted summary)
	1-9      expand or collapse the Nth theologian insight

# Replies

Submitting a message returns a command that blocks on the session's
pending reply and resolves to a ReplyMsg. The session owns cancellation,
so closing it discards an in-flight reply.
*/
package chat
