// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the state of one conversation.
//
// A Manager is an explicit state container: an append-only message list,
// an idle/pending flag and at most one deferred reply. Every transition is a
// method call; observers subscribe with OnChange.
//
// # States
//
//	idle --Submit(non-blank)--> pending --Deliver / responder error--> idle
//
// Submit while pending and blank input are rejected without any change.
// The pending state cannot be aborted by the user.
//
// # Teardown
//
// The deferred reply runs under a context owned by the Manager. Close (or
// cancelling the parent context) ends it; a reply that still arrives after
// that is discarded, so nothing mutates a session that was torn down.
//
// # Usage
//
//	mgr := session.NewManager(ctx, session.DefaultConfig())
//	defer mgr.Close()
//
//	if _, err := mgr.Submit("What is grace?"); err == nil {
//	    reply, err := mgr.Await()
//	    ...
//	}
package session
