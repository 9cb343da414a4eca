// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package auth models the signed-in user and delegates sign-out to an
// identity provider.
package auth

import (
	"context"
	"strings"
	"sync"
	"unicode"

	"github.com/pkg/errors"

	"github.com/jeranaias/lampstand/internal/nav"
)

// Notification texts shown after a sign-out attempt.
const (
	SignedOutMessage     = "Signed out successfully"
	SignOutFailedMessage = "Failed to sign out"
)

// ErrSignOutRejected is returned by a Local provider configured to fail.
var ErrSignOutRejected = errors.New("auth: sign-out rejected by provider")

// =============================================================================
// USER
// =============================================================================

// User is the identity shown in the profile menu.
type User struct {
	DisplayName string
	Email       string
}

// Initial returns the avatar letter: the first letter of the display name,
// else of the email, else "U".
func (u User) Initial() string {
	for _, s := range []string{u.DisplayName, u.Email} {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		r := []rune(s)[0]
		return string(unicode.ToUpper(r))
	}
	return "U"
}

// Label returns the name to show next to the avatar.
func (u User) Label() string {
	if name := strings.TrimSpace(u.DisplayName); name != "" {
		return name
	}
	if email := strings.TrimSpace(u.Email); email != "" {
		return email
	}
	return "User"
}

// =============================================================================
// PROVIDER
// =============================================================================

// Provider is the external identity service.
type Provider interface {
	SignOut(ctx context.Context) error
}

// Local is an in-process provider. It signs out immediately, or fails on
// every attempt when Fail is set.
type Local struct {
	mu       sync.Mutex
	user     User
	signedIn bool
	fail     bool
}

// NewLocal creates a provider with user signed in.
func NewLocal(user User, fail bool) *Local {
	return &Local{user: user, signedIn: true, fail: fail}
}

// User returns the signed-in user.
func (l *Local) User() (User, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.user, l.signedIn
}

// Configure replaces the identity and the failure switch. A signed-out
// provider stays signed out.
func (l *Local) Configure(user User, fail bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.user = user
	l.fail = fail
}

// SignOut implements Provider.
func (l *Local) SignOut(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fail {
		return ErrSignOutRejected
	}
	l.signedIn = false
	return nil
}

// =============================================================================
// SIGN-OUT FLOW
// =============================================================================

// Outcome is what the UI does after a sign-out attempt.
type Outcome struct {
	OK           bool
	Notification string
	Route        nav.Route // where to navigate; empty on failure
	Err          error
}

// SignOut asks p to end the session. On success the caller shows a
// confirmation and navigates to the landing route; on failure it shows an
// error and stays put.
func SignOut(ctx context.Context, p Provider) Outcome {
	if p == nil {
		return Outcome{Notification: SignOutFailedMessage, Err: errors.New("auth: no provider")}
	}
	if err := p.SignOut(ctx); err != nil {
		return Outcome{
			Notification: SignOutFailedMessage,
			Err:          errors.Wrap(err, "sign out"),
		}
	}
	return Outcome{OK: true, Notification: SignedOutMessage, Route: nav.RouteLanding}
}
