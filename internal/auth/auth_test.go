// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/lampstand/internal/nav"
)

func TestUser_Initial(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{"display name", User{DisplayName: "ruth", Email: "x@example.com"}, "R"},
		{"email fallback", User{Email: "boaz@example.com"}, "B"},
		{"blank name uses email", User{DisplayName: "  ", Email: "naomi@example.com"}, "N"},
		{"nothing", User{}, "U"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.user.Initial())
		})
	}
}

func TestUser_Label(t *testing.T) {
	assert.Equal(t, "Ruth", User{DisplayName: "Ruth", Email: "r@x"}.Label())
	assert.Equal(t, "r@x", User{Email: "r@x"}.Label())
	assert.Equal(t, "User", User{}.Label())
}

func TestSignOut_Success(t *testing.T) {
	p := NewLocal(User{DisplayName: "Ruth"}, false)

	out := SignOut(context.Background(), p)

	require.True(t, out.OK)
	assert.NoError(t, out.Err)
	assert.Equal(t, SignedOutMessage, out.Notification)
	assert.Equal(t, nav.RouteLanding, out.Route)

	_, signedIn := p.User()
	assert.False(t, signedIn)
}

func TestSignOut_ProviderFailure(t *testing.T) {
	p := NewLocal(User{DisplayName: "Ruth"}, true)

	out := SignOut(context.Background(), p)

	assert.False(t, out.OK)
	assert.True(t, errors.Is(out.Err, ErrSignOutRejected))
	assert.Equal(t, SignOutFailedMessage, out.Notification)
	assert.Empty(t, out.Route)

	_, signedIn := p.User()
	assert.True(t, signedIn, "failed sign-out keeps the user signed in")
}

func TestLocal_Configure(t *testing.T) {
	p := NewLocal(User{DisplayName: "Ruth"}, true)
	p.Configure(User{DisplayName: "Boaz"}, false)

	user, signedIn := p.User()
	assert.Equal(t, "Boaz", user.DisplayName)
	assert.True(t, signedIn)
	assert.True(t, SignOut(context.Background(), p).OK)
}

func TestSignOut_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := SignOut(ctx, NewLocal(User{}, false))
	assert.False(t, out.OK)
	assert.Equal(t, SignOutFailedMessage, out.Notification)
}

func TestSignOut_NilProvider(t *testing.T) {
	out := SignOut(context.Background(), nil)
	assert.False(t, out.OK)
	assert.Error(t, out.Err)
}
