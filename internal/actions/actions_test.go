// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package actions

import (
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/lampstand/internal/model"
)

// =============================================================================
// COPIER TESTS
// =============================================================================

func TestCopier_Copy(t *testing.T) {
	var got string
	c := &Copier{write: func(s string) error { got = s; return nil }}

	require.NoError(t, c.Copy("grace and peace"))
	assert.Equal(t, "grace and peace", got)
}

func TestCopier_CopyError(t *testing.T) {
	boom := errors.New("no display")
	c := &Copier{write: func(string) error { return boom }}

	err := c.Copy("x")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "write clipboard")
}

// =============================================================================
// SPEAKER TESTS
// =============================================================================

func TestSpeaker_NoCommandIsSilentNoop(t *testing.T) {
	started := false
	s := newSpeaker(
		func(string) (string, error) { return "", exec.ErrNotFound },
		func(string, ...string) error { started = true; return nil },
	)

	assert.False(t, s.Available())
	assert.NoError(t, s.Speak("hello"))
	assert.False(t, started)
}

func TestSpeaker_UsesFirstAvailableCommand(t *testing.T) {
	var gotName string
	var gotArgs []string
	s := newSpeaker(
		func(name string) (string, error) {
			if name == "espeak" || name == "spd-say" {
				return "/usr/bin/" + name, nil
			}
			return "", exec.ErrNotFound
		},
		func(name string, args ...string) error {
			gotName, gotArgs = name, args
			return nil
		},
	)

	require.True(t, s.Available())
	require.NoError(t, s.Speak("The Lord is my shepherd"))
	assert.Equal(t, "/usr/bin/spd-say", gotName)
	assert.Equal(t, []string{"The Lord is my shepherd"}, gotArgs)
}

func TestSpeaker_BlankTextIsNoop(t *testing.T) {
	started := false
	s := newSpeaker(
		func(name string) (string, error) { return "/bin/" + name, nil },
		func(string, ...string) error { started = true; return nil },
	)

	assert.NoError(t, s.Speak("   "))
	assert.False(t, started)
}

func TestSpeaker_StartError(t *testing.T) {
	s := newSpeaker(
		func(name string) (string, error) { return "/bin/" + name, nil },
		func(string, ...string) error { return errors.New("exec format error") },
	)

	err := s.Speak("hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/bin/say")
}

// =============================================================================
// SHARE TESTS
// =============================================================================

func testReply() model.Message {
	return model.NewAIMessage(
		"Here's what I found about \"love\".",
		"John 3:16",
		[]model.Insight{
			{Theologian: "C.S. Lewis", Commentary: "Love is sacrificial."},
			{Theologian: "Charles Spurgeon", Commentary: "Breadth and depth."},
		},
		time.Date(2025, 2, 14, 9, 30, 0, 0, time.Local),
	)
}

func TestRenderShare(t *testing.T) {
	text, err := RenderShare(testReply())
	require.NoError(t, err)

	want := "Here's what I found about \"love\".\n\n" +
		"> John 3:16\n\n" +
		"Theologian insights:\n" +
		"- C.S. Lewis: \"Love is sacrificial.\"\n" +
		"- Charles Spurgeon: \"Breadth and depth.\"\n\n" +
		"Shared from lampstand, Feb 14, 2025 09:30\n"
	assert.Equal(t, want, text)
}

func TestRenderShare_PlainMessage(t *testing.T) {
	msg := model.NewUserMessage("just text", time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local))

	text, err := RenderShare(msg)
	require.NoError(t, err)
	assert.Equal(t, "just text\n\nShared from lampstand, Jan 1, 2025 00:00\n", text)
}

func TestSharer_CopiesRenderedText(t *testing.T) {
	var copied string
	s := NewSharer(&Copier{write: func(s string) error { copied = s; return nil }})

	text, err := s.Share(testReply())
	require.NoError(t, err)
	assert.Equal(t, text, copied)
	assert.Contains(t, copied, "Charles Spurgeon")
}
