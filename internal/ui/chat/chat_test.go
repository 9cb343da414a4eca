// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/lampstand/internal/model"
	"github.com/jeranaias/lampstand/internal/responder"
	"github.com/jeranaias/lampstand/internal/session"
	"github.com/jeranaias/lampstand/internal/ui/styles"
)

// =============================================================================
// TEST DOUBLES
// =============================================================================

type fakeCopier struct {
	copied []string
	err    error
}

func (f *fakeCopier) Copy(text string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = append(f.copied, text)
	return nil
}

type fakeSpeaker struct{ spoken []string }

func (f *fakeSpeaker) Speak(text string) error {
	f.spoken = append(f.spoken, text)
	return nil
}

type fakeSharer struct{ shared []model.Message }

func (f *fakeSharer) Share(msg model.Message) (string, error) {
	f.shared = append(f.shared, msg)
	return msg.Text, nil
}

type fixture struct {
	m       Model
	mgr     *session.Manager
	copier  *fakeCopier
	speaker *fakeSpeaker
	sharer  *fakeSharer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mgr := session.NewManager(context.Background(), session.Config{
		Responder: responder.NewStub(0),
	})
	t.Cleanup(mgr.Close)

	f := &fixture{
		mgr:     mgr,
		copier:  &fakeCopier{},
		speaker: &fakeSpeaker{},
		sharer:  &fakeSharer{},
	}
	f.m = New(Options{
		Theme:   styles.NewTheme("dark"),
		Session: mgr,
		Copier:  f.copier,
		Speaker: f.speaker,
		Sharer:  f.sharer,
	})
	f.m.SetSize(120, 80)
	return f
}

func (f *fixture) send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.m, cmd = f.m.Update(msg)
	return cmd
}

func (f *fixture) typeText(s string) {
	f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func (f *fixture) press(k tea.KeyType) tea.Cmd {
	return f.send(tea.KeyMsg{Type: k})
}

func (f *fixture) rune(r rune) tea.Cmd {
	return f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// converse submits text and delivers the stub reply.
func (f *fixture) converse(t *testing.T, text string) {
	t.Helper()
	f.typeText(text)
	require.NotNil(t, f.press(tea.KeyEnter))
	f.send(AwaitReply(f.mgr)())
	require.Equal(t, session.StateIdle, f.mgr.State())
}

// =============================================================================
// COMPOSER TESTS
// =============================================================================

func TestView_EmptyState(t *testing.T) {
	f := newFixture(t)

	view := f.m.View()
	assert.Contains(t, view, emptyTitle)
	assert.NotContains(t, view, thinkingText)
}

func TestSubmit_AppendsUserMessageAndShowsThinking(t *testing.T) {
	f := newFixture(t)

	f.typeText("What is grace?")
	cmd := f.press(tea.KeyEnter)

	require.NotNil(t, cmd)
	assert.Equal(t, 1, f.mgr.Len())
	assert.True(t, f.mgr.IsPending())
	assert.Empty(t, f.m.Draft())

	view := f.m.View()
	assert.Contains(t, view, "What is grace?")
	assert.Contains(t, view, thinkingText)
}

func TestSubmit_BlankInputIgnored(t *testing.T) {
	f := newFixture(t)

	f.typeText("   ")
	cmd := f.press(tea.KeyEnter)

	assert.Nil(t, cmd)
	assert.Equal(t, 0, f.mgr.Len())
	assert.Equal(t, "   ", f.m.Draft(), "rejected input stays in the composer")
}

func TestSubmit_WhilePendingIgnored(t *testing.T) {
	f := newFixture(t)

	f.typeText("first")
	f.press(tea.KeyEnter)

	f.typeText("second")
	assert.Empty(t, f.m.Draft(), "composer is read-only while pending")

	f.m.composer.SetValue("second")
	assert.Nil(t, f.press(tea.KeyEnter))
	assert.Equal(t, 1, f.mgr.Len())
}

func TestReply_AppendsAssistantMessage(t *testing.T) {
	f := newFixture(t)

	f.converse(t, "Tell me about love")

	msgs := f.mgr.Messages()
	require.Len(t, msgs, 2)
	assert.True(t, msgs[1].IsAI())

	view := f.m.View()
	assert.Contains(t, view, "John 3:16")
	assert.Contains(t, view, insightsTitle)
	assert.Contains(t, view, "Charles Spurgeon")
	assert.NotContains(t, view, thinkingText)
}

func TestReply_ClosedSessionIgnored(t *testing.T) {
	f := newFixture(t)

	cmd := f.send(ReplyMsg{Err: session.ErrClosed})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, f.mgr.Len())
}

func TestNewline_InsertsLineBreak(t *testing.T) {
	f := newFixture(t)

	f.typeText("line one")
	f.send(tea.KeyMsg{Type: tea.KeyEnter, Alt: true})
	f.typeText("line two")

	assert.Equal(t, "line one\nline two", f.m.Draft())
	assert.Equal(t, 0, f.mgr.Len())
}

func TestVoiceKey_EmitsToggle(t *testing.T) {
	f := newFixture(t)

	cmd := f.press(tea.KeyCtrlL)
	require.NotNil(t, cmd)
	assert.IsType(t, VoiceToggledMsg{}, cmd())
}

// =============================================================================
// MESSAGE ACTION TESTS
// =============================================================================

func TestTab_WithoutMessagesKeepsComposer(t *testing.T) {
	f := newFixture(t)

	f.press(tea.KeyTab)
	assert.True(t, f.m.ComposerFocused())
}

func TestTab_SelectsNewestMessage(t *testing.T) {
	f := newFixture(t)
	f.converse(t, "hope")

	f.press(tea.KeyTab)

	sel, ok := f.m.Selected()
	require.True(t, ok)
	assert.True(t, sel.IsAI())
	assert.Contains(t, f.m.View(), "[c] copy")

	f.press(tea.KeyEsc)
	assert.True(t, f.m.ComposerFocused())
	_, ok = f.m.Selected()
	assert.False(t, ok)
}

func TestCopy_AssistantMessage(t *testing.T) {
	f := newFixture(t)
	f.converse(t, "peace")
	f.press(tea.KeyTab)

	cmd := f.rune('c')

	require.Len(t, f.copier.copied, 1)
	assert.Contains(t, f.copier.copied[0], `"peace"`)
	require.NotNil(t, cmd)
	msg, ok := cmd().(CopiedMsg)
	require.True(t, ok)
	assert.False(t, msg.Shared)
}

func TestCopy_FailureIsSilent(t *testing.T) {
	f := newFixture(t)
	f.copier.err = errors.New("no clipboard")
	f.converse(t, "peace")
	f.press(tea.KeyTab)

	assert.Nil(t, f.rune('c'))
}

func TestActions_NotOfferedOnUserMessages(t *testing.T) {
	f := newFixture(t)
	f.converse(t, "joy")
	f.press(tea.KeyTab)
	f.press(tea.KeyUp)

	sel, ok := f.m.Selected()
	require.True(t, ok)
	require.False(t, sel.IsAI())

	f.rune('c')
	f.rune('r')
	f.rune('s')

	assert.Empty(t, f.copier.copied)
	assert.Empty(t, f.speaker.spoken)
	assert.Empty(t, f.sharer.shared)
}

func TestSpeakAndShare(t *testing.T) {
	f := newFixture(t)
	f.converse(t, "mercy")
	f.press(tea.KeyTab)

	f.rune('r')
	cmd := f.rune('s')

	require.Len(t, f.speaker.spoken, 1)
	require.Len(t, f.sharer.shared, 1)
	assert.Equal(t, responder.Citation, f.sharer.shared[0].Citation)
	require.NotNil(t, cmd)
	assert.True(t, cmd().(CopiedMsg).Shared)
}

func TestInsightKeys_AreMutuallyExclusive(t *testing.T) {
	f := newFixture(t)
	f.converse(t, "faith")
	f.press(tea.KeyTab)
	sel, _ := f.m.Selected()
	d := f.m.Disclosure(sel.ID)

	f.rune('1')
	assert.True(t, d.IsExpanded("C.S. Lewis"))
	assert.Contains(t, f.m.View(), "The profound nature")

	f.rune('2')
	assert.True(t, d.IsExpanded("Charles Spurgeon"))
	assert.False(t, d.IsExpanded("C.S. Lewis"))

	f.rune('2')
	_, open := d.Expanded()
	assert.False(t, open)

	// Out of range does nothing.
	f.rune('9')
	_, open = d.Expanded()
	assert.False(t, open)
}

func TestInsights_IndependentPerMessage(t *testing.T) {
	f := newFixture(t)
	f.converse(t, "first")
	f.converse(t, "second")

	msgs := f.mgr.Messages()
	require.Len(t, msgs, 4)

	f.press(tea.KeyTab)
	f.rune('1')

	assert.True(t, f.m.Disclosure(msgs[3].ID).IsExpanded("C.S. Lewis"))
	_, open := f.m.Disclosure(msgs[1].ID).Expanded()
	assert.False(t, open)
}

// =============================================================================
// STYLE TESTS
// =============================================================================

func TestSetStyle_SwapsThemeAndRenderer(t *testing.T) {
	f := newFixture(t)
	f.m.SetStyle(styles.NewTheme("dark"), true)
	require.NotNil(t, f.m.renderer)

	light := styles.NewTheme("light")
	f.m.SetStyle(light, false)

	assert.Same(t, light, f.m.Theme())
	assert.False(t, f.m.Theme().IsDark)
	assert.False(t, f.m.Markdown())
	assert.Nil(t, f.m.renderer)
	assert.NotEmpty(t, f.m.View())
}
