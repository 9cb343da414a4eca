// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package responder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStub_ReplyEchoesPrompt(t *testing.T) {
	s := NewStub(0)

	reply, err := s.Reply(context.Background(), "grace")
	require.NoError(t, err)

	assert.Equal(t, `Here's what I found about "grace". This relates to several biblical principles and teachings.`, reply.Text)
	assert.Equal(t, Citation, reply.Citation)
	require.Len(t, reply.Insights, 3)
	assert.Equal(t, "C.S. Lewis", reply.Insights[0].Theologian)
	assert.Equal(t, "Charles Spurgeon", reply.Insights[1].Theologian)
	assert.Equal(t, "Martin Luther King Jr.", reply.Insights[2].Theologian)
}

func TestStub_InsightsAreFixedRegardlessOfInput(t *testing.T) {
	s := NewStub(0)

	a, err := s.Reply(context.Background(), "faith")
	require.NoError(t, err)
	b, err := s.Reply(context.Background(), "something entirely different")
	require.NoError(t, err)

	assert.Equal(t, a.Insights, b.Insights)
}

func TestStub_WaitsForDelay(t *testing.T) {
	s := NewStub(30 * time.Millisecond)

	start := time.Now()
	_, err := s.Reply(context.Background(), "hope")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestStub_CancelledContext(t *testing.T) {
	s := NewStub(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := s.Reply(ctx, "patience")
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestStub_ZeroDelayHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStub(0).Reply(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewStub_NegativeDelay(t *testing.T) {
	assert.Equal(t, time.Duration(0), NewStub(-time.Second).Delay())
}

func TestStub_SetDelayAppliesToNextReply(t *testing.T) {
	s := NewStub(time.Hour)
	s.SetDelay(0)
	assert.Equal(t, time.Duration(0), s.Delay())

	_, err := s.Reply(context.Background(), "mercy")
	require.NoError(t, err)
}

func TestInsights_ReturnsCopy(t *testing.T) {
	a := Insights()
	a[0].Theologian = "changed"
	assert.Equal(t, "C.S. Lewis", Insights()[0].Theologian)
}

func TestFunc_Adapter(t *testing.T) {
	var r Responder = Func(func(ctx context.Context, prompt string) (Reply, error) {
		return Reply{Text: "echo " + prompt}, nil
	})

	reply, err := r.Reply(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "echo x", reply.Text)
}
