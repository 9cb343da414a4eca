// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package responder produces assistant replies for a conversation.
package responder

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jeranaias/lampstand/internal/model"
)

// DefaultDelay is how long the stub waits before replying.
const DefaultDelay = 2000 * time.Millisecond

// Reply is the content of one assistant message.
type Reply struct {
	Text     string
	Citation string
	Insights []model.Insight
}

// Responder answers a single prompt.
// Implementations must return ctx.Err() promptly once ctx is cancelled.
type Responder interface {
	Reply(ctx context.Context, prompt string) (Reply, error)
}

// Func adapts an ordinary function to the Responder interface.
type Func func(ctx context.Context, prompt string) (Reply, error)

// Reply calls f(ctx, prompt).
func (f Func) Reply(ctx context.Context, prompt string) (Reply, error) {
	return f(ctx, prompt)
}

// =============================================================================
// STUB RESPONDER
// =============================================================================

// Citation is the verse attached to every stub reply.
const Citation = `John 3:16 - "For God so loved the world that he gave his one and only Son, that whoever believes in him shall not perish but have eternal life."`

// stubInsights is the fixed commentary set returned for every prompt.
var stubInsights = []model.Insight{
	{
		Theologian: "C.S. Lewis",
		Commentary: "The profound nature of divine love is not merely emotional but sacrificial. This verse encapsulates the entire gospel message in its essence.",
	},
	{
		Theologian: "Charles Spurgeon",
		Commentary: `Here we see the breadth of God's love - "the world" - and the depth of His sacrifice. No greater love has ever been demonstrated.`,
	},
	{
		Theologian: "Martin Luther King Jr.",
		Commentary: "This verse reminds us that God's love transcends all boundaries and calls us to love without discrimination or prejudice.",
	},
}

// Stub is a deterministic stand-in for a real inference backend.
type Stub struct {
	delay atomic.Int64
}

// NewStub creates a stub that replies after delay.
// A negative delay is treated as zero.
func NewStub(delay time.Duration) *Stub {
	s := &Stub{}
	s.SetDelay(delay)
	return s
}

// Delay returns the current reply delay.
func (s *Stub) Delay() time.Duration {
	return time.Duration(s.delay.Load())
}

// SetDelay changes the delay for replies that have not started yet.
func (s *Stub) SetDelay(delay time.Duration) {
	s.delay.Store(int64(max(delay, 0)))
}

// Reply waits for the configured delay and echoes the prompt.
func (s *Stub) Reply(ctx context.Context, prompt string) (Reply, error) {
	if delay := s.Delay(); delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Reply{}, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return Reply{}, err
	}

	return Reply{
		Text:     fmt.Sprintf("Here's what I found about \"%s\". This relates to several biblical principles and teachings.", prompt),
		Citation: Citation,
		Insights: Insights(),
	}, nil
}

// Insights returns a copy of the fixed commentary set.
func Insights() []model.Insight {
	out := make([]model.Insight, len(stubInsights))
	copy(out, stubInsights)
	return out
}
