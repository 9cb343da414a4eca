// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the state of one conversation: the message list,
// the pending flag and the deferred reply.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/lampstand/internal/model"
	"github.com/jeranaias/lampstand/internal/responder"
)

// =============================================================================
// STATE
// =============================================================================

// State is the conversation state.
type State int

const (
	StateIdle    State = iota // Ready for input
	StatePending              // Waiting for the assistant reply
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	default:
		return "unknown"
	}
}

var (
	// ErrEmptyInput is returned when the submitted text is blank.
	ErrEmptyInput = errors.New("session: empty input")
	// ErrReplyPending is returned when a reply is already outstanding.
	ErrReplyPending = errors.New("session: reply pending")
	// ErrNotPending is returned when a reply arrives with nothing outstanding.
	ErrNotPending = errors.New("session: no reply pending")
	// ErrClosed is returned once the session has been closed.
	ErrClosed = errors.New("session: closed")
)

// =============================================================================
// EVENTS
// =============================================================================

// EventKind identifies what changed.
type EventKind int

const (
	EventSubmitted   EventKind = iota // A user message was appended
	EventReplied                      // An assistant message was appended
	EventReplyFailed                  // The responder failed; state is idle again
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventSubmitted:
		return "submitted"
	case EventReplied:
		return "replied"
	case EventReplyFailed:
		return "reply_failed"
	default:
		return "unknown"
	}
}

// Event describes one state transition.
type Event struct {
	Kind    EventKind
	Message model.Message
	State   State
	Err     error
}

// =============================================================================
// SESSION MANAGER
// =============================================================================

// Manager is the state container for one conversation.
// It is safe for concurrent use: the deferred reply runs on its own goroutine.
type Manager struct {
	mu sync.Mutex

	sessionID string
	startTime time.Time

	conv      *model.Conversation
	state     State
	prompt    string // text of the outstanding submission
	awaiting  bool   // a goroutine is running the responder
	responder responder.Responder
	life      *lifetime
	closed    bool
	now       func() time.Time

	onChange []func(Event)
}

// Config holds configuration for the session manager.
type Config struct {
	// Responder produces assistant replies (default: stub with DefaultDelay).
	Responder responder.Responder

	// Clock overrides time.Now, mainly for tests.
	Clock func() time.Time
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		Responder: responder.NewStub(responder.DefaultDelay),
		Clock:     time.Now,
	}
}

// NewManager creates a session whose deferred work ends when ctx is
// cancelled or Close is called, whichever comes first.
func NewManager(ctx context.Context, cfg Config) *Manager {
	if cfg.Responder == nil {
		cfg.Responder = responder.NewStub(responder.DefaultDelay)
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &Manager{
		sessionID: generateSessionID(),
		startTime: cfg.Clock(),
		conv:      model.NewConversation(),
		state:     StateIdle,
		responder: cfg.Responder,
		life:      newLifetime(ctx),
		now:       cfg.Clock,
	}
}

// =============================================================================
// ACCESSORS
// =============================================================================

// SessionID returns the session ID.
func (m *Manager) SessionID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessionID
}

// State returns the current state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// IsPending reports whether a reply is outstanding.
func (m *Manager) IsPending() bool {
	return m.State() == StatePending
}

// Messages returns a copy of the conversation in insertion order.
func (m *Manager) Messages() []model.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.conv.Messages()
}

// Len returns the number of messages.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.conv.Len()
}

// Summary describes the conversation as a history entry.
func (m *Manager) Summary() model.HistoryItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.conv.Summary()
}

// Closed reports whether the session has been torn down.
func (m *Manager) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isClosed()
}

// OnChange registers fn to be called after every state transition.
// Callbacks run outside the lock, on whichever goroutine made the change.
func (m *Manager) OnChange(fn func(Event)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = append(m.onChange, fn)
}

// =============================================================================
// TRANSITIONS
// =============================================================================

// Submit appends a user message and enters the pending state.
// Blank input and submissions while pending are rejected without any change.
// Submit does not start the reply; call Await.
func (m *Manager) Submit(text string) (model.Message, error) {
	if strings.TrimSpace(text) == "" {
		return model.Message{}, ErrEmptyInput
	}
	m.mu.Lock()
	if m.isClosed() {
		m.mu.Unlock()
		return model.Message{}, ErrClosed
	}
	if m.state == StatePending {
		m.mu.Unlock()
		return model.Message{}, ErrReplyPending
	}
	msg := model.NewUserMessage(text, m.now())
	m.conv.Append(msg)
	m.state = StatePending
	m.prompt = text
	callbacks := m.callbacks()
	m.mu.Unlock()

	notify(callbacks, Event{Kind: EventSubmitted, Message: msg, State: StatePending})
	return msg, nil
}

// Await runs the responder for the outstanding submission and delivers the
// reply. It blocks until the responder returns. If the session is closed in
// the meantime the reply is discarded and ErrClosed is returned.
func (m *Manager) Await() (model.Message, error) {
	m.mu.Lock()
	if m.state != StatePending {
		m.mu.Unlock()
		return model.Message{}, ErrNotPending
	}
	if m.awaiting {
		m.mu.Unlock()
		return model.Message{}, ErrReplyPending
	}
	m.awaiting = true
	prompt := m.prompt
	m.mu.Unlock()

	ctx := m.life.context()
	reply, err := m.responder.Reply(ctx, prompt)

	m.mu.Lock()
	m.awaiting = false
	closed := m.isClosed()
	m.mu.Unlock()

	if closed {
		return model.Message{}, ErrClosed
	}
	if err != nil {
		m.fail(err)
		return model.Message{}, err
	}
	return m.Deliver(reply)
}

// Deliver appends the assistant message for the outstanding submission and
// returns to idle. After Close it is a no-op returning ErrClosed.
func (m *Manager) Deliver(reply responder.Reply) (model.Message, error) {
	m.mu.Lock()
	if m.isClosed() {
		m.mu.Unlock()
		return model.Message{}, ErrClosed
	}
	if m.state != StatePending {
		m.mu.Unlock()
		return model.Message{}, ErrNotPending
	}
	msg := model.NewAIMessage(reply.Text, reply.Citation, reply.Insights, m.now())
	m.conv.Append(msg)
	m.state = StateIdle
	m.prompt = ""
	callbacks := m.callbacks()
	m.mu.Unlock()

	notify(callbacks, Event{Kind: EventReplied, Message: msg, State: StateIdle})
	return msg, nil
}

// fail returns the session to idle after a responder error.
func (m *Manager) fail(err error) {
	m.mu.Lock()
	if m.isClosed() || m.state != StatePending {
		m.mu.Unlock()
		return
	}
	m.state = StateIdle
	m.prompt = ""
	callbacks := m.callbacks()
	m.mu.Unlock()

	notify(callbacks, Event{Kind: EventReplyFailed, State: StateIdle, Err: err})
}

// Close tears the session down. An outstanding reply is cancelled and,
// if it still arrives, discarded. Safe to call multiple times.
func (m *Manager) Close() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	m.life.end()
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// isClosed reports whether Close was called or the parent context ended.
// Caller holds mu.
func (m *Manager) isClosed() bool {
	return m.closed || m.life.done()
}

// callbacks returns a snapshot of the registered callbacks. Caller holds mu.
func (m *Manager) callbacks() []func(Event) {
	if len(m.onChange) == 0 {
		return nil
	}
	out := make([]func(Event), len(m.onChange))
	copy(out, m.onChange)
	return out
}

func notify(callbacks []func(Event), ev Event) {
	for _, fn := range callbacks {
		fn(ev)
	}
}

// generateSessionID creates a unique session ID.
func generateSessionID() string {
	return "sess_" + uuid.NewString()
}

// =============================================================================
// SESSION STATUS
// =============================================================================

// Status is a point-in-time view of the session.
type Status struct {
	SessionID    string
	StartTime    time.Time
	Duration     time.Duration
	State        State
	MessageCount int
	Closed       bool
}

// GetStatus returns the current session status.
func (m *Manager) GetStatus() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Status{
		SessionID:    m.sessionID,
		StartTime:    m.startTime,
		Duration:     m.now().Sub(m.startTime),
		State:        m.state,
		MessageCount: m.conv.Len(),
		Closed:       m.isClosed(),
	}
}
