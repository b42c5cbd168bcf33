// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/backend"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/logging"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/model"
)

// ErrAlreadyStarted is returned by Initialize after the first call.
var ErrAlreadyStarted = errors.New("session: initialization already started")

// =============================================================================
// STATE
// =============================================================================

// State is the lifecycle state of a session.
type State int

const (
	StateUninitialized State = iota
	StateConnecting
	StateReady
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateConnecting:
		return "connecting"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Connectivity is the three-valued indicator shown to the visitor.
type Connectivity string

const (
	Online          Connectivity = "online"
	ConnectingState Connectivity = "connecting"
	Offline         Connectivity = "offline"
)

// Label returns the status text for the indicator.
func (c Connectivity) Label() string {
	switch c {
	case Online:
		return "Online"
	case ConnectingState:
		return "Connecting..."
	default:
		return "Offline"
	}
}

// Connectivity derives the indicator from the state.
func (s State) Connectivity() Connectivity {
	switch s {
	case StateReady:
		return Online
	case StateConnecting:
		return ConnectingState
	default:
		return Offline
	}
}

// =============================================================================
// MANAGER
// =============================================================================

// Creator mints or resumes a session on the service.
type Creator interface {
	CreateSession(ctx context.Context) (*backend.SessionResponse, error)
}

// IDRecorder keeps the last session id for debugging and export.
type IDRecorder interface {
	RecordSessionID(id string) error
}

// Options configures a Manager.
type Options struct {
	// Recorder, when set, receives the session id after a successful handshake.
	Recorder IDRecorder

	// OnChange is called after every state transition, outside the lock.
	OnChange func(State)

	Logger zerolog.Logger
}

// Result is what a successful handshake learned about the visitor.
type Result struct {
	SessionID string
	// Returning is true when the service already holds this visitor's details.
	Returning bool
	Identity  model.UserProfile
	History   []model.ConversationTurn
}

// Manager tracks the session handshake. It is safe for concurrent use.
type Manager struct {
	mu sync.Mutex

	creator  Creator
	recorder IDRecorder
	onChange func(State)
	log      zerolog.Logger

	state     State
	sessionID string
	returning bool
	identity  *model.UserProfile
	lastErr   error

	startedAt time.Time
	readyAt   time.Time
}

// NewManager creates a manager in the Uninitialized state.
func NewManager(creator Creator, opts Options) *Manager {
	return &Manager{
		creator:  creator,
		recorder: opts.Recorder,
		onChange: opts.OnChange,
		log:      logging.Component(opts.Logger, "session"),
		state:    StateUninitialized,
	}
}

// =============================================================================
// HANDSHAKE
// =============================================================================

// Initialize creates or resumes the session. Only the first call reaches the
// service; every later call returns ErrAlreadyStarted. On failure the manager
// stays Failed and the service error is returned.
func (m *Manager) Initialize(ctx context.Context) (*Result, error) {
	m.mu.Lock()
	if m.state != StateUninitialized {
		state := m.state
		m.mu.Unlock()
		m.log.Debug().Str("state", state.String()).Msg("initialize ignored")
		return nil, ErrAlreadyStarted
	}
	m.state = StateConnecting
	m.startedAt = time.Now()
	m.mu.Unlock()
	m.notify(StateConnecting)

	resp, err := m.creator.CreateSession(ctx)
	if err == nil && resp.SessionID == "" {
		err = &backend.ClientError{Type: backend.ErrTypeDecode, Message: "session response has no session_id"}
	}
	if err != nil {
		m.mu.Lock()
		m.state = StateFailed
		m.lastErr = err
		m.mu.Unlock()
		m.log.Warn().Err(err).Msg("session handshake failed")
		m.notify(StateFailed)
		return nil, err
	}

	res := &Result{
		SessionID: resp.SessionID,
		Returning: resp.Returning(),
		History:   resp.ChatHistory,
	}
	if res.Returning {
		res.Identity = resp.UserData.Profile()
	}

	m.mu.Lock()
	m.state = StateReady
	m.sessionID = res.SessionID
	m.returning = res.Returning
	if res.Returning {
		id := res.Identity
		m.identity = &id
	}
	m.readyAt = time.Now()
	m.mu.Unlock()

	if m.recorder != nil {
		if err := m.recorder.RecordSessionID(res.SessionID); err != nil {
			m.log.Warn().Err(err).Msg("could not record session id")
		}
	}

	m.log.Info().
		Str("session_id", res.SessionID).
		Bool("returning", res.Returning).
		Int("history", len(res.History)).
		Msg("session ready")
	m.notify(StateReady)
	return res, nil
}

func (m *Manager) notify(s State) {
	if m.onChange != nil {
		m.onChange(s)
	}
}

// =============================================================================
// SESSION STATE
// =============================================================================

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Connectivity returns the derived indicator.
func (m *Manager) Connectivity() Connectivity {
	return m.State().Connectivity()
}

// IsReady reports whether the handshake succeeded.
func (m *Manager) IsReady() bool {
	return m.State() == StateReady
}

// IsConnecting reports whether the handshake is in flight.
func (m *Manager) IsConnecting() bool {
	return m.State() == StateConnecting
}

// SessionID returns the service-minted id, or "" before the handshake succeeds.
func (m *Manager) SessionID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessionID
}

// Identity returns the profile the service remembered, if any.
func (m *Manager) Identity() (model.UserProfile, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.identity == nil {
		return model.UserProfile{}, false
	}
	return *m.identity, true
}

// Err returns the handshake failure, if any.
func (m *Manager) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// Status is a point-in-time view of the manager.
type Status struct {
	State        State
	Connectivity Connectivity
	SessionID    string
	Returning    bool
	// Uptime is how long the session has been ready; zero otherwise.
	Uptime time.Duration
}

// Status returns a snapshot of the manager.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := Status{
		State:        m.state,
		Connectivity: m.state.Connectivity(),
		SessionID:    m.sessionID,
		Returning:    m.returning,
	}
	if m.state == StateReady {
		st.Uptime = time.Since(m.readyAt)
	}
	return st
}
