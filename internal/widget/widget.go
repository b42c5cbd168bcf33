// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/backend"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/logging"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/model"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/session"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/validate"
)

// =============================================================================
// BACKEND CONTRACT
// =============================================================================

// Backend is the subset of the chat service the widget talks to.
// *backend.Client implements it.
type Backend interface {
	CreateSession(ctx context.Context) (*backend.SessionResponse, error)
	CollectUserData(ctx context.Context, req backend.CollectRequest) (*backend.CollectResponse, error)
	Query(ctx context.Context, req backend.QueryRequest) (*backend.QueryResponse, error)
	TriggerContactIntent(ctx context.Context) (*backend.ContactIntentResponse, error)
	DownloadChat(ctx context.Context, sessionID string) (*backend.Transcript, error)
	EndSession(ctx context.Context) (*backend.EndSessionResponse, error)
}

// =============================================================================
// WIDGET
// =============================================================================

// Widget is one visitor's chat session. It is safe for concurrent use.
type Widget struct {
	mu sync.Mutex

	backend Backend
	session *session.Manager
	opts    Options
	log     zerolog.Logger

	transcript  *model.Transcript
	suggestions []string

	gate        GateState
	profile     model.UserProfile
	fieldErrors validate.FieldErrors
	submitting  bool

	// queries counts /query calls in flight; pending counts every outstanding
	// call and drives the typing indicator.
	queries int
	pending int

	lastIntent   *backend.Intent
	highInterest bool
	destroyed    bool
}

// New creates a widget in the Uninitialized state. Call Initialize to start
// the session.
func New(b Backend, opts Options) *Widget {
	opts.setDefaults()
	w := &Widget{
		backend:     b,
		opts:        opts,
		log:         logging.Component(opts.Logger, "widget"),
		transcript:  model.NewTranscript(),
		gate:        GateCollecting,
		fieldErrors: validate.NewFieldErrors(),
	}
	w.session = session.NewManager(b, session.Options{
		Recorder: opts.Recorder,
		OnChange: w.onSessionChange,
		Logger:   opts.Logger,
	})
	return w
}

func (w *Widget) onSessionChange(session.State) {
	w.deliver(batch{{Kind: EventStatus, Status: w.Status()}})
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// Initialize creates or resumes the session. Only the first call does any
// work; later calls return nil without touching the service.
//
// A returning visitor skips lead capture: the identity is adopted, prior
// turns are replayed (unless disabled) and a welcome-back message follows.
// On failure a connection notice is appended to the transcript and the
// error is returned; the widget stays usable but offline.
func (w *Widget) Initialize(ctx context.Context) error {
	if w.isDestroyed() {
		return ErrDestroyed
	}

	res, err := w.session.Initialize(ctx)
	if errors.Is(err, session.ErrAlreadyStarted) {
		return nil
	}

	var b batch
	w.mu.Lock()
	if err != nil {
		w.transcript.Append(model.NewBotMessage(MsgSessionFailed))
		b.add(Event{Kind: EventMessages, Messages: w.transcript.Messages()})
		w.mu.Unlock()
		w.deliver(b)
		return fmt.Errorf("initialize session: %w", err)
	}

	if res.Returning {
		w.profile = res.Identity
		w.gate = GateSubmitted
		w.fieldErrors = validate.NewFieldErrors()

		if !w.opts.SkipHistoryReplay {
			w.transcript.Append(model.ReplayMessages(res.History)...)
		}
		w.transcript.Append(model.NewBotMessage(welcomeBack(res.Identity)))

		b.add(Event{Kind: EventGate, Gate: w.gate})
		b.add(Event{Kind: EventMessages, Messages: w.transcript.Messages()})
		w.log.Info().Int("history", len(res.History)).Msg("returning visitor resumed")
	}
	w.mu.Unlock()

	w.deliver(b)
	return nil
}

func welcomeBack(p model.UserProfile) string {
	first := p.FirstName()
	if first == "" {
		first = "there"
	}
	return fmt.Sprintf("🌟 Welcome back, %s!\nHow can I help you today?", first)
}

func greeting(p model.UserProfile) string {
	return fmt.Sprintf("🌟 Great to meet you, %s!\nWhat would you like to know today?", p.FirstName())
}

// =============================================================================
// SNAPSHOTS
// =============================================================================

// Messages returns a copy of the transcript in display order.
func (w *Widget) Messages() []model.Message {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.transcript.Messages()
}

// Suggestions returns a copy of the current follow-up questions.
func (w *Widget) Suggestions() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return cloneStrings(w.suggestions)
}

// FallbackPrompt returns the prompt shown in place of an empty suggestion
// list, once the visitor may chat.
func (w *Widget) FallbackPrompt() (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.suggestions) > 0 || w.opts.FallbackPrompt == "" || w.gate != GateSubmitted {
		return "", false
	}
	if !w.transcript.HasBotMessage() {
		return "", false
	}
	return w.opts.FallbackPrompt, true
}

// Gate returns the lead-capture state.
func (w *Widget) Gate() GateState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.gate
}

// Profile returns the lead details as currently entered.
func (w *Widget) Profile() model.UserProfile {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.profile
}

// FieldErrors returns a copy of the per-field error copy.
func (w *Widget) FieldErrors() validate.FieldErrors {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.fieldErrors.Clone()
}

// IsTyping reports whether a bot reply is pending.
func (w *Widget) IsTyping() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pending > 0
}

// LastIntent returns the intent attached to the most recent answer, if any.
func (w *Widget) LastIntent() *backend.Intent {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.lastIntent == nil {
		return nil
	}
	in := *w.lastIntent
	return &in
}

// HighInterest reports whether the service flagged the visitor for handoff.
func (w *Widget) HighInterest() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.highInterest
}

// SessionID returns the session id, or "" before the handshake succeeds.
func (w *Widget) SessionID() string {
	return w.session.SessionID()
}

// Organization returns the configured provider name.
func (w *Widget) Organization() string {
	return w.opts.Organization
}

// CanChat reports whether the composer is enabled.
func (w *Widget) CanChat() bool {
	if !w.session.IsReady() {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.gate == GateSubmitted && !w.destroyed
}

// Status is the header/banner view of the widget.
type Status struct {
	State        session.State
	Connectivity session.Connectivity
	SessionID    string
	Gate         GateState
	Typing       bool
	// ConnectionBanner is set when there is a conversation on screen but no
	// live session behind it.
	ConnectionBanner bool
}

// Label returns the header text for the connectivity indicator.
func (s Status) Label() string {
	return s.Connectivity.Label()
}

// Status returns a snapshot for the header and connection banner.
func (w *Widget) Status() Status {
	ss := w.session.Status()

	w.mu.Lock()
	defer w.mu.Unlock()
	return Status{
		State:        ss.State,
		Connectivity: ss.Connectivity,
		SessionID:    ss.SessionID,
		Gate:         w.gate,
		Typing:       w.pending > 0,
		ConnectionBanner: ss.State != session.StateReady &&
			ss.State != session.StateConnecting &&
			!w.transcript.IsEmpty(),
	}
}

// =============================================================================
// TEARDOWN
// =============================================================================

// Close marks the widget destroyed and, when configured, ends the session on
// the service. Failures to end the session are logged and returned.
func (w *Widget) Close(ctx context.Context) error {
	w.mu.Lock()
	if w.destroyed {
		w.mu.Unlock()
		return nil
	}
	w.destroyed = true
	w.mu.Unlock()

	if !w.opts.EndSessionOnClose || !w.session.IsReady() {
		return nil
	}
	if _, err := w.backend.EndSession(ctx); err != nil {
		w.log.Warn().Err(err).Msg("end session failed")
		return fmt.Errorf("end session: %w", err)
	}
	w.log.Info().Str("session_id", w.session.SessionID()).Msg("session ended")
	return nil
}

func (w *Widget) isDestroyed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.destroyed
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
