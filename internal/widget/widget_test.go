// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/backend"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/model"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/session"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/validate"
)

func newWidget(t *testing.T, fb *fakeBackend, opts Options) (*Widget, *recorder) {
	t.Helper()
	rec := &recorder{}
	opts.OnEvent = rec.record
	return New(fb, opts), rec
}

// readyWidget returns a widget whose visitor has already passed the gate.
func readyWidget(t *testing.T, fb *fakeBackend, opts Options) (*Widget, *recorder) {
	t.Helper()
	w, rec := newWidget(t, fb, opts)
	require.NoError(t, w.Initialize(context.Background()))
	require.NoError(t, w.SubmitProfile(context.Background(), validProfile()))
	return w, rec
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func TestInitialize_NewVisitor(t *testing.T) {
	fb := newFakeBackend()
	w, _ := newWidget(t, fb, Options{})

	require.NoError(t, w.Initialize(context.Background()))

	assert.Equal(t, GateCollecting, w.Gate())
	assert.Empty(t, w.Messages())
	assert.Equal(t, "sess-1", w.SessionID())
	assert.Equal(t, "Online", w.Status().Label())
	assert.False(t, w.CanChat())
}

func TestInitialize_ReturningVisitor(t *testing.T) {
	fb := newFakeBackend()
	fb.session = &backend.SessionResponse{
		SessionID:         "S1",
		UserDataCollected: true,
		UserData:          &backend.UserData{UserName: "Jane Doe", Email: "jane@x.com", Phone: "9876543210", Organization: "Acme"},
		ChatHistory: []model.ConversationTurn{
			{Role: "user", Text: "hi"},
			{Role: "bot", Text: "hello"},
		},
	}
	w, _ := newWidget(t, fb, Options{})

	require.NoError(t, w.Initialize(context.Background()))

	assert.Equal(t, GateSubmitted, w.Gate())
	assert.Equal(t, "Jane Doe", w.Profile().Name)

	msgs := w.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "history-1", msgs[0].ID)
	assert.True(t, msgs[0].IsUser())
	assert.Equal(t, "hello", msgs[1].Text)
	assert.Equal(t, "🌟 Welcome back, Jane!\nHow can I help you today?", msgs[2].Text)
	assert.True(t, w.CanChat())
}

func TestInitialize_ReturningVisitorWithoutName(t *testing.T) {
	fb := newFakeBackend()
	fb.session = &backend.SessionResponse{
		SessionID:         "S1",
		UserDataCollected: true,
		UserData:          &backend.UserData{},
	}
	w, _ := newWidget(t, fb, Options{SkipHistoryReplay: true})

	require.NoError(t, w.Initialize(context.Background()))

	assert.Equal(t, []string{"🌟 Welcome back, there!\nHow can I help you today?"}, texts(w.Messages()))
}

func TestInitialize_CollectedWithoutUserDataIsNew(t *testing.T) {
	fb := newFakeBackend()
	fb.session = &backend.SessionResponse{SessionID: "S1", UserDataCollected: true}
	w, _ := newWidget(t, fb, Options{})

	require.NoError(t, w.Initialize(context.Background()))
	assert.Equal(t, GateCollecting, w.Gate())
}

func TestInitialize_Failure(t *testing.T) {
	fb := newFakeBackend()
	fb.sessionErr = &backend.ClientError{Type: backend.ErrTypeConnection, Message: "refused"}
	w, rec := newWidget(t, fb, Options{})

	err := w.Initialize(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, backend.ErrConnection)

	assert.Equal(t, []string{MsgSessionFailed}, texts(w.Messages()))
	st := w.Status()
	assert.Equal(t, session.StateFailed, st.State)
	assert.Equal(t, "Offline", st.Label())
	assert.True(t, st.ConnectionBanner)
	assert.Contains(t, rec.kinds(), EventStatus)

	// No automatic retry.
	assert.NoError(t, w.Initialize(context.Background()))
	assert.Equal(t, 1, fb.sessionCalls)
}

func TestInitialize_Idempotent(t *testing.T) {
	fb := newFakeBackend()
	w, _ := newWidget(t, fb, Options{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = w.Initialize(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, fb.sessionCalls)
}

// =============================================================================
// LEAD CAPTURE
// =============================================================================

func TestSetField_Validation(t *testing.T) {
	w, rec := newWidget(t, newFakeBackend(), Options{})

	msg, err := w.SetField(validate.FieldEmail, "not-an-email")
	require.NoError(t, err)
	assert.Equal(t, validate.MsgInvalidEmail, msg)
	assert.Equal(t, validate.MsgInvalidEmail, w.FieldErrors()[validate.FieldEmail])

	msg, err = w.SetField(validate.FieldEmail, "a@b.co")
	require.NoError(t, err)
	assert.Empty(t, msg)
	assert.Contains(t, rec.kinds(), EventForm)
}

func TestBlur_RevalidatesEmptyField(t *testing.T) {
	w, _ := newWidget(t, newFakeBackend(), Options{})
	assert.Equal(t, validate.MsgInvalidPhone, w.Blur(validate.FieldPhone))
}

func TestSubmit_Success(t *testing.T) {
	fb := newFakeBackend()
	fb.collect = &backend.CollectResponse{
		Message:     "stored",
		ChatHistory: []model.ConversationTurn{{Role: "user", Text: "earlier"}},
	}
	w, rec := newWidget(t, fb, Options{})
	require.NoError(t, w.Initialize(context.Background()))

	require.NoError(t, w.SubmitProfile(context.Background(), validProfile()))

	require.Len(t, fb.collectReqs, 1)
	assert.Equal(t, backend.CollectRequest{
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		Phone:        "919876543210",
		Organization: "Acme Corp",
	}, fb.collectReqs[0])

	assert.Equal(t, GateSubmitted, w.Gate())
	assert.Equal(t, []string{
		"earlier",
		"🌟 Great to meet you, Jane!\nWhat would you like to know today?",
	}, texts(w.Messages()))
	assert.True(t, w.CanChat())
	assert.Contains(t, rec.kinds(), EventGate)

	_, err := w.SetField(validate.FieldName, "Other")
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.ErrorIs(t, w.Submit(context.Background()), ErrAlreadySubmitted)
}

func TestSubmit_ServiceRejects(t *testing.T) {
	fb := newFakeBackend()
	fb.collectErr = &backend.ClientError{Type: backend.ErrTypeStatus, Status: 400, Message: "Invalid email"}
	w, _ := newWidget(t, fb, Options{})
	require.NoError(t, w.Initialize(context.Background()))

	err := w.SubmitProfile(context.Background(), validProfile())
	require.Error(t, err)
	assert.ErrorIs(t, err, backend.ErrStatus)

	assert.Equal(t, GateCollecting, w.Gate())
	assert.Equal(t, validProfile(), w.Profile())
	assert.Equal(t,
		[]string{"Sorry, there was an error submitting your information: Invalid email"},
		texts(w.Messages()))
	assert.True(t, w.CanSubmit())
}

func TestSubmit_InvalidForm(t *testing.T) {
	fb := newFakeBackend()
	w, _ := newWidget(t, fb, Options{})
	require.NoError(t, w.Initialize(context.Background()))

	_, _ = w.SetField(validate.FieldName, "Jane")

	assert.ErrorIs(t, w.Submit(context.Background()), ErrFormInvalid)
	errs := w.FieldErrors()
	assert.Empty(t, errs[validate.FieldName])
	assert.Equal(t, validate.MsgInvalidEmail, errs[validate.FieldEmail])
	assert.Empty(t, fb.collectReqs)
	assert.False(t, w.CanSubmit())
}

func TestSubmit_SessionNotReady(t *testing.T) {
	fb := newFakeBackend()
	fb.sessionErr = errBoom
	w, rec := newWidget(t, fb, Options{})
	_ = w.Initialize(context.Background())

	err := w.SubmitProfile(context.Background(), validProfile())
	assert.ErrorIs(t, err, ErrSessionNotReady)
	assert.Empty(t, rec.notices())
	assert.Empty(t, fb.collectReqs)

	msgs := w.Messages()
	require.NotEmpty(t, msgs)
	assert.Equal(t, MsgSessionNotReady, msgs[len(msgs)-1].Text)
	assert.False(t, msgs[len(msgs)-1].IsUser())
}

func TestSubmit_SessionNotReadyWinsOverInvalidForm(t *testing.T) {
	fb := newFakeBackend()
	fb.sessionErr = errBoom
	w, _ := newWidget(t, fb, Options{})
	_ = w.Initialize(context.Background())
	before := len(w.Messages())

	err := w.SubmitProfile(context.Background(), model.UserProfile{Name: "J4ne"})
	assert.ErrorIs(t, err, ErrSessionNotReady)
	assert.Empty(t, fb.collectReqs)

	msgs := w.Messages()
	require.Len(t, msgs, before+1)
	assert.Equal(t, MsgSessionNotReady, msgs[before].Text)
	assert.Equal(t, GateCollecting, w.Gate())
}

// =============================================================================
// QUERIES
// =============================================================================

func TestSubmitQuery_Success(t *testing.T) {
	fb := newFakeBackend()
	fb.query = func(req backend.QueryRequest) (*backend.QueryResponse, error) {
		return &backend.QueryResponse{
			Answer:           "EPR means...",
			SimilarQuestions: []string{"What is PRO?", "Connect me to ReCircle"},
		}, nil
	}
	w, rec := readyWidget(t, fb, Options{})
	before := len(w.Messages())

	require.NoError(t, w.SubmitQuery(context.Background(), "  What is EPR?  "))

	msgs := w.Messages()
	require.Len(t, msgs, before+2)
	assert.Equal(t, "What is EPR?", msgs[before].Text)
	assert.True(t, msgs[before].IsUser())
	assert.Equal(t, "EPR means...", msgs[before+1].Text)
	assert.Equal(t, []string{"What is PRO?", "Connect me to ReCircle"}, w.Suggestions())
	assert.False(t, w.IsTyping())

	// Prior mode: the new question is not part of the history.
	reqs := fb.queries()
	require.Len(t, reqs, 1)
	assert.Equal(t, "What is EPR?", reqs[0].Text)
	assert.Len(t, reqs[0].History, before)

	kinds := rec.kinds()
	assert.Contains(t, kinds, EventTyping)
	assert.Contains(t, kinds, EventSuggestions)
}

func TestSubmitQuery_InclusiveHistory(t *testing.T) {
	fb := newFakeBackend()
	w, _ := readyWidget(t, fb, Options{HistoryMode: HistoryInclusive})
	before := len(w.Messages())

	require.NoError(t, w.SubmitQuery(context.Background(), "q"))

	req := fb.queries()[0]
	require.Len(t, req.History, before+1)
	assert.Equal(t, model.ConversationTurn{Role: "user", Text: "q"}, req.History[before])
}

func TestSubmitQuery_Failure(t *testing.T) {
	fb := newFakeBackend()
	calls := 0
	fb.query = func(req backend.QueryRequest) (*backend.QueryResponse, error) {
		calls++
		if calls == 1 {
			return &backend.QueryResponse{Answer: "a", SimilarQuestions: []string{"s1"}}, nil
		}
		return nil, &backend.ClientError{Type: backend.ErrTypeStatus, Status: 500, Message: "HTTP 500"}
	}
	w, _ := readyWidget(t, fb, Options{})
	require.NoError(t, w.SubmitQuery(context.Background(), "first"))
	require.NotEmpty(t, w.Suggestions())

	err := w.SubmitQuery(context.Background(), "second")
	assert.ErrorIs(t, err, backend.ErrStatus)

	msgs := w.Messages()
	n := len(msgs)
	assert.Equal(t, "second", msgs[n-2].Text)
	assert.Equal(t, MsgQueryError, msgs[n-1].Text)
	assert.Empty(t, w.Suggestions())
	assert.False(t, w.IsTyping())
}

func TestSubmitQuery_MissingAnswer(t *testing.T) {
	fb := newFakeBackend()
	fb.query = func(req backend.QueryRequest) (*backend.QueryResponse, error) {
		return &backend.QueryResponse{}, nil
	}
	w, _ := readyWidget(t, fb, Options{})

	require.NoError(t, w.SubmitQuery(context.Background(), "q"))

	msgs := w.Messages()
	assert.Equal(t, MsgMissingAnswer, msgs[len(msgs)-1].Text)
}

func TestSubmitQuery_EmptySuggestionsPolicy(t *testing.T) {
	tests := []struct {
		name   string
		policy EmptySuggestions
		want   []string
	}{
		{"clear", EmptyClear, nil},
		{"preserve", EmptyPreserve, []string{"s1"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fb := newFakeBackend()
			first := true
			fb.query = func(req backend.QueryRequest) (*backend.QueryResponse, error) {
				if first {
					first = false
					return &backend.QueryResponse{Answer: "a", SimilarQuestions: []string{"s1"}}, nil
				}
				return &backend.QueryResponse{Answer: "b"}, nil
			}
			w, _ := readyWidget(t, fb, Options{EmptySuggestions: tc.policy})

			require.NoError(t, w.SubmitQuery(context.Background(), "one"))
			require.NoError(t, w.SubmitQuery(context.Background(), "two"))

			assert.Equal(t, tc.want, w.Suggestions())
		})
	}
}

func TestSubmitQuery_Preconditions(t *testing.T) {
	fb := newFakeBackend()
	w, rec := newWidget(t, fb, Options{})

	assert.ErrorIs(t, w.SubmitQuery(context.Background(), "q"), ErrNotSubmitted)

	require.NoError(t, w.Initialize(context.Background()))
	assert.ErrorIs(t, w.SubmitQuery(context.Background(), "q"), ErrNotSubmitted)

	require.NoError(t, w.SubmitProfile(context.Background(), validProfile()))
	before := len(w.Messages())
	events := len(rec.kinds())
	assert.ErrorIs(t, w.SubmitQuery(context.Background(), "   "), ErrEmptyQuery)

	assert.Len(t, w.Messages(), before)
	assert.Len(t, rec.kinds(), events)
	assert.Empty(t, fb.queries())
}

func TestSubmitQuery_OverlapReject(t *testing.T) {
	fb := newFakeBackend()
	w, _ := readyWidget(t, fb, Options{})
	fb.mu.Lock()
	fb.queryGate = make(chan struct{})
	fb.mu.Unlock()

	done := make(chan error, 1)
	go func() { done <- w.SubmitQuery(context.Background(), "slow") }()

	require.Eventually(t, w.IsTyping, time.Second, 5*time.Millisecond)
	assert.ErrorIs(t, w.SubmitQuery(context.Background(), "fast"), ErrBusy)

	close(fb.queryGate)
	require.NoError(t, <-done)
	assert.Len(t, fb.queries(), 1)
	assert.False(t, w.IsTyping())
}

func TestSubmitQuery_OverlapAllow(t *testing.T) {
	fb := newFakeBackend()
	w, _ := readyWidget(t, fb, Options{OverlapPolicy: OverlapAllow})
	gate := make(chan struct{})
	fb.mu.Lock()
	fb.queryGate = gate
	fb.mu.Unlock()

	var wg sync.WaitGroup
	for _, q := range []string{"a", "b"} {
		wg.Add(1)
		go func(q string) {
			defer wg.Done()
			assert.NoError(t, w.SubmitQuery(context.Background(), q))
		}(q)
	}
	require.Eventually(t, func() bool { return len(fb.queries()) == 2 }, time.Second, 5*time.Millisecond)
	close(gate)
	wg.Wait()

	assert.False(t, w.IsTyping())
}

func TestSubmitQuery_HighInterest(t *testing.T) {
	fb := newFakeBackend()
	fb.query = func(req backend.QueryRequest) (*backend.QueryResponse, error) {
		return &backend.QueryResponse{
			Answer: "Pricing depends on volume.",
			Intent: &backend.Intent{Type: "pricing", Confidence: 0.9, ShouldConnect: true},
		}, nil
	}
	w, rec := readyWidget(t, fb, Options{})

	require.NoError(t, w.SubmitQuery(context.Background(), "How much?"))

	assert.True(t, w.HighInterest())
	require.NotNil(t, w.LastIntent())
	assert.Equal(t, "pricing", w.LastIntent().Type)
	assert.Contains(t, rec.kinds(), EventHighInterest)
}

// =============================================================================
// SUGGESTIONS
// =============================================================================

func TestClickSuggestion_ContactIntent(t *testing.T) {
	fb := newFakeBackend()
	fb.query = func(req backend.QueryRequest) (*backend.QueryResponse, error) {
		return &backend.QueryResponse{Answer: "a", SimilarQuestions: []string{"x", "Connect me to ReCircle"}}, nil
	}
	w, _ := readyWidget(t, fb, Options{})
	require.NoError(t, w.SubmitQuery(context.Background(), "q"))

	require.NoError(t, w.ClickSuggestion(context.Background(), "Connect me to ReCircle"))

	assert.Equal(t, 1, fb.contactCalls)
	assert.Len(t, fb.queries(), 1)
	msgs := w.Messages()
	n := len(msgs)
	assert.Equal(t, "Connect me to ReCircle", msgs[n-2].Text)
	assert.True(t, msgs[n-2].IsUser())
	assert.Equal(t, "Our team will reach out.", msgs[n-1].Text)
	assert.Equal(t, []string{"x", "Connect me to ReCircle"}, w.Suggestions())
}

func TestClickSuggestion_ContactIntentFailure(t *testing.T) {
	fb := newFakeBackend()
	fb.contactErr = errBoom
	w, _ := readyWidget(t, fb, Options{})

	err := w.ClickSuggestion(context.Background(), "please CONNECT ME TO recircle")
	assert.ErrorIs(t, err, errBoom)

	msgs := w.Messages()
	assert.Equal(t, MsgContactError, msgs[len(msgs)-1].Text)
}

func TestClickSuggestion_PhraseNeedsOrganization(t *testing.T) {
	fb := newFakeBackend()
	w, _ := readyWidget(t, fb, Options{Organization: "Acme"})

	require.NoError(t, w.ClickSuggestion(context.Background(), "How do I connect me to the CPCB portal?"))
	assert.Zero(t, fb.contactCalls)
	require.Len(t, fb.queries(), 1)

	require.NoError(t, w.ClickSuggestion(context.Background(), "Connect me to Acme"))
	assert.Equal(t, 1, fb.contactCalls)
	assert.Len(t, fb.queries(), 1)
}

func TestClickSuggestion_RegularQuestion(t *testing.T) {
	fb := newFakeBackend()
	w, _ := readyWidget(t, fb, Options{})

	require.NoError(t, w.ClickSuggestion(context.Background(), "What is PRO?"))

	assert.Zero(t, fb.contactCalls)
	require.Len(t, fb.queries(), 1)
	assert.Equal(t, "What is PRO?", fb.queries()[0].Text)
}

func TestFallbackPrompt(t *testing.T) {
	fb := newFakeBackend()
	w, _ := newWidget(t, fb, Options{FallbackPrompt: "Ask me anything!"})
	require.NoError(t, w.Initialize(context.Background()))

	_, ok := w.FallbackPrompt()
	assert.False(t, ok)

	require.NoError(t, w.SubmitProfile(context.Background(), validProfile()))
	prompt, ok := w.FallbackPrompt()
	assert.True(t, ok)
	assert.Equal(t, "Ask me anything!", prompt)
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

func TestDownloadTranscript(t *testing.T) {
	fb := newFakeBackend()
	fb.transcript = &backend.Transcript{Data: []byte("%PDF-1.4 data"), ContentType: "application/pdf"}
	saver := &memSaver{}
	w, rec := readyWidget(t, fb, Options{Saver: saver})
	before := w.Messages()

	path, err := w.DownloadTranscript(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/downloads/Jane_chat_transcript.pdf", path)
	assert.Equal(t, []string{"sess-1"}, fb.downloadedIDs)
	assert.Equal(t, "application/pdf", saver.ctype)
	assert.Equal(t, before, w.Messages())
	assert.Contains(t, rec.notices(), "Transcript saved to /downloads/Jane_chat_transcript.pdf")
}

func TestDownloadTranscript_NoSession(t *testing.T) {
	fb := newFakeBackend()
	w, rec := newWidget(t, fb, Options{Saver: &memSaver{}})

	_, err := w.DownloadTranscript(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Equal(t, []string{MsgNoSession}, rec.notices())
	assert.Empty(t, fb.downloadedIDs)
}

func TestDownloadTranscript_Failure(t *testing.T) {
	fb := newFakeBackend()
	fb.transcriptErr = &backend.ClientError{Type: backend.ErrTypeStatus, Status: 404, Message: "Session not found"}
	w, rec := readyWidget(t, fb, Options{Saver: &memSaver{}})
	before := w.Messages()

	_, err := w.DownloadTranscript(context.Background())
	assert.ErrorIs(t, err, backend.ErrStatus)
	assert.Equal(t, []string{MsgDownloadFailed}, rec.notices())
	assert.Equal(t, before, w.Messages())
}

func TestExport_Markdown(t *testing.T) {
	w, _ := readyWidget(t, newFakeBackend(), Options{})
	require.NoError(t, w.SubmitQuery(context.Background(), "What is EPR?"))

	doc := w.Document()
	assert.Equal(t, "sess-1", doc.SessionID)
	assert.Equal(t, "ReCircle", doc.Organization)
	assert.Len(t, doc.Messages, 3)
	assert.Equal(t, "Chat with Jane", doc.Title())
}

// =============================================================================
// FACTORY
// =============================================================================

func TestFactory_SingleInstance(t *testing.T) {
	f := NewFactory()
	fb := newFakeBackend()

	w, err := f.Init(context.Background(), fb, Options{})
	require.NoError(t, err)
	require.NotNil(t, w)

	_, err = f.Init(context.Background(), fb, Options{})
	assert.ErrorIs(t, err, ErrAlreadyInitialized)
	assert.Equal(t, 1, fb.sessionCalls)

	cur, ok := f.Current()
	assert.True(t, ok)
	assert.Same(t, w, cur)

	require.NoError(t, f.Destroy(context.Background()))
	_, ok = f.Current()
	assert.False(t, ok)
	assert.ErrorIs(t, w.SubmitQuery(context.Background(), "q"), ErrDestroyed)

	_, err = f.Init(context.Background(), newFakeBackend(), Options{})
	assert.NoError(t, err)
}

func TestFactory_SessionFailureStillMounts(t *testing.T) {
	f := NewFactory()
	fb := newFakeBackend()
	fb.sessionErr = errBoom

	w, err := f.Init(context.Background(), fb, Options{})
	assert.ErrorIs(t, err, errBoom)
	require.NotNil(t, w)
	assert.True(t, w.Status().ConnectionBanner)
}

func TestClose_EndsSessionWhenConfigured(t *testing.T) {
	fb := newFakeBackend()
	w, _ := newWidget(t, fb, Options{EndSessionOnClose: true})
	require.NoError(t, w.Initialize(context.Background()))

	require.NoError(t, w.Close(context.Background()))
	require.NoError(t, w.Close(context.Background()))
	assert.Equal(t, 1, fb.endCalls)
}

func TestOptionsDefaults(t *testing.T) {
	w := New(newFakeBackend(), Options{})
	assert.Equal(t, "ReCircle", w.Organization())
	assert.Equal(t, HistoryPrior, w.opts.HistoryMode)
	assert.Equal(t, EmptyClear, w.opts.EmptySuggestions)
	assert.Equal(t, OverlapReject, w.opts.OverlapPolicy)
	assert.True(t, w.IsContactIntent("Connect Me To ReCircle"))
	assert.False(t, w.IsContactIntent("How do I connect?"))
	assert.False(t, w.IsContactIntent("connect me to the CPCB portal"))
}
