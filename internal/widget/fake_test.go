// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"context"
	"errors"
	"sync"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/backend"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/model"
)

// fakeBackend scripts every endpoint and records what was sent.
type fakeBackend struct {
	mu sync.Mutex

	session    *backend.SessionResponse
	sessionErr error

	collect    *backend.CollectResponse
	collectErr error

	query     func(req backend.QueryRequest) (*backend.QueryResponse, error)
	queryGate chan struct{}

	contact    *backend.ContactIntentResponse
	contactErr error

	transcript    *backend.Transcript
	transcriptErr error

	sessionCalls  int
	endCalls      int
	collectReqs   []backend.CollectRequest
	queryReqs     []backend.QueryRequest
	contactCalls  int
	downloadedIDs []string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		session: &backend.SessionResponse{SessionID: "sess-1"},
		collect: &backend.CollectResponse{Message: "ok"},
		query: func(req backend.QueryRequest) (*backend.QueryResponse, error) {
			return &backend.QueryResponse{Answer: "answer to " + req.Text}, nil
		},
		contact: &backend.ContactIntentResponse{Message: "Our team will reach out."},
	}
}

func (f *fakeBackend) CreateSession(ctx context.Context) (*backend.SessionResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessionCalls++
	return f.session, f.sessionErr
}

func (f *fakeBackend) CollectUserData(ctx context.Context, req backend.CollectRequest) (*backend.CollectResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.collectReqs = append(f.collectReqs, req)
	if f.collectErr != nil {
		return nil, f.collectErr
	}
	return f.collect, nil
}

func (f *fakeBackend) Query(ctx context.Context, req backend.QueryRequest) (*backend.QueryResponse, error) {
	f.mu.Lock()
	f.queryReqs = append(f.queryReqs, req)
	gate, fn := f.queryGate, f.query
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	return fn(req)
}

func (f *fakeBackend) TriggerContactIntent(ctx context.Context) (*backend.ContactIntentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contactCalls++
	if f.contactErr != nil {
		return nil, f.contactErr
	}
	return f.contact, nil
}

func (f *fakeBackend) DownloadChat(ctx context.Context, sessionID string) (*backend.Transcript, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.downloadedIDs = append(f.downloadedIDs, sessionID)
	if f.transcriptErr != nil {
		return nil, f.transcriptErr
	}
	return f.transcript, nil
}

func (f *fakeBackend) EndSession(ctx context.Context) (*backend.EndSessionResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.endCalls++
	return &backend.EndSessionResponse{Status: "ended"}, nil
}

func (f *fakeBackend) queries() []backend.QueryRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]backend.QueryRequest(nil), f.queryReqs...)
}

// recorder collects delivered events.
type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) record(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) kinds() []EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]EventKind, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Kind)
	}
	return out
}

func (r *recorder) notices() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.events {
		if e.Kind == EventNotice {
			out = append(out, e.Notice)
		}
	}
	return out
}

// memSaver keeps saved artifacts in memory.
type memSaver struct {
	name  string
	data  []byte
	ctype string
	err   error
}

func (s *memSaver) Save(filename string, data []byte, contentType string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.name, s.data, s.ctype = filename, data, contentType
	return "/downloads/" + filename, nil
}

var errBoom = errors.New("boom")

func validProfile() model.UserProfile {
	return model.UserProfile{
		Name:         "  Jane   Doe ",
		Email:        " Jane@Example.COM ",
		Phone:        "+91 98765-43210",
		Organization: " Acme Corp ",
	}
}

func texts(msgs []model.Message) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.Text)
	}
	return out
}
