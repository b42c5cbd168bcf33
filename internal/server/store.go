// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/model"
)

// visitor is one session's server-side record.
type visitor struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Profile is nil until lead details are collected.
	Profile *model.UserProfile
	Log     []model.Message

	ContactRequested bool
}

func (v *visitor) clone() *visitor {
	out := *v
	if v.Profile != nil {
		p := *v.Profile
		out.Profile = &p
	}
	out.Log = append([]model.Message(nil), v.Log...)
	return &out
}

// sessionStore holds every live session in memory.
type sessionStore struct {
	mu   sync.Mutex
	byID map[string]*visitor
}

func newSessionStore() *sessionStore {
	return &sessionStore{byID: make(map[string]*visitor)}
}

func (s *sessionStore) create() *visitor {
	now := time.Now()
	v := &visitor{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}

	s.mu.Lock()
	s.byID[v.ID] = v
	s.mu.Unlock()
	return v.clone()
}

// get returns a copy of the session.
func (s *sessionStore) get(id string) (*visitor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return v.clone(), true
}

// update applies fn to the live record and returns a copy of the result.
func (s *sessionStore) update(id string, fn func(v *visitor)) (*visitor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	fn(v)
	v.UpdatedAt = time.Now()
	return v.clone(), true
}

func (s *sessionStore) remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.byID[id]
	delete(s.byID, id)
	return ok
}

func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}
