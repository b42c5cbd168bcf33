// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package backend

import (
	"github.com/VishalSingh1806/ChatBot-RAG/internal/model"
)

// =============================================================================
// SESSION
// =============================================================================

// UserData is the lead record the service stores for a known visitor.
type UserData struct {
	UserName     string `json:"user_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization"`
}

// Profile converts the wire record into a UserProfile.
func (u UserData) Profile() model.UserProfile {
	return model.UserProfile{
		Name:         u.UserName,
		Email:        u.Email,
		Phone:        u.Phone,
		Organization: u.Organization,
	}
}

// SessionResponse is returned by POST /session.
type SessionResponse struct {
	SessionID         string                   `json:"session_id"`
	Message           string                   `json:"message,omitempty"`
	UserDataCollected bool                     `json:"user_data_collected"`
	UserData          *UserData                `json:"user_data,omitempty"`
	ChatHistory       []model.ConversationTurn `json:"chat_history,omitempty"`
}

// Returning reports whether the service already knows this visitor.
func (r *SessionResponse) Returning() bool {
	return r.UserDataCollected && r.UserData != nil
}

// =============================================================================
// LEAD CAPTURE
// =============================================================================

// CollectRequest is the body of POST /collect_user_data.
type CollectRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization"`
}

// NewCollectRequest builds the wire body from an already-normalized profile.
func NewCollectRequest(p model.UserProfile) CollectRequest {
	return CollectRequest{
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		Organization: p.Organization,
	}
}

// CollectResponse is returned by POST /collect_user_data.
type CollectResponse struct {
	Message     string                   `json:"message,omitempty"`
	ChatHistory []model.ConversationTurn `json:"chat_history,omitempty"`
}

// =============================================================================
// QUERY
// =============================================================================

// QueryRequest is the body of POST /query.
type QueryRequest struct {
	Text    string                   `json:"text"`
	History []model.ConversationTurn `json:"history"`
}

// Intent is the service's reading of what the visitor wants.
type Intent struct {
	Type          string  `json:"type,omitempty"`
	Confidence    float64 `json:"confidence,omitempty"`
	ShouldConnect bool    `json:"should_connect"`
}

// QueryContext describes the visitor as inferred from the conversation.
type QueryContext struct {
	Industry        string  `json:"industry,omitempty"`
	Urgency         string  `json:"urgency,omitempty"`
	EngagementScore float64 `json:"engagement_score,omitempty"`
}

// SourceInfo names where an answer came from.
type SourceInfo struct {
	Source     string  `json:"source,omitempty"`
	Collection string  `json:"collection,omitempty"`
	Similarity float64 `json:"similarity,omitempty"`
}

// QueryResponse is returned by POST /query. Every field is optional.
type QueryResponse struct {
	Answer           string        `json:"answer,omitempty"`
	SimilarQuestions []string      `json:"similar_questions,omitempty"`
	Intent           *Intent       `json:"intent,omitempty"`
	Context          *QueryContext `json:"context,omitempty"`
	SourceInfo       *SourceInfo   `json:"source_info,omitempty"`
}

// ShouldConnect reports the high-interest flag, false when intent is absent.
func (r *QueryResponse) ShouldConnect() bool {
	return r.Intent != nil && r.Intent.ShouldConnect
}

// =============================================================================
// SIDE CHANNELS
// =============================================================================

// ContactIntentResponse is returned by POST /trigger_contact_intent.
type ContactIntentResponse struct {
	Message string `json:"message"`
}

// EndSessionResponse is returned by POST /end_session.
type EndSessionResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Transcript is the opaque artifact served by GET /download_chat/{id}.
type Transcript struct {
	Data        []byte
	ContentType string
	// Filename comes from Content-Disposition when the service sends one.
	Filename string
}
