// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/backend"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/export"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/model"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/validate"
)

const (
	detailNoSession    = "Session not found"
	detailNoLead       = "Please share your details before asking questions."
	detailInvalidBody  = "Invalid request body"
	detailEmptyHistory = "No chat history found for this session"
)

// ============================================================================
// SESSION
// ============================================================================

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	if v, ok := s.visitorFor(r); ok {
		resp := backend.SessionResponse{
			SessionID:         v.ID,
			Message:           "Session resumed",
			UserDataCollected: v.Profile != nil,
			ChatHistory:       model.TurnsOf(v.Log),
		}
		if v.Profile != nil {
			resp.UserData = userData(*v.Profile)
		}
		s.log.Debug().Str("session_id", v.ID).Bool("returning", v.Profile != nil).Msg("session resumed")
		writeJSON(w, http.StatusOK, resp)
		return
	}

	v := s.sessions.create()
	s.setSessionCookie(w, v.ID, 0)
	s.log.Info().Str("session_id", v.ID).Msg("session created")
	writeJSON(w, http.StatusOK, backend.SessionResponse{
		SessionID: v.ID,
		Message:   "Session created",
	})
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	v, ok := s.visitorFor(r)
	if !ok {
		writeDetail(w, http.StatusBadRequest, detailNoSession)
		return
	}
	s.sessions.remove(v.ID)
	s.setSessionCookie(w, "", -1)
	s.log.Info().Str("session_id", v.ID).Int("messages", len(v.Log)).Msg("session ended")
	writeJSON(w, http.StatusOK, backend.EndSessionResponse{
		Status:  "success",
		Message: fmt.Sprintf("Session %s ended", v.ID),
	})
}

// ============================================================================
// LEAD CAPTURE
// ============================================================================

func (s *Server) handleCollectUserData(w http.ResponseWriter, r *http.Request) {
	v, ok := s.visitorFor(r)
	if !ok {
		writeDetail(w, http.StatusBadRequest, detailNoSession)
		return
	}

	var req backend.CollectRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, detailInvalidBody)
		return
	}

	profile := model.UserProfile{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Organization: req.Organization,
	}
	if issues := profileIssues(profile); len(issues) > 0 {
		writeIssues(w, issues)
		return
	}
	profile = validate.Normalize(profile)

	v, ok = s.sessions.update(v.ID, func(v *visitor) {
		v.Profile = &profile
	})
	if !ok {
		writeDetail(w, http.StatusBadRequest, detailNoSession)
		return
	}

	s.log.Info().Str("session_id", v.ID).Msg("lead details collected")
	writeJSON(w, http.StatusOK, backend.CollectResponse{
		Message:     fmt.Sprintf("Thank you, %s!", profile.FirstName()),
		ChatHistory: model.TurnsOf(v.Log),
	})
}

// profileIssues runs the same field rules as the widget's form.
func profileIssues(p model.UserProfile) []fieldIssue {
	var issues []fieldIssue
	for _, f := range validate.Fields {
		if msg := validate.ValidateField(f, validate.Value(p, f)); msg != "" {
			issues = append(issues, fieldIssue{
				Loc:  []string{"body", string(f)},
				Msg:  msg,
				Type: "value_error",
			})
		}
	}
	return issues
}

// ============================================================================
// CONVERSATION
// ============================================================================

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	v, ok := s.visitorFor(r)
	if !ok {
		writeDetail(w, http.StatusBadRequest, detailNoSession)
		return
	}
	if v.Profile == nil {
		writeDetail(w, http.StatusBadRequest, detailNoLead)
		return
	}

	var req backend.QueryRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, detailInvalidBody)
		return
	}
	text := strings.TrimSpace(req.Text)
	switch {
	case text == "":
		writeIssues(w, []fieldIssue{{Loc: []string{"body", "text"}, Msg: "text must not be empty", Type: "value_error"}})
		return
	case len(text) > MaxQueryLength:
		writeIssues(w, []fieldIssue{{Loc: []string{"body", "text"}, Msg: "text is too long", Type: "value_error"}})
		return
	}

	resp := s.answer(text, len(req.History))

	s.sessions.update(v.ID, func(v *visitor) {
		v.Log = append(v.Log, model.NewUserMessage(text), model.NewBotMessage(resp.Answer))
	})

	s.log.Debug().
		Str("session_id", v.ID).
		Str("intent", resp.Intent.Type).
		Bool("should_connect", resp.Intent.ShouldConnect).
		Int("history", len(req.History)).
		Msg("query answered")
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleContactIntent(w http.ResponseWriter, r *http.Request) {
	v, ok := s.visitorFor(r)
	if !ok {
		writeDetail(w, http.StatusBadRequest, detailNoSession)
		return
	}

	msg := fmt.Sprintf("Thanks! A member of the %s team will reach out to you shortly.", s.cfg.Organization)
	if v.Profile != nil {
		msg = fmt.Sprintf("Thanks %s! A member of the %s team will reach out to you at %s shortly.",
			v.Profile.FirstName(), s.cfg.Organization, v.Profile.Email)
	}

	s.sessions.update(v.ID, func(v *visitor) {
		v.ContactRequested = true
		v.Log = append(v.Log, model.NewUserMessage("Connect me to "+s.cfg.Organization), model.NewBotMessage(msg))
	})

	s.log.Info().Str("session_id", v.ID).Msg("contact requested")
	writeJSON(w, http.StatusOK, backend.ContactIntentResponse{Message: msg})
}

// ============================================================================
// TRANSCRIPT
// ============================================================================

func (s *Server) handleDownloadChat(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session_id")
	v, ok := s.sessions.get(id)
	if !ok {
		writeDetail(w, http.StatusNotFound, detailNoSession)
		return
	}
	if len(v.Log) == 0 {
		writeDetail(w, http.StatusNotFound, detailEmptyHistory)
		return
	}

	var profile model.UserProfile
	if v.Profile != nil {
		profile = *v.Profile
	}
	doc := export.NewDocument(v.ID, profile, s.cfg.Organization, v.Log)
	doc.CreatedAt = v.CreatedAt

	exporter := export.NewMarkdownExporter(export.DefaultOptions())
	data, err := exporter.Export(doc)
	if err != nil {
		s.log.Error().Err(err).Str("session_id", id).Msg("transcript render failed")
		writeDetail(w, http.StatusInternalServerError, "Failed to render transcript")
		return
	}

	w.Header().Set("Content-Type", exporter.MimeType())
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="chat_%s%s"`, id, exporter.FileExtension()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// ============================================================================
// HEALTH
// ============================================================================

type healthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Sessions int    `json:"sessions"`
	// Clients is the number of addresses the rate limiter is tracking.
	Clients int    `json:"rate_limited_clients,omitempty"`
	Uptime  string `json:"uptime"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	h := healthResponse{
		Status:   "ok",
		Version:  Version,
		Sessions: s.sessions.len(),
		Uptime:   time.Since(s.started).Round(time.Second).String(),
	}
	if s.limiter != nil {
		h.Clients = s.limiter.Clients()
	}
	writeJSON(w, http.StatusOK, h)
}

// ============================================================================
// HELPERS
// ============================================================================

// visitorFor resolves the session named by the request cookie.
func (s *Server) visitorFor(r *http.Request) (*visitor, bool) {
	c, err := r.Cookie(SessionCookie)
	if err != nil || c.Value == "" {
		return nil, false
	}
	return s.sessions.get(c.Value)
}

func (s *Server) setSessionCookie(w http.ResponseWriter, id string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.cfg.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func userData(p model.UserProfile) *backend.UserData {
	return &backend.UserData{
		UserName:     p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		Organization: p.Organization,
	}
}
