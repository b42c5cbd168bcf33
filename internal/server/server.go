// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/config"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/logging"
)

// ============================================================================
// CONSTANTS
// ============================================================================

const (
	// DefaultAddr matches the widget's default backend URL.
	DefaultAddr = ":8000"

	// SessionCookie correlates requests with a visitor session.
	SessionCookie = "chatwidget_session"

	// MaxRequestBodySize caps JSON bodies (64KB).
	MaxRequestBodySize = 64 * 1024

	// MaxQueryLength caps a single question, in bytes.
	MaxQueryLength = 4000

	// Version is the reference backend version.
	Version = "1.0.0"
)

// ============================================================================
// CONFIG
// ============================================================================

// Config configures a Server.
type Config struct {
	Addr string

	// Organization names the provider in replies.
	Organization string

	CORS *CORSConfig

	// RateLimit is requests per second per IP; zero disables limiting.
	RateLimit float64
	Burst     int

	// SecureCookie marks the session cookie Secure (HTTPS deployments).
	SecureCookie bool

	Logger zerolog.Logger
}

// DefaultConfig returns a config for local development.
func DefaultConfig() Config {
	return Config{
		Addr:         DefaultAddr,
		Organization: "ReCircle",
		CORS:         DefaultCORSConfig(),
		RateLimit:    10,
		Burst:        20,
		Logger:       zerolog.Nop(),
	}
}

// FromConfig maps the [stub] and [widget] sections onto a Config.
func FromConfig(cfg *config.Config, log zerolog.Logger) Config {
	cors := DefaultCORSConfig()
	if len(cfg.Stub.Origins) > 0 {
		cors.AllowedOrigins = cfg.Stub.Origins
	}
	return Config{
		Addr:         cfg.Stub.Addr,
		Organization: cfg.Widget.Organization,
		CORS:         cors,
		RateLimit:    cfg.Stub.RateLimit,
		Burst:        cfg.Stub.Burst,
		Logger:       log,
	}
}

// ============================================================================
// SERVER
// ============================================================================

// Server is the reference chat service.
type Server struct {
	cfg      Config
	log      zerolog.Logger
	router   chi.Router
	handler  http.Handler
	sessions *sessionStore
	faq      []faqEntry
	limiter  *RateLimiter
	started  time.Time

	mu     sync.Mutex
	server *http.Server
}

// New creates a server with its routes and middleware in place.
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Organization == "" {
		cfg.Organization = "ReCircle"
	}
	if cfg.CORS == nil {
		cfg.CORS = DefaultCORSConfig()
	}

	s := &Server{
		cfg:      cfg,
		log:      logging.Component(cfg.Logger, "server"),
		sessions: newSessionStore(),
		faq:      defaultFAQ(cfg.Organization),
		started:  time.Now(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	r.Post("/session", s.handleSession)
	r.Post("/collect_user_data", s.handleCollectUserData)
	r.Post("/query", s.handleQuery)
	r.Post("/trigger_contact_intent", s.handleContactIntent)
	r.Get("/download_chat/{session_id}", s.handleDownloadChat)
	r.Post("/end_session", s.handleEndSession)
	r.Get("/health", s.handleHealth)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	s.router = r

	chain := []func(http.Handler) http.Handler{
		RecoveryMiddleware(s.log),
		SecurityHeadersMiddleware(),
		CORSMiddleware(s.cfg.CORS),
		LoggingMiddleware(s.log),
	}
	if s.cfg.RateLimit > 0 {
		burst := s.cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		s.limiter = NewRateLimiter(rate.Limit(s.cfg.RateLimit), burst, 0)
		chain = append(chain, RateLimitMiddleware(s.limiter, s.log))
	}
	s.handler = Chain(chain...)(r)
}

// Handler returns the full middleware chain and router, for embedding or
// httptest.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.cfg.Addr
}

// ============================================================================
// SERVER LIFECYCLE
// ============================================================================

// Start listens on the configured address until Shutdown. It returns nil
// after a clean shutdown.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	s.mu.Lock()
	s.server = srv
	s.mu.Unlock()

	s.log.Info().Str("addr", s.cfg.Addr).Str("version", Version).Msg("server starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.server
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	s.log.Info().Int("sessions", s.sessions.len()).Msg("server shutting down")
	return srv.Shutdown(ctx)
}

// ============================================================================
// HELPERS
// ============================================================================

type detailBody struct {
	Detail any `json:"detail"`
}

// fieldIssue is one entry of a validation error list.
type fieldIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailBody{Detail: detail})
}

func writeIssues(w http.ResponseWriter, issues []fieldIssue) {
	writeJSON(w, http.StatusUnprocessableEntity, detailBody{Detail: issues})
}

// decodeBody reads a bounded JSON body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodySize)
	dec := json.NewDecoder(r.Body)
	return dec.Decode(v)
}
