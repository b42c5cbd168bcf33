// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package backend

import (
	"context"
	"errors"
	"mime"
	"net"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"golang.org/x/net/publicsuffix"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/logging"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/model"
)

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// DefaultBaseURL is where the service listens in development.
const DefaultBaseURL = "http://localhost:8000"

// DefaultUserAgent identifies the widget to the service.
const DefaultUserAgent = "chatwidget/1.0"

// ClientConfig holds configuration options for the backend client.
type ClientConfig struct {
	// BaseURL is the service root (default: http://localhost:8000)
	BaseURL string

	// Timeout for each request. Zero means no client-side timeout.
	Timeout time.Duration

	// UserAgent header value (default: chatwidget/1.0)
	UserAgent string

	// Jar stores session cookies. A fresh in-memory jar is used when nil.
	Jar http.CookieJar

	// Logger receives request traces at debug level.
	Logger zerolog.Logger
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:   DefaultBaseURL,
		UserAgent: DefaultUserAgent,
		Logger:    zerolog.Nop(),
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client talks to the question-answering service.
// It is safe for concurrent use.
type Client struct {
	config *ClientConfig
	http   *resty.Client
	log    zerolog.Logger
}

// NewClientWithConfig creates a client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}
	if config.Jar == nil {
		config.Jar = NewMemoryJar()
	}

	log := logging.Component(config.Logger, "backend")

	rc := resty.New().
		SetBaseURL(strings.TrimRight(config.BaseURL, "/")).
		SetHeader("User-Agent", config.UserAgent).
		SetHeader("Accept", "application/json").
		SetCookieJar(config.Jar).
		SetTimeout(config.Timeout).
		SetError(&errorBody{})

	return &Client{config: config, http: rc, log: log}
}

// NewMemoryJar returns an in-memory cookie jar keyed by public suffix.
func NewMemoryJar() http.CookieJar {
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	return jar
}

// BaseURL returns the configured service root.
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

// Jar returns the cookie jar carrying the session.
func (c *Client) Jar() http.CookieJar {
	return c.config.Jar
}

// =============================================================================
// SESSION
// =============================================================================

// CreateSession creates a session or resumes the one named by the jar's cookie.
func (c *Client) CreateSession(ctx context.Context) (*SessionResponse, error) {
	var out SessionResponse
	if err := c.post(ctx, "/session", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EndSession closes the current session on the service.
func (c *Client) EndSession(ctx context.Context) (*EndSessionResponse, error) {
	var out EndSessionResponse
	if err := c.post(ctx, "/end_session", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// =============================================================================
// CONVERSATION
// =============================================================================

// CollectUserData submits lead-capture details. The caller normalizes them.
func (c *Client) CollectUserData(ctx context.Context, req CollectRequest) (*CollectResponse, error) {
	var out CollectResponse
	if err := c.post(ctx, "/collect_user_data", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Query asks a question with the prior conversation as context.
func (c *Client) Query(ctx context.Context, req QueryRequest) (*QueryResponse, error) {
	if req.History == nil {
		req.History = []model.ConversationTurn{}
	}
	var out QueryResponse
	if err := c.post(ctx, "/query", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TriggerContactIntent asks the service to route the visitor to a person.
func (c *Client) TriggerContactIntent(ctx context.Context) (*ContactIntentResponse, error) {
	var out ContactIntentResponse
	if err := c.post(ctx, "/trigger_contact_intent", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadChat fetches the transcript artifact for a session.
func (c *Client) DownloadChat(ctx context.Context, sessionID string) (*Transcript, error) {
	const endpoint = "/download_chat/{session_id}"

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "*/*").
		SetPathParam("session_id", sessionID).
		Get(endpoint)
	if err != nil {
		return nil, c.failure(endpoint, resp, err)
	}
	c.log.Debug().Str("endpoint", endpoint).Int("status", resp.StatusCode()).Msg("response")

	if !resp.IsSuccess() {
		return nil, c.responseError(endpoint, resp)
	}

	return &Transcript{
		Data:        resp.Body(),
		ContentType: resp.Header().Get("Content-Type"),
		Filename:    attachmentName(resp.Header().Get("Content-Disposition")),
	}, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// post sends a JSON POST and decodes a 2xx body into out.
func (c *Client) post(ctx context.Context, endpoint string, body, out any) error {
	req := c.http.R().
		SetContext(ctx).
		SetResult(out)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Post(endpoint)
	if err != nil {
		return c.failure(endpoint, resp, err)
	}
	c.log.Debug().Str("endpoint", endpoint).Int("status", resp.StatusCode()).Msg("response")

	if !resp.IsSuccess() {
		return c.responseError(endpoint, resp)
	}
	return nil
}

// failure classifies an error returned by resty. A response with a status
// means the body could not be decoded; no status means the transport failed.
func (c *Client) failure(endpoint string, resp *resty.Response, err error) *ClientError {
	if resp != nil && resp.StatusCode() > 0 {
		if !resp.IsSuccess() {
			cerr := statusError(resp.StatusCode(), nil)
			c.log.Warn().Str("endpoint", endpoint).Int("status", cerr.Status).Msg("service error")
			return cerr
		}
		c.log.Warn().Err(err).Str("endpoint", endpoint).Msg("undecodable response")
		return &ClientError{Type: ErrTypeDecode, Message: "invalid response from " + endpoint, Cause: err}
	}
	return c.transportError(endpoint, err)
}

// transportError classifies a failure that produced no HTTP response.
func (c *Client) transportError(endpoint string, err error) *ClientError {
	c.log.Warn().Err(err).Str("endpoint", endpoint).Msg("request failed")

	if errors.Is(err, context.DeadlineExceeded) {
		return &ClientError{Type: ErrTypeTimeout, Message: "request timed out", Cause: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &ClientError{Type: ErrTypeTimeout, Message: "request timed out", Cause: err}
	}

	return &ClientError{Type: ErrTypeConnection, Message: "cannot reach " + endpoint, Cause: err}
}

// responseError builds the error for a non-2xx response.
func (c *Client) responseError(endpoint string, resp *resty.Response) *ClientError {
	body, _ := resp.Error().(*errorBody)
	cerr := statusError(resp.StatusCode(), body)
	c.log.Warn().Str("endpoint", endpoint).Int("status", cerr.Status).Str("detail", cerr.Message).Msg("service error")
	return cerr
}

// attachmentName returns the filename parameter of a Content-Disposition header.
func attachmentName(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return params["filename"]
}
