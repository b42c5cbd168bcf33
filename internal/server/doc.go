// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package server is an in-memory reference implementation of the chat
// service the widget talks to. It exists for local development and for
// end-to-end tests; it is not a production backend.
//
// # Endpoints
//
//   - POST /session                    - create or resume (cookie correlated)
//   - POST /collect_user_data          - store lead details
//   - POST /query                      - answer from a canned FAQ
//   - POST /trigger_contact_intent     - record a request for a human
//   - GET  /download_chat/{session_id} - Markdown transcript attachment
//   - POST /end_session                - forget the session
//   - GET  /health                     - liveness
//
// Sessions are correlated by the HttpOnly cookie named SessionCookie.
// Errors use a JSON body of the form {"detail": "..."}; validation failures
// carry a list of {"loc", "msg", "type"} objects instead.
//
// # Middleware
//
// Requests pass through panic recovery, security headers, CORS with
// credentials, a zerolog request log and a per-IP token-bucket limiter.
//
// # Usage
//
//	srv := server.New(server.DefaultConfig())
//	go srv.Start()
//	defer srv.Shutdown(ctx)
package server
