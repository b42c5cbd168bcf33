// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package backend is the HTTP client for the question-answering service.
//
// The service exposes a small JSON surface:
//
//	POST /session                 create or resume a visitor session
//	POST /collect_user_data       submit lead-capture details
//	POST /query                   ask a question with prior turns
//	POST /trigger_contact_intent  request a human follow-up
//	GET  /download_chat/{id}      fetch the rendered transcript
//	POST /end_session             close the session
//
// Sessions are correlated with cookies. The Client keeps them in a
// http.CookieJar supplied by the caller, so a persistent jar makes a visitor
// recognisable across runs.
//
// # Errors
//
// Every method returns a *ClientError. Non-2xx responses carry the status
// code and the message from the body's "detail" field, or "HTTP <status>"
// when the body has none:
//
//	resp, err := client.Query(ctx, backend.QueryRequest{Text: "What is EPR?"})
//	var cerr *backend.ClientError
//	if errors.As(err, &cerr) && cerr.Type == backend.ErrTypeStatus {
//	    fmt.Println(cerr.Status, cerr.Message)
//	}
package backend
