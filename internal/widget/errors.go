// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"errors"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/backend"
)

// Sentinel errors returned by widget operations.
var (
	ErrAlreadyInitialized = errors.New("widget: already initialized")
	ErrSessionNotReady    = errors.New("widget: session not ready")
	ErrFormInvalid        = errors.New("widget: lead form is invalid")
	ErrAlreadySubmitted   = errors.New("widget: lead details already submitted")
	ErrNotSubmitted       = errors.New("widget: lead details not submitted")
	ErrEmptyQuery         = errors.New("widget: empty query")
	ErrBusy               = errors.New("widget: another request is in flight")
	ErrNoSession          = errors.New("widget: no active session")
	ErrDestroyed          = errors.New("widget: destroyed")
)

// Visitor-facing copy.
const (
	MsgSessionFailed   = "⚠️ There was an issue connecting to the server. Please try refreshing the page."
	MsgSessionNotReady = "Session not ready. Please refresh the page and try again."
	MsgSubmitError     = "Sorry, there was an error submitting your information: %s"
	MsgMissingAnswer   = "Sorry, I couldn't process your request."
	MsgQueryError      = "Sorry, I'm having trouble connecting. Please try again later."
	MsgContactError    = "Sorry, I couldn't reach our team right now. Please try again later."
	MsgNoSession       = "No active session found. Please start a chat first."
	MsgDownloadFailed  = "Failed to download chat transcript. Please try again."
	MsgTranscriptSaved = "Transcript saved to %s"
	MsgConnectionIssue = "Connection issue. Please refresh the page to reconnect."
)

// reason extracts the visitor-facing part of a remote failure.
func reason(err error) string {
	var cerr *backend.ClientError
	if errors.As(err, &cerr) && cerr.Message != "" {
		return cerr.Message
	}
	return err.Error()
}
