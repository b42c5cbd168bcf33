// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package backend

import (
	"encoding/json"
	"fmt"
	"strings"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeConnection
	ErrTypeTimeout
	ErrTypeStatus
	ErrTypeDecode
)

// String returns a short name for the error type.
func (t ErrorType) String() string {
	switch t {
	case ErrTypeConnection:
		return "connection"
	case ErrTypeTimeout:
		return "timeout"
	case ErrTypeStatus:
		return "status"
	case ErrTypeDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// ClientError represents a failed call to the service.
type ClientError struct {
	Type ErrorType
	// Status is the HTTP status code for ErrTypeStatus, otherwise 0.
	Status  int
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// Is matches sentinels by type, so errors.Is(err, ErrTimeout) works for any timeout.
func (e *ClientError) Is(target error) bool {
	t, ok := target.(*ClientError)
	if !ok {
		return false
	}
	return t.Message == "" && t.Type == e.Type
}

// Sentinel errors for errors.Is checks.
var (
	ErrConnection = &ClientError{Type: ErrTypeConnection}
	ErrTimeout    = &ClientError{Type: ErrTypeTimeout}
	ErrStatus     = &ClientError{Type: ErrTypeStatus}
	ErrDecode     = &ClientError{Type: ErrTypeDecode}
)

// =============================================================================
// ERROR BODY
// =============================================================================

// errorBody is the JSON shape of a failed response. detail is a string for
// handled errors and a list of objects for request validation failures.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// detailMessage extracts a human message from an error body.
func detailMessage(body *errorBody) string {
	if body == nil || len(body.Detail) == 0 || string(body.Detail) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(body.Detail, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
	}

	return strings.TrimSpace(string(body.Detail))
}

// statusError builds the error for a non-2xx response.
func statusError(status int, body *errorBody) *ClientError {
	msg := detailMessage(body)
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", status)
	}
	return &ClientError{Type: ErrTypeStatus, Status: status, Message: msg}
}
