// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	stderrors "errors"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/backend"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/config"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/widget"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	ExitSuccess       = 0
	ExitGeneralError  = 1
	ExitUsageError    = 2
	ExitConfigError   = 3
	ExitNetworkError  = 5
	ExitNotFoundError = 7
	ExitTimeoutError  = 8
)

// UsageError marks bad command-line input.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// ExitCode maps an error returned by a command onto a process exit code.
// pkg/errors wrapping is transparent to the standard errors package.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usage *UsageError
	if stderrors.As(err, &usage) {
		return ExitUsageError
	}

	var verrs config.ValidateErrors
	if stderrors.As(err, &verrs) {
		return ExitConfigError
	}

	var cerr *backend.ClientError
	if stderrors.As(err, &cerr) {
		switch cerr.Type {
		case backend.ErrTypeTimeout:
			return ExitTimeoutError
		case backend.ErrTypeStatus:
			if cerr.Status == 404 {
				return ExitNotFoundError
			}
		}
		return ExitNetworkError
	}

	if stderrors.Is(err, widget.ErrNoSession) {
		return ExitNotFoundError
	}
	return ExitGeneralError
}
