// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/config"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/session"
)

// =============================================================================
// POLICIES
// =============================================================================

// HistoryMode selects which turns accompany a query.
type HistoryMode string

const (
	// HistoryPrior sends every turn before the new question.
	HistoryPrior HistoryMode = "prior"
	// HistoryInclusive also sends the question itself as the last turn.
	HistoryInclusive HistoryMode = "inclusive"
)

// EmptySuggestions selects what an answer without suggestions does.
type EmptySuggestions string

const (
	EmptyClear    EmptySuggestions = "clear"
	EmptyPreserve EmptySuggestions = "preserve"
)

// OverlapPolicy selects what a query does while another is in flight.
type OverlapPolicy string

const (
	// OverlapAllow sends overlapping queries; answers arrive in any order.
	OverlapAllow OverlapPolicy = "allow"
	// OverlapReject ignores a query while one is in flight (ErrBusy).
	OverlapReject OverlapPolicy = "reject"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures a Widget. The zero value is usable.
type Options struct {
	// Organization names the provider in copy. Default: ReCircle.
	Organization string

	// ContactPhrase marks a suggestion as a contact request
	// (case-insensitive substring). Default: "connect me to <Organization>".
	ContactPhrase string

	HistoryMode      HistoryMode
	EmptySuggestions EmptySuggestions
	OverlapPolicy    OverlapPolicy

	// FallbackPrompt is shown when there are no suggestions; "" shows nothing.
	FallbackPrompt string

	// SkipHistoryReplay leaves prior turns out of the transcript on resume.
	SkipHistoryReplay bool

	// EndSessionOnClose ends the session on the service when the widget closes.
	EndSessionOnClose bool

	// Saver receives downloaded transcripts. Default: current directory.
	Saver Saver

	// Recorder keeps the session id after the handshake.
	Recorder session.IDRecorder

	// OnEvent receives state-change notifications.
	OnEvent func(Event)

	Logger zerolog.Logger
}

// OptionsFromConfig maps the [widget] and [transcript] sections onto Options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Organization:      cfg.Widget.Organization,
		ContactPhrase:     cfg.Widget.ContactPhrase,
		HistoryMode:       HistoryMode(cfg.Widget.HistoryMode),
		EmptySuggestions:  EmptySuggestions(cfg.Widget.EmptySuggestions),
		OverlapPolicy:     OverlapPolicy(cfg.Widget.OverlapPolicy),
		FallbackPrompt:    cfg.Widget.FallbackPrompt,
		SkipHistoryReplay: !cfg.Widget.ReplayHistory,
		EndSessionOnClose: cfg.Widget.EndSessionOnClose,
		Saver:             newFileSaver(cfg.Transcript.Dir, cfg.Transcript.OpenAfterSave),
	}
}

func (o *Options) setDefaults() {
	if o.Organization == "" {
		o.Organization = "ReCircle"
	}
	if strings.TrimSpace(o.ContactPhrase) == "" {
		o.ContactPhrase = config.ContactPhraseFor(o.Organization)
	}
	if o.HistoryMode != HistoryInclusive {
		o.HistoryMode = HistoryPrior
	}
	if o.EmptySuggestions != EmptyPreserve {
		o.EmptySuggestions = EmptyClear
	}
	if o.OverlapPolicy != OverlapAllow {
		o.OverlapPolicy = OverlapReject
	}
	if o.Saver == nil {
		o.Saver = newFileSaver(".", false)
	}
}
