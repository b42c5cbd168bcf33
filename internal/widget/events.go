// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"github.com/VishalSingh1806/ChatBot-RAG/internal/backend"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/model"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/validate"
)

// EventKind identifies what changed.
type EventKind int

const (
	EventMessages EventKind = iota
	EventSuggestions
	EventTyping
	EventStatus
	EventGate
	EventForm
	EventHighInterest
	EventNotice
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventMessages:
		return "messages"
	case EventSuggestions:
		return "suggestions"
	case EventTyping:
		return "typing"
	case EventStatus:
		return "status"
	case EventGate:
		return "gate"
	case EventForm:
		return "form"
	case EventHighInterest:
		return "high_interest"
	case EventNotice:
		return "notice"
	default:
		return "unknown"
	}
}

// Event carries a snapshot of whatever changed. Only the fields that belong
// to Kind are set.
type Event struct {
	Kind EventKind

	Messages    []model.Message
	Suggestions []string
	Typing      bool
	Status      Status
	Gate        GateState
	FieldErrors validate.FieldErrors
	Intent      *backend.Intent
	Notice      string
}

// batch collects events under the lock and delivers them after unlocking.
type batch []Event

func (b *batch) add(e Event) {
	*b = append(*b, e)
}

func (w *Widget) deliver(b batch) {
	if w.opts.OnEvent == nil {
		return
	}
	for _, e := range b {
		w.opts.OnEvent(e)
	}
}
