// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"context"
	"fmt"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/backend"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/model"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/validate"
)

// GateState is the lead-capture state. It only moves forward.
type GateState int

const (
	GateCollecting GateState = iota
	GateSubmitted
)

// String returns the state name.
func (g GateState) String() string {
	if g == GateSubmitted {
		return "submitted"
	}
	return "collecting"
}

// =============================================================================
// FIELD EDITING
// =============================================================================

// SetField records an edit and revalidates that field. It returns the
// field's error copy ("" when valid).
func (w *Widget) SetField(field validate.Field, value string) (string, error) {
	w.mu.Lock()
	if w.gate == GateSubmitted {
		w.mu.Unlock()
		return "", ErrAlreadySubmitted
	}
	w.profile = validate.WithValue(w.profile, field, value)
	msg := w.fieldErrors.Set(field, value)
	errs := w.fieldErrors.Clone()
	w.mu.Unlock()

	w.deliver(batch{{Kind: EventForm, FieldErrors: errs}})
	return msg, nil
}

// Blur revalidates a field with its current value, as when focus leaves it.
func (w *Widget) Blur(field validate.Field) string {
	w.mu.Lock()
	if w.gate == GateSubmitted {
		w.mu.Unlock()
		return ""
	}
	msg := w.fieldErrors.Set(field, validate.Value(w.profile, field))
	errs := w.fieldErrors.Clone()
	w.mu.Unlock()

	w.deliver(batch{{Kind: EventForm, FieldErrors: errs}})
	return msg
}

// CanSubmit reports whether the submit control is enabled.
func (w *Widget) CanSubmit() bool {
	if !w.session.IsReady() {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.gate == GateCollecting && !w.submitting &&
		validate.IsFormValid(w.profile, w.fieldErrors)
}

// =============================================================================
// SUBMISSION
// =============================================================================

// SubmitProfile fills every field from p and submits.
func (w *Widget) SubmitProfile(ctx context.Context, p model.UserProfile) error {
	for _, f := range validate.Fields {
		if _, err := w.SetField(f, validate.Value(p, f)); err != nil {
			return err
		}
	}
	return w.Submit(ctx)
}

// Submit sends the lead details. A session that is not ready appends a
// message and returns ErrSessionNotReady whatever the form holds; otherwise
// an invalid form shows every field error and returns ErrFormInvalid. On success the gate opens and the transcript is
// replaced by the replayed history and a greeting. On a service failure the
// gate stays closed, the entered values are kept and an error message is
// appended.
func (w *Widget) Submit(ctx context.Context) error {
	w.mu.Lock()
	if w.destroyed {
		w.mu.Unlock()
		return ErrDestroyed
	}
	if w.gate == GateSubmitted {
		w.mu.Unlock()
		return ErrAlreadySubmitted
	}
	if w.submitting {
		w.mu.Unlock()
		return ErrBusy
	}
	if !w.session.IsReady() {
		w.transcript.Append(model.NewBotMessage(MsgSessionNotReady))
		msgs := w.transcript.Messages()
		w.mu.Unlock()
		w.deliver(batch{{Kind: EventMessages, Messages: msgs}})
		return ErrSessionNotReady
	}
	if !validate.IsFormValid(w.profile, w.fieldErrors) {
		w.fieldErrors = validate.ValidateProfile(w.profile)
		errs := w.fieldErrors.Clone()
		w.mu.Unlock()
		w.deliver(batch{{Kind: EventForm, FieldErrors: errs}})
		return ErrFormInvalid
	}
	w.submitting = true
	profile := validate.Normalize(w.profile)
	w.mu.Unlock()

	resp, err := w.backend.CollectUserData(ctx, backend.NewCollectRequest(profile))

	var b batch
	w.mu.Lock()
	w.submitting = false
	if err != nil {
		w.transcript.Append(model.NewBotMessage(fmt.Sprintf(MsgSubmitError, reason(err))))
		b.add(Event{Kind: EventMessages, Messages: w.transcript.Messages()})
		w.mu.Unlock()
		w.deliver(b)
		w.log.Warn().Err(err).Msg("lead submission failed")
		return fmt.Errorf("submit lead details: %w", err)
	}

	w.profile = profile
	w.gate = GateSubmitted
	w.suggestions = nil

	var msgs []model.Message
	if !w.opts.SkipHistoryReplay {
		msgs = model.ReplayMessages(resp.ChatHistory)
	}
	msgs = append(msgs, model.NewBotMessage(greeting(profile)))
	w.transcript.Reset(msgs...)

	b.add(Event{Kind: EventGate, Gate: w.gate})
	b.add(Event{Kind: EventMessages, Messages: w.transcript.Messages()})
	b.add(Event{Kind: EventSuggestions})
	w.mu.Unlock()

	w.deliver(b)
	w.log.Info().Int("history", len(resp.ChatHistory)).Msg("lead details submitted")
	return nil
}
