// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/backend"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/model"
)

// =============================================================================
// QUERIES
// =============================================================================

// SubmitQuery sends a visitor question. The question is shown at once and
// stays even if the request fails. Empty text, a closed gate or a session
// that is not ready change nothing and return a sentinel error.
func (w *Widget) SubmitQuery(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyQuery
	}
	if err := w.checkChat(); err != nil {
		return err
	}

	w.mu.Lock()
	if w.opts.OverlapPolicy == OverlapReject && w.queries > 0 {
		w.mu.Unlock()
		return ErrBusy
	}
	prior := w.transcript.Messages()
	user := model.NewUserMessage(text)
	w.transcript.Append(user)

	history := model.TurnsOf(prior)
	if w.opts.HistoryMode == HistoryInclusive {
		history = append(history, user.Turn())
	}
	w.queries++
	b := w.beginPending()
	w.mu.Unlock()
	w.deliver(b)

	resp, err := w.backend.Query(ctx, backend.QueryRequest{Text: text, History: history})

	w.mu.Lock()
	w.queries--
	b = nil
	if err != nil {
		w.transcript.Append(model.NewBotMessage(MsgQueryError))
		w.suggestions = nil
		b.add(Event{Kind: EventMessages, Messages: w.transcript.Messages()})
		b.add(Event{Kind: EventSuggestions})
		b = append(b, w.endPending()...)
		w.mu.Unlock()
		w.deliver(b)
		w.log.Warn().Err(err).Msg("query failed")
		return fmt.Errorf("query: %w", err)
	}

	answer := resp.Answer
	if strings.TrimSpace(answer) == "" {
		answer = MsgMissingAnswer
	}
	w.transcript.Append(model.NewBotMessage(answer))
	b.add(Event{Kind: EventMessages, Messages: w.transcript.Messages()})

	switch {
	case len(resp.SimilarQuestions) > 0:
		w.suggestions = cloneStrings(resp.SimilarQuestions)
		b.add(Event{Kind: EventSuggestions, Suggestions: cloneStrings(w.suggestions)})
	case w.opts.EmptySuggestions == EmptyClear:
		w.suggestions = nil
		b.add(Event{Kind: EventSuggestions})
	}

	w.lastIntent = resp.Intent
	if resp.ShouldConnect() && !w.highInterest {
		w.highInterest = true
		b.add(Event{Kind: EventHighInterest, Intent: resp.Intent})
	}
	b = append(b, w.endPending()...)
	w.mu.Unlock()

	w.deliver(b)
	w.log.Debug().
		Int("history", len(history)).
		Int("suggestions", len(resp.SimilarQuestions)).
		Msg("query answered")
	return nil
}

// =============================================================================
// SUGGESTIONS
// =============================================================================

// IsContactIntent reports whether a suggestion asks to reach a human.
func (w *Widget) IsContactIntent(question string) bool {
	return strings.Contains(fold(question), fold(w.opts.ContactPhrase))
}

// fold case-folds s for caseless matching. Casers are stateful, so each
// call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// ClickSuggestion acts on a suggested question. A contact request goes to
// the contact-intent endpoint and leaves the suggestions in place; anything
// else is sent as a query.
func (w *Widget) ClickSuggestion(ctx context.Context, question string) error {
	if !w.IsContactIntent(question) {
		return w.SubmitQuery(ctx, question)
	}
	return w.contactIntent(ctx, question)
}

func (w *Widget) contactIntent(ctx context.Context, question string) error {
	if err := w.checkChat(); err != nil {
		return err
	}

	w.mu.Lock()
	w.transcript.Append(model.NewUserMessage(question))
	b := w.beginPending()
	w.mu.Unlock()
	w.deliver(b)

	resp, err := w.backend.TriggerContactIntent(ctx)

	w.mu.Lock()
	reply := MsgContactError
	if err == nil && strings.TrimSpace(resp.Message) != "" {
		reply = resp.Message
	}
	w.transcript.Append(model.NewBotMessage(reply))
	b = batch{{Kind: EventMessages, Messages: w.transcript.Messages()}}
	b = append(b, w.endPending()...)
	w.mu.Unlock()
	w.deliver(b)

	if err != nil {
		w.log.Warn().Err(err).Msg("contact intent failed")
		return fmt.Errorf("contact intent: %w", err)
	}
	w.log.Info().Msg("contact intent recorded")
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

func (w *Widget) checkChat() error {
	w.mu.Lock()
	destroyed, gate := w.destroyed, w.gate
	w.mu.Unlock()

	switch {
	case destroyed:
		return ErrDestroyed
	case gate != GateSubmitted:
		return ErrNotSubmitted
	case !w.session.IsReady():
		return ErrSessionNotReady
	}
	return nil
}

// beginPending marks a reply outstanding. Caller holds w.mu.
func (w *Widget) beginPending() batch {
	w.pending++
	b := batch{{Kind: EventMessages, Messages: w.transcript.Messages()}}
	if w.pending == 1 {
		b.add(Event{Kind: EventTyping, Typing: true})
	}
	return b
}

// endPending clears one outstanding reply. Caller holds w.mu.
func (w *Widget) endPending() batch {
	w.pending--
	if w.pending > 0 {
		return nil
	}
	return batch{{Kind: EventTyping, Typing: false}}
}
