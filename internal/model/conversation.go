// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat transcript.
package model

import "time"

// =============================================================================
// TRANSCRIPT TYPE
// =============================================================================

// Transcript is the ordered message log shown in the chat window.
// Insertion order is display order. Transcript is not safe for concurrent
// use; the widget guards it with its own lock.
type Transcript struct {
	messages  []Message
	UpdatedAt time.Time
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{
		messages:  make([]Message, 0, 16),
		UpdatedAt: time.Now(),
	}
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// Append adds messages to the end of the log.
func (t *Transcript) Append(msgs ...Message) {
	if len(msgs) == 0 {
		return
	}
	t.messages = append(t.messages, msgs...)
	t.UpdatedAt = time.Now()
}

// Reset replaces the whole log.
func (t *Transcript) Reset(msgs ...Message) {
	t.messages = append(make([]Message, 0, len(msgs)+16), msgs...)
	t.UpdatedAt = time.Now()
}

// Messages returns a copy of the log.
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// IsEmpty returns true if there are no messages.
func (t *Transcript) IsEmpty() bool {
	return len(t.messages) == 0
}

// Last returns the most recent message.
func (t *Transcript) Last() (Message, bool) {
	if len(t.messages) == 0 {
		return Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}

// HasBotMessage reports whether the bot has spoken at least once.
func (t *Transcript) HasBotMessage() bool {
	for _, m := range t.messages {
		if m.Sender == SenderBot {
			return true
		}
	}
	return false
}

// =============================================================================
// WIRE CONVERSION
// =============================================================================

// Turns projects every message onto its wire form.
func (t *Transcript) Turns() []ConversationTurn {
	return TurnsOf(t.messages)
}

// TurnsOf projects a message slice onto its wire form.
func TurnsOf(msgs []Message) []ConversationTurn {
	turns := make([]ConversationTurn, 0, len(msgs))
	for _, m := range msgs {
		turns = append(turns, m.Turn())
	}
	return turns
}
