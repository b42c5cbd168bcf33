// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat transcript.
package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// SENDER TYPE
// =============================================================================

// Sender identifies who produced a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// String returns the string representation of the sender.
func (s Sender) String() string {
	return string(s)
}

// DisplayName returns a human-readable name for the sender.
func (s Sender) DisplayName() string {
	switch s {
	case SenderUser:
		return "You"
	case SenderBot:
		return "Assistant"
	default:
		return string(s)
	}
}

// ParseSender maps a wire role onto a Sender. Anything that is not "user"
// is treated as the bot side.
func ParseSender(role string) Sender {
	if strings.EqualFold(strings.TrimSpace(role), string(SenderUser)) {
		return SenderUser
	}
	return SenderBot
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single chat bubble. It is immutable once created.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage creates a message with a time-ordered ID.
func NewMessage(sender Sender, text string) Message {
	return Message{
		ID:        generateID(),
		Text:      text,
		Sender:    sender,
		Timestamp: time.Now(),
	}
}

// NewUserMessage creates a user message.
func NewUserMessage(text string) Message {
	return NewMessage(SenderUser, text)
}

// NewBotMessage creates a bot message.
func NewBotMessage(text string) Message {
	return NewMessage(SenderBot, text)
}

// IsUser reports whether the visitor sent the message.
func (m Message) IsUser() bool {
	return m.Sender == SenderUser
}

// Turn projects the message onto its wire form.
func (m Message) Turn() ConversationTurn {
	return ConversationTurn{Role: string(m.Sender), Text: m.Text}
}

// Preview returns the first maxLen characters of the text on one line.
func (m Message) Preview(maxLen int) string {
	line := strings.Join(strings.Fields(m.Text), " ")
	runes := []rune(line)
	if maxLen <= 0 || len(runes) <= maxLen {
		return line
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// =============================================================================
// WIRE FORM
// =============================================================================

// ConversationTurn is the reduced form of a Message exchanged with the backend.
type ConversationTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ReplayMessages converts backend history into messages with sequential IDs.
func ReplayMessages(turns []ConversationTurn) []Message {
	now := time.Now()
	out := make([]Message, 0, len(turns))
	for i, turn := range turns {
		out = append(out, Message{
			ID:        "history-" + strconv.Itoa(i+1),
			Text:      turn.Text,
			Sender:    ParseSender(turn.Role),
			Timestamp: now,
		})
	}
	return out
}

// =============================================================================
// USER PROFILE
// =============================================================================

// UserProfile holds the lead-capture details.
type UserProfile struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization"`
}

// FirstName returns the first space-delimited token of the name.
func (p UserProfile) FirstName() string {
	fields := strings.Fields(p.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// IsZero reports whether no field has been filled in.
func (p UserProfile) IsZero() bool {
	return p == UserProfile{}
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// generateID creates a unique, time-ordered message ID.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "msg_" + uuid.NewString()
	}
	return "msg_" + id.String()
}
