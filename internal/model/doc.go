// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat transcript.
//
// # Key Types
//
//   - Message: One chat bubble with sender, text and timestamp
//   - Sender: Message origin (user or bot)
//   - Transcript: Append-only, insertion-ordered message log
//   - ConversationTurn: Wire projection of a Message sent back as history
//   - UserProfile: Lead-capture details (name, email, phone, organization)
//
// # Usage
//
//	t := model.NewTranscript()
//	t.Append(model.NewUserMessage("What is EPR?"))
//	history := t.Turns()
//
// Messages are immutable once appended; the transcript never edits or
// removes entries except through Reset, which replaces the log wholesale.
package model
