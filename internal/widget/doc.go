// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package widget is the conversational session controller behind the chat
// widget. It owns the visitor-facing state and every rule about when that
// state may change.
//
// # Lifecycle
//
//  1. Initialize creates or resumes the session. A returning visitor skips
//     lead capture; a new one starts in the Collecting gate.
//  2. The host edits lead fields with SetField/Blur and calls Submit.
//  3. Once Submitted, SubmitQuery and ClickSuggestion exchange messages.
//  4. DownloadTranscript hands the service's transcript artifact to the host.
//
// # Events
//
// State is read through snapshot getters (Messages, Suggestions, Status, ...)
// and every change is announced through Options.OnEvent, which a UI uses
// the way a browser component uses re-renders. Events are delivered outside
// the widget lock, possibly from the goroutine that issued the request.
//
// # Errors
//
// Remote failures never escape as faults. Each operation converts them into
// a chat message or a notice and also returns an error so hosts and tests
// can branch on it. Precondition violations (empty query, gate not passed,
// session not ready) change nothing and return a sentinel error.
//
// # One widget per host
//
// A Factory hands out at most one live Widget; a second Init before Destroy
// fails with ErrAlreadyInitialized.
package widget
