// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/export"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/widget"
)

// =============================================================================
// WIDGET MESSAGES
// =============================================================================

// EventMsg carries one widget event into the update loop.
type EventMsg struct {
	Event widget.Event
}

// eventsClosedMsg is sent once the bridge is closed.
type eventsClosedMsg struct{}

// InitDoneMsg reports the end of the session handshake.
type InitDoneMsg struct {
	Err error
}

// SubmitDoneMsg reports the end of a lead form submission.
type SubmitDoneMsg struct {
	Err error
}

// QueryDoneMsg reports the end of a query or suggestion click.
type QueryDoneMsg struct {
	Err error
}

// DownloadDoneMsg reports where the service transcript was saved.
type DownloadDoneMsg struct {
	Path string
	Err  error
}

// ExportDoneMsg reports where the local transcript was rendered.
type ExportDoneMsg struct {
	Path string
	Err  error
}

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// WaitForEvent blocks until the bridge delivers the next event.
func WaitForEvent(events <-chan widget.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return EventMsg{Event: ev}
	}
}

func initCmd(ctx context.Context, w *widget.Widget) tea.Cmd {
	return func() tea.Msg {
		return InitDoneMsg{Err: w.Initialize(ctx)}
	}
}

func submitCmd(ctx context.Context, w *widget.Widget) tea.Cmd {
	return func() tea.Msg {
		return SubmitDoneMsg{Err: w.Submit(ctx)}
	}
}

func queryCmd(ctx context.Context, w *widget.Widget, text string) tea.Cmd {
	return func() tea.Msg {
		return QueryDoneMsg{Err: w.SubmitQuery(ctx, text)}
	}
}

func clickCmd(ctx context.Context, w *widget.Widget, suggestion string) tea.Cmd {
	return func() tea.Msg {
		return QueryDoneMsg{Err: w.ClickSuggestion(ctx, suggestion)}
	}
}

func downloadCmd(ctx context.Context, w *widget.Widget) tea.Cmd {
	return func() tea.Msg {
		path, err := w.DownloadTranscript(ctx)
		return DownloadDoneMsg{Path: path, Err: err}
	}
}

func exportCmd(w *widget.Widget, opts *export.Options) tea.Cmd {
	return func() tea.Msg {
		path, err := w.Export("md", opts)
		return ExportDoneMsg{Path: path, Err: err}
	}
}
