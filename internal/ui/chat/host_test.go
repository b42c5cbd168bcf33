// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/backend"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/export"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/server"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/validate"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/widget"
)

// memSaver keeps downloads in memory.
type memSaver struct {
	names []string
}

func (s *memSaver) Save(filename string, data []byte, contentType string) (string, error) {
	s.names = append(s.names, filename)
	return "/downloads/" + filename, nil
}

type host struct {
	m      Model
	w      *widget.Widget
	bridge *EventBridge
	saver  *memSaver
}

func newHost(t *testing.T, url string) *host {
	t.Helper()
	bridge := NewEventBridge(64)
	t.Cleanup(bridge.Close)

	saver := &memSaver{}
	client := backend.NewClientWithConfig(&backend.ClientConfig{BaseURL: url})
	w := widget.New(client, widget.Options{OnEvent: bridge.Send, Saver: saver})

	m := New(context.Background(), w, bridge, nil).
		WithExportOptions(&export.Options{OutputDir: t.TempDir(), IncludeMetadata: true})
	h := &host{m: m, w: w, bridge: bridge, saver: saver}
	h.send(tea.WindowSizeMsg{Width: 100, Height: 40})
	return h
}

func referenceServer(t *testing.T) string {
	t.Helper()
	cfg := server.DefaultConfig()
	cfg.RateLimit = 0
	ts := httptest.NewServer(server.New(cfg).Handler())
	t.Cleanup(ts.Close)
	return ts.URL
}

func (h *host) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.m.Update(msg)
	h.m = next.(Model)
	return cmd
}

// run executes cmd synchronously and feeds its message back.
func (h *host) run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	h.send(msg)
	return msg
}

func (h *host) typeText(text string) {
	for _, r := range text {
		h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *host) initialize(t *testing.T) {
	t.Helper()
	msg := h.run(t, initCmd(context.Background(), h.w))
	require.NoError(t, msg.(InitDoneMsg).Err)
}

func (h *host) fillForm(t *testing.T) {
	t.Helper()
	values := []string{"Jane Doe", "jane@example.com", "9876543210", "Acme"}
	for _, v := range values {
		h.typeText(v)
		h.send(tea.KeyMsg{Type: tea.KeyTab})
	}
	require.True(t, h.m.onButton())
}

// =============================================================================
// LEAD FORM
// =============================================================================

func TestHost_ShowsFormAndStatus(t *testing.T) {
	h := newHost(t, referenceServer(t))
	h.initialize(t)

	view := h.m.View()
	assert.Contains(t, view, "Online")
	assert.Contains(t, view, "Tell us a little about yourself")
	assert.Contains(t, view, "Start chatting")
	assert.Equal(t, widget.GateCollecting, h.w.Gate())
}

func TestHost_LiveFieldErrors(t *testing.T) {
	h := newHost(t, referenceServer(t))
	h.initialize(t)

	h.typeText("J4")
	assert.Equal(t, "J4", h.w.Profile().Name)
	assert.Equal(t, validate.MsgInvalidName, h.w.FieldErrors()[validate.FieldName])
	assert.Contains(t, h.m.View(), validate.MsgInvalidName)
}

func TestHost_SubmitDisabledUntilValid(t *testing.T) {
	h := newHost(t, referenceServer(t))
	h.initialize(t)

	for i := 0; i < len(validate.Fields); i++ {
		h.send(tea.KeyMsg{Type: tea.KeyTab})
	}
	require.True(t, h.m.onButton())

	cmd := h.send(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, h.m.submitting)
}

func TestHost_SubmitOpensChat(t *testing.T) {
	h := newHost(t, referenceServer(t))
	h.initialize(t)
	h.fillForm(t)

	cmd := h.send(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, h.m.submitting)
	msg := h.run(t, cmd)
	require.NoError(t, msg.(SubmitDoneMsg).Err)

	assert.False(t, h.m.submitting)
	assert.Equal(t, widget.GateSubmitted, h.w.Gate())
	assert.True(t, h.m.composer.Focused())
	assert.Contains(t, h.m.View(), "Great to meet you, Jane!")
}

// =============================================================================
// CHATTING
// =============================================================================

func chattingHost(t *testing.T) *host {
	t.Helper()
	h := newHost(t, referenceServer(t))
	h.initialize(t)
	h.fillForm(t)
	h.run(t, h.send(tea.KeyMsg{Type: tea.KeyEnter}))
	require.True(t, h.w.CanChat())
	return h
}

func TestHost_QueryShowsAnswerAndSuggestions(t *testing.T) {
	h := chattingHost(t)

	h.typeText("What is EPR?")
	cmd := h.send(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, h.m.composer.Value())
	msg := h.run(t, cmd)
	require.NoError(t, msg.(QueryDoneMsg).Err)

	require.NotEmpty(t, h.w.Suggestions())
	view := h.m.View()
	assert.Contains(t, view, "alt+1")
	assert.Contains(t, view, "What is EPR?")
}

func TestHost_RejectedQueryStaysQuiet(t *testing.T) {
	h := chattingHost(t)
	before := len(h.w.Messages())
	notice := h.m.Notice()

	for _, err := range []error{widget.ErrSessionNotReady, widget.ErrBusy, widget.ErrNotSubmitted} {
		assert.Nil(t, h.send(QueryDoneMsg{Err: err}))
		assert.Equal(t, notice, h.m.Notice())
	}
	assert.Len(t, h.w.Messages(), before)
}

func TestHost_EmptyComposerDoesNothing(t *testing.T) {
	h := chattingHost(t)
	h.typeText("   ")
	assert.Nil(t, h.send(tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestHost_SuggestionShortcut(t *testing.T) {
	h := chattingHost(t)
	h.typeText("What is EPR?")
	h.run(t, h.send(tea.KeyMsg{Type: tea.KeyEnter}))

	before := len(h.w.Messages())
	first := h.w.Suggestions()[0]

	cmd := h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}, Alt: true})
	h.run(t, cmd)

	msgs := h.w.Messages()
	require.Greater(t, len(msgs), before)
	assert.Equal(t, first, msgs[before].Text)
}

func TestHost_SuggestionShortcutOutOfRange(t *testing.T) {
	h := chattingHost(t)
	cmd := h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'9'}, Alt: true})
	assert.Nil(t, cmd)
}

func TestHost_DownloadAndExport(t *testing.T) {
	h := chattingHost(t)
	h.typeText("What is EPR?")
	h.run(t, h.send(tea.KeyMsg{Type: tea.KeyEnter}))

	msg := h.run(t, h.send(tea.KeyMsg{Type: tea.KeyCtrlD}))
	dl := msg.(DownloadDoneMsg)
	require.NoError(t, dl.Err)
	assert.Equal(t, "/downloads/Jane_chat_transcript.md", dl.Path)

	msg = h.run(t, h.send(tea.KeyMsg{Type: tea.KeyCtrlE}))
	ex := msg.(ExportDoneMsg)
	require.NoError(t, ex.Err)
	assert.True(t, strings.HasSuffix(ex.Path, ".md"))
	assert.Contains(t, h.m.Notice(), "Transcript exported to")
}

func TestHost_Offline(t *testing.T) {
	h := newHost(t, "http://127.0.0.1:1")
	msg := h.run(t, initCmd(context.Background(), h.w))
	require.Error(t, msg.(InitDoneMsg).Err)

	view := h.m.View()
	assert.Contains(t, view, "Offline")
	assert.Contains(t, view, widget.MsgConnectionIssue)
	assert.False(t, h.w.CanSubmit())
}

func TestHost_EventsUpdateNotice(t *testing.T) {
	h := newHost(t, referenceServer(t))

	cmd := h.send(EventMsg{Event: widget.Event{Kind: widget.EventNotice, Notice: "saved"}})
	assert.NotNil(t, cmd, "the pump re-arms after every event")
	assert.Equal(t, "saved", h.m.Notice())

	h.send(EventMsg{Event: widget.Event{Kind: widget.EventHighInterest}})
	assert.Equal(t, NoticeHighInterest, h.m.Notice())
}

func TestHost_Quit(t *testing.T) {
	h := newHost(t, referenceServer(t))
	cmd := h.send(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, h.m.View())
}
