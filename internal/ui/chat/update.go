// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/widget"
)

// NoticeHighInterest is shown when the service suggests a human follow-up.
const NoticeHighInterest = "Looks like our team could help directly. Pick the contact suggestion to get in touch."

// =============================================================================
// UPDATE LOOP
// =============================================================================

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, WaitForEvent(m.events)

	case eventsClosedMsg:
		return m, nil

	case InitDoneMsg:
		cmd := m.focusCurrent()
		return m, cmd

	case SubmitDoneMsg:
		m.submitting = false
		if msg.Err == nil {
			cmd := m.focusCurrent()
			return m, cmd
		}
		return m, nil

	case QueryDoneMsg:
		// Remote failures are already in the transcript; sentinel
		// rejections change nothing and stay silent.
		return m, nil

	case DownloadDoneMsg:
		// The widget reports the outcome through a notice event.
		return m, nil

	case ExportDoneMsg:
		if msg.Err != nil {
			m.setNotice("Export failed: "+msg.Err.Error(), true)
		} else {
			m.setNotice(fmt.Sprintf("Transcript exported to %s", msg.Path), false)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleEvent(ev widget.Event) {
	switch ev.Kind {
	case widget.EventNotice:
		m.setNotice(ev.Notice, false)
	case widget.EventHighInterest:
		m.setNotice(NoticeHighInterest, false)
	case widget.EventGate:
		if ev.Gate == widget.GateSubmitted {
			m.blurFields()
		}
	}
}

func (m *Model) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
		return m, nil

	case key.Matches(msg, m.keys.Download):
		return m, downloadCmd(m.ctx, m.widget)

	case key.Matches(msg, m.keys.Export):
		return m, exportCmd(m.widget, m.exportOpts)
	}

	if m.widget.Gate() == widget.GateCollecting {
		return m.handleFormKey(msg)
	}

	if idx, ok := suggestionIndex(msg.String()); ok {
		return m.clickSuggestion(idx)
	}
	return m.handleComposerKey(msg)
}

func (m Model) clickSuggestion(idx int) (Model, tea.Cmd) {
	suggestions := m.widget.Suggestions()
	if idx >= len(suggestions) || !m.widget.CanChat() {
		return m, nil
	}
	return m, clickCmd(m.ctx, m.widget, suggestions[idx])
}

func (m Model) handleComposerKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit) {
		text := strings.TrimSpace(m.composer.Value())
		if text == "" || !m.widget.CanChat() {
			return m, nil
		}
		m.composer.Reset()
		return m, queryCmd(m.ctx, m.widget, text)
	}

	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	return m, cmd
}
