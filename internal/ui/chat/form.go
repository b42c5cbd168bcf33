// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/validate"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/widget"
)

// =============================================================================
// LEAD FORM
// =============================================================================

func (m Model) onButton() bool {
	return m.focus == len(m.fields)
}

func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextField):
		return m.moveFocus(1)

	case key.Matches(msg, m.keys.PrevField):
		return m.moveFocus(-1)

	case key.Matches(msg, m.keys.Submit):
		if !m.onButton() {
			return m.moveFocus(1)
		}
		if m.submitting || !m.widget.CanSubmit() {
			return m, nil
		}
		m.submitting = true
		return m, submitCmd(m.ctx, m.widget)
	}

	if m.onButton() {
		return m, nil
	}

	field := validate.Fields[m.focus]
	before := m.fields[m.focus].Value()

	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)

	if after := m.fields[m.focus].Value(); after != before {
		// Errors come back through the form event; ErrAlreadySubmitted only
		// races a finished submit.
		_, _ = m.widget.SetField(field, after)
	}
	return m, cmd
}

// moveFocus blurs the current field, validating it, and focuses the next
// stop, wrapping around the submit button.
func (m Model) moveFocus(delta int) (Model, tea.Cmd) {
	if !m.onButton() {
		m.widget.Blur(validate.Fields[m.focus])
	}
	stops := len(m.fields) + 1
	m.focus = (m.focus + delta + stops) % stops
	cmd := m.focusCurrent()
	return m, cmd
}

// focusCurrent gives the cursor to the focused form field, or to the
// composer once the visitor is past the gate.
func (m *Model) focusCurrent() tea.Cmd {
	if m.widget.Gate() == widget.GateSubmitted {
		m.blurFields()
		return m.composer.Focus()
	}

	m.composer.Blur()
	var cmd tea.Cmd
	for i := range m.fields {
		if i == m.focus {
			cmd = m.fields[i].Focus()
		} else {
			m.fields[i].Blur()
		}
	}
	if cmd == nil {
		return textinput.Blink
	}
	return cmd
}

func (m *Model) blurFields() {
	for i := range m.fields {
		m.fields[i].Blur()
	}
}
