// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/ui/styles"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/util"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/validate"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/widget"
)

const labelWidth = 14

// =============================================================================
// HEADER
// =============================================================================

func (m Model) headerView() string {
	st := m.widget.Status()

	title := m.theme.HeaderTitle.Render(m.widget.Organization())
	indicator := m.theme.StatusStyle(string(st.Connectivity)).Render(styles.StatusDot + " " + st.Label())
	subtitle := m.theme.HeaderSubtitle.Render("Ask us anything")

	inner := m.width - 4
	if inner < 20 {
		inner = 20
	}
	left := title + "  " + subtitle
	gap := inner - lipgloss.Width(left) - lipgloss.Width(indicator)
	if gap < 1 {
		gap = 1
	}
	header := m.theme.Header.Width(inner + 2).Render(left + strings.Repeat(" ", gap) + indicator)

	if st.ConnectionBanner {
		return lipgloss.JoinVertical(lipgloss.Left, header, m.theme.Banner.Render(widget.MsgConnectionIssue))
	}
	return header
}

// =============================================================================
// BOTTOM SECTION
// =============================================================================

func (m Model) bottomView() string {
	var parts []string

	if m.widget.IsTyping() {
		parts = append(parts, m.spinner.View()+m.theme.Typing.Render(" "+m.widget.Organization()+" is typing..."))
	}

	if m.widget.Gate() == widget.GateCollecting {
		parts = append(parts, m.formView())
	} else {
		if s := m.suggestionsView(); s != "" {
			parts = append(parts, s)
		}
		parts = append(parts, m.composerView())
	}

	if m.notice != "" {
		if m.noticeErr {
			parts = append(parts, styles.RenderError(m.notice))
		} else {
			parts = append(parts, styles.RenderNotice(m.notice))
		}
	}

	bindings := m.keys.ChatHelp()
	if m.widget.Gate() == widget.GateCollecting {
		bindings = m.keys.FormHelp()
	}
	parts = append(parts, m.help.ShortHelpView(bindings))

	return strings.Join(parts, "\n")
}

func (m Model) suggestionsView() string {
	if suggestions := m.widget.Suggestions(); len(suggestions) > 0 {
		return renderSuggestions(m.theme, suggestions)
	}
	if prompt, ok := m.widget.FallbackPrompt(); ok {
		return m.theme.FallbackPrompt.Render(prompt)
	}
	return ""
}

func (m Model) composerView() string {
	width := m.width - 2
	if width < 20 {
		width = 20
	}
	if !m.widget.CanChat() {
		return m.theme.ComposerBlocked.Width(width).Render("Chat is unavailable until the session connects.")
	}
	return m.theme.Composer.Width(width).Render(m.composer.View())
}

// formView draws the four lead inputs with their live errors and the
// submit button, which stays disabled until the form is valid.
func (m Model) formView() string {
	errs := m.widget.FieldErrors()
	lines := []string{m.theme.FormTitle.Render("Tell us a little about yourself to start chatting")}

	for i, f := range validate.Fields {
		label := util.PadWidth(f.Label(), labelWidth)
		marker := "  "
		style := m.theme.FieldLabel
		if i == m.focus {
			marker = "> "
			style = m.theme.InputFocused
		}
		lines = append(lines, style.Render(marker+label)+m.theme.Input.Render(m.fields[i].View()))
		if msg := errs[f]; msg != "" {
			lines = append(lines, strings.Repeat(" ", labelWidth+2)+m.theme.FieldError.Render(msg))
		}
	}

	lines = append(lines, "", m.buttonView())
	return strings.Join(lines, "\n")
}

func (m Model) buttonView() string {
	switch {
	case m.submitting:
		return m.theme.ButtonDisabled.Render("Submitting...")
	case !m.widget.CanSubmit():
		return m.theme.ButtonDisabled.Render("Start chatting")
	case m.onButton():
		return m.theme.ButtonFocused.Render("> Start chatting")
	default:
		return m.theme.Button.Render("Start chatting")
	}
}
