// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/model"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/richtext"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/ui/styles"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/util"
)

const (
	maxBubbleWidth     = 72
	minBubbleWidth     = 20
	maxSuggestionWidth = 60
)

// =============================================================================
// RICH TEXT
// =============================================================================

// RenderSegments styles formatted segments for the terminal. Links and
// email addresses are underlined; their targets are the visible text.
func RenderSegments(theme *styles.Theme, segs []richtext.Segment) string {
	var b strings.Builder
	for _, seg := range segs {
		switch seg.Kind {
		case richtext.KindBold:
			b.WriteString(theme.Bold.Render(seg.Text))
		case richtext.KindItalic:
			b.WriteString(theme.Italic.Render(seg.Text))
		case richtext.KindLink, richtext.KindEmail:
			b.WriteString(theme.Link.Render(seg.Text))
		case richtext.KindLineBreak:
			b.WriteByte('\n')
		default:
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

// =============================================================================
// MESSAGES
// =============================================================================

// bubbleWidth is the content width of a message bubble for a window width.
func bubbleWidth(width int) int {
	w := width - 12
	if w > maxBubbleWidth {
		w = maxBubbleWidth
	}
	if w < minBubbleWidth {
		w = minBubbleWidth
	}
	return w
}

// renderMessage draws one bubble with its sender line. Bot text goes through
// the rich-text formatter; visitor text is shown as typed.
func renderMessage(theme *styles.Theme, msg model.Message, botName string, width int) string {
	name := msg.Sender.DisplayName()
	if !msg.IsUser() && botName != "" {
		name = botName
	}
	label := theme.SenderLabel.Render(name) + " " + theme.Timestamp.Render(msg.Timestamp.Format("15:04"))

	body := msg.Text
	style := theme.UserBubble
	if !msg.IsUser() {
		body = RenderSegments(theme, richtext.Format(msg.Text))
		style = theme.BotBubble
	}
	bubble := style.Width(bubbleWidth(width)).Render(body)

	if msg.IsUser() {
		block := lipgloss.JoinVertical(lipgloss.Right, label, bubble)
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, block)
	}
	return lipgloss.JoinVertical(lipgloss.Left, label, bubble)
}

// renderTranscript draws every message, oldest first.
func renderTranscript(theme *styles.Theme, msgs []model.Message, botName string, width int) string {
	parts := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		parts = append(parts, renderMessage(theme, msg, botName, width))
	}
	return strings.Join(parts, "\n\n")
}

// =============================================================================
// SUGGESTIONS
// =============================================================================

// suggestionLabel numbers and truncates one suggestion chip.
func suggestionLabel(index int, text string) string {
	return fmt.Sprintf("%d. %s", index+1, util.TruncateWidth(util.OneLine(text), maxSuggestionWidth))
}

// renderSuggestions lays the chips out one per line. Only the first nine
// get a shortcut.
func renderSuggestions(theme *styles.Theme, suggestions []string) string {
	lines := make([]string, 0, len(suggestions))
	for i, s := range suggestions {
		if i >= 9 {
			lines = append(lines, theme.Suggestion.Render(util.TruncateWidth(util.OneLine(s), maxSuggestionWidth)))
			continue
		}
		key := theme.SuggestionNumber.Render(fmt.Sprintf("alt+%d", i+1))
		lines = append(lines, key+" "+theme.Suggestion.Render(suggestionLabel(i, s)))
	}
	return strings.Join(lines, "\n")
}
