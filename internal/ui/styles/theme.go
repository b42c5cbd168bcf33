// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds every style the chat host draws with.
type Theme struct {
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Header
	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style
	StatusOnline   lipgloss.Style
	StatusPending  lipgloss.Style
	StatusOffline  lipgloss.Style
	Banner         lipgloss.Style

	// Messages
	UserBubble  lipgloss.Style
	BotBubble   lipgloss.Style
	SenderLabel lipgloss.Style
	Timestamp   lipgloss.Style
	Typing      lipgloss.Style

	// Rich text runs inside bubbles
	Bold   lipgloss.Style
	Italic lipgloss.Style
	Link   lipgloss.Style

	// Lead form
	FormTitle      lipgloss.Style
	FieldLabel     lipgloss.Style
	FieldError     lipgloss.Style
	Input          lipgloss.Style
	InputFocused   lipgloss.Style
	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style

	// Suggestions
	Suggestion       lipgloss.Style
	SuggestionNumber lipgloss.Style
	FallbackPrompt   lipgloss.Style

	// Composer and footer
	Composer        lipgloss.Style
	ComposerBlocked lipgloss.Style
	Notice          lipgloss.Style
	ErrorText       lipgloss.Style
	Help            lipgloss.Style
	HelpKey         lipgloss.Style
}

// NewTheme creates a theme for the current terminal.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}
	t.initStyles()
	return t
}

func (t *Theme) initStyles() {
	// Header
	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Brand).
		Padding(0, 1)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Brand)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.StatusOnline = lipgloss.NewStyle().Foreground(Online)
	t.StatusPending = lipgloss.NewStyle().Foreground(Connecting)
	t.StatusOffline = lipgloss.NewStyle().Foreground(Offline)

	t.Banner = lipgloss.NewStyle().
		Foreground(Danger).
		Background(DangerDeep).
		Bold(true).
		Padding(0, 1)

	// Messages
	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		Background(UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(UserBubbleBorder).
		Padding(0, 1).
		MarginLeft(6)

	t.BotBubble = lipgloss.NewStyle().
		Foreground(BotBubbleFg).
		Background(BotBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(BotBubbleBorder).
		Padding(0, 1).
		MarginRight(6)

	t.SenderLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary)

	t.Timestamp = lipgloss.NewStyle().Foreground(TextMuted)

	t.Typing = lipgloss.NewStyle().
		Foreground(Accent).
		Italic(true)

	// Rich text
	t.Bold = lipgloss.NewStyle().Bold(true)
	t.Italic = lipgloss.NewStyle().Italic(true)
	t.Link = lipgloss.NewStyle().
		Foreground(LinkColor).
		Underline(true)

	// Lead form
	t.FormTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Brand).
		MarginBottom(1)

	t.FieldLabel = lipgloss.NewStyle().Foreground(TextSecondary)

	t.FieldError = lipgloss.NewStyle().Foreground(Danger)

	t.Input = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.InputFocused = lipgloss.NewStyle().
		Foreground(Brand).
		Bold(true)

	t.Button = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Brand).
		Bold(true).
		Padding(0, 2)

	t.ButtonFocused = t.Button.
		Underline(true)

	t.ButtonDisabled = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(Overlay).
		Padding(0, 2)

	// Suggestions
	t.Suggestion = lipgloss.NewStyle().
		Foreground(Accent).
		Background(SurfaceDim).
		Padding(0, 1)

	t.SuggestionNumber = lipgloss.NewStyle().
		Foreground(TextMuted).
		Bold(true)

	t.FallbackPrompt = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	// Composer and footer
	t.Composer = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Brand).
		Padding(0, 1)

	t.ComposerBlocked = t.Composer.
		BorderForeground(OverlayDim).
		Foreground(TextMuted)

	t.Notice = lipgloss.NewStyle().Foreground(Accent)
	t.ErrorText = lipgloss.NewStyle().Foreground(Danger)

	t.Help = lipgloss.NewStyle().Foreground(TextMuted)
	t.HelpKey = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Bold(true)
}

// StatusStyle picks the indicator style for a connectivity name
// ("online", "connecting" or anything else for offline).
func (t *Theme) StatusStyle(connectivity string) lipgloss.Style {
	switch connectivity {
	case "online":
		return t.StatusOnline
	case "connecting":
		return t.StatusPending
	default:
		return t.StatusOffline
	}
}

// Width returns the rendered cell width of s.
func Width(s string) int {
	return lipgloss.Width(s)
}
