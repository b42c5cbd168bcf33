// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/ui/styles"
)

func init() {
	lipgloss.SetColorProfile(colorProfile(os.Getenv, Stdio().OutputIsTerminal()))
}

// =============================================================================
// SHARED STYLES
// =============================================================================

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Brand)

	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Brand).
			Bold(true)

	botStyle = lipgloss.NewStyle().
			Foreground(styles.Accent).
			Bold(true)

	userStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	noticeStyle = lipgloss.NewStyle().
			Foreground(styles.Accent)

	errorStyle = lipgloss.NewStyle().
			Foreground(styles.Danger).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary).
			Width(16)
)
