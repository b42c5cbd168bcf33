// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/ui/chat"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/ui/styles"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/widget"
)

// closeTimeout bounds the end_session call on the way out.
const closeTimeout = 5 * time.Second

func newTUICmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the full-screen chat widget (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, g)
		},
	}
}

func runTUI(cmd *cobra.Command, g *globals) error {
	if !Stdio().Interactive() {
		return &UsageError{Msg: "the full-screen widget needs a terminal; use 'chatwidget chat' instead"}
	}

	a, err := newApp(g.cfg, true)
	if err != nil {
		return err
	}
	defer a.Close()

	bridge := chat.NewEventBridge(256)
	w := widget.New(a.client, a.widgetOptions(bridge.Send))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	m := chat.New(ctx, w, bridge, styles.NewTheme()).WithExportOptions(a.exportOptions())
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, runErr := p.Run()

	cancel()
	closeCtx, done := context.WithTimeout(context.Background(), closeTimeout)
	defer done()
	if err := w.Close(closeCtx); err != nil {
		a.log.Warn().Err(err).Msg("end session failed")
	}
	bridge.Close()

	return errors.Wrap(runErr, "run TUI")
}
