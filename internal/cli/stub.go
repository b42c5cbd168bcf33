// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/logging"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/server"
)

const shutdownTimeout = 10 * time.Second

func newStubCmd(g *globals) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "stub",
		Short: "Run the reference chat service for local development",
		Long: `Serve the chat HTTP API from memory: sessions by cookie, lead capture, a
small FAQ with suggestions and intent scoring, contact requests and Markdown
transcripts. Nothing is persisted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				g.cfg.Stub.Addr = addr
			}
			log, closer, err := logging.New(logging.FromConfig(g.cfg.Log, false))
			if err != nil {
				return errors.Wrap(err, "set up logging")
			}
			defer closer.Close()

			srv := server.New(server.FromConfig(g.cfg, log))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Start() }()

			select {
			case err := <-errCh:
				return errors.Wrap(err, "serve")
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return errors.Wrap(err, "shutdown")
			}
			return <-errCh
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: stub.addr)")
	return cmd
}
