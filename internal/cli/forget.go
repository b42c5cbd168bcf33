// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/storage"
)

func newForgetCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "forget",
		Short: "Forget the stored session and cookies",
		Long: `Clear the remembered session id and every stored cookie. The next chat
starts as a new visitor and asks for contact details again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storage.Open(g.cfg.Storage.Path)
			if err != nil {
				return errors.Wrap(err, "open state database")
			}
			defer store.Close()
			return forget(cmd.OutOrStdout(), store)
		},
	}
}

func forget(out io.Writer, store *storage.Store) error {
	id, err := store.SessionID()
	if err != nil {
		return errors.Wrap(err, "read stored session")
	}
	if err := store.Forget(); err != nil {
		return errors.Wrap(err, "clear local state")
	}
	if id == "" {
		fmt.Fprintln(out, successLine("Nothing stored; local state cleared"))
		return nil
	}
	fmt.Fprintln(out, successLine("Forgot session "+id))
	return nil
}
