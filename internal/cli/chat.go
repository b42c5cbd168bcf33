// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/config"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/widget"
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// LineReader is a Prompter with line editing and persistent history.
type LineReader struct {
	line        *liner.State
	historyFile string
}

// NewLineReader creates a reader whose history lives in the config directory.
func NewLineReader() *LineReader {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}
	r := &LineReader{line: line, historyFile: filepath.Join(configDir, "chat_history")}
	if f, err := os.Open(r.historyFile); err == nil {
		_, _ = r.line.ReadHistory(f)
		f.Close()
	}
	return r
}

// Prompt reads a line. Non-empty input is added to the history.
func (r *LineReader) Prompt(prompt string) (string, error) {
	input, err := r.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}
	return input, nil
}

// Close saves the history and restores the terminal.
func (r *LineReader) Close() {
	if err := os.MkdirAll(filepath.Dir(r.historyFile), 0700); err == nil {
		if f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600); err == nil {
			_, _ = r.line.WriteHistory(f)
			f.Close()
		}
	}
	r.line.Close()
}

// =============================================================================
// CHAT COMMAND
// =============================================================================

func newChatCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Chat in a line-oriented REPL",
		Long: `Start a widget session in a simple REPL. New visitors are asked for their
details first. Type a question to ask it, or one of:

  /s N                click suggestion N
  /download           download the service transcript
  /export md|json|html  render the transcript locally
  /status             session and connection status
  /quit               leave`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(g.cfg, false)
			if err != nil {
				return err
			}
			defer a.Close()

			in := NewLineReader()
			defer in.Close()

			return runREPL(cmd.Context(), a, in, cmd.OutOrStdout())
		},
	}
}

// runREPL mounts a widget and runs the read-eval loop until quit or EOF.
func runREPL(ctx context.Context, a *app, in Prompter, out io.Writer) error {
	r := newREPL(in, out, a.exportOptions())

	factory := widget.NewFactory()
	w, initErr := factory.Init(ctx, a.client, a.widgetOptions(r.onEvent))
	if w == nil {
		return errors.Wrap(initErr, "start widget")
	}
	r.w = w
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if err := factory.Destroy(closeCtx); err != nil {
			a.log.Warn().Err(err).Msg("end session failed")
		}
	}()

	fmt.Fprintln(out, titleStyle.Render(w.Organization()+" chat")+"  "+infoStyle.Render(w.Status().Label()))
	r.flush()
	if initErr != nil {
		return errors.Wrap(initErr, "connect to chat service")
	}

	if err := r.captureLead(ctx); err != nil {
		return quitIsNil(err)
	}
	r.printSuggestions()

	for {
		line, err := in.Prompt(promptStyle.Render("you> "))
		if err != nil {
			// Ctrl+C or EOF.
			fmt.Fprintln(out)
			return nil
		}
		if err := r.handleLine(ctx, line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			fmt.Fprintln(out, errorStyle.Render("[Error]"), err)
		}
	}
}

func quitIsNil(err error) error {
	if errors.Is(err, errQuit) || errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
