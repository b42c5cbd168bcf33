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

	"github.com/charmbracelet/glamour"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/widget"
)

func newTranscriptCmd(g *globals) *cobra.Command {
	var (
		dir  string
		show bool
	)

	cmd := &cobra.Command{
		Use:   "transcript",
		Short: "Download the transcript of the stored session",
		Long: `Resume the session remembered from the last chat and save the service's
transcript artifact. The file is named after the visitor's first name.
With --print, a Markdown transcript is also rendered to the terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir != "" {
				g.cfg.Transcript.Dir = dir
			}
			a, err := newApp(g.cfg, false)
			if err != nil {
				return err
			}
			defer a.Close()

			path, err := downloadStored(cmd.Context(), a, func(ev widget.Event) {
				if ev.Kind == widget.EventNotice {
					fmt.Fprintln(cmd.ErrOrStderr(), infoStyle.Render(ev.Notice))
				}
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			if show {
				term := Stdio()
				return printTranscript(cmd.OutOrStdout(), path, term.OutputIsTerminal(), term.Width())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "directory to save into (default: transcript.dir)")
	cmd.Flags().BoolVarP(&show, "print", "p", false, "render a Markdown transcript after saving")
	return cmd
}

// downloadStored resumes the recorded session and downloads its transcript.
func downloadStored(ctx context.Context, a *app, onEvent func(widget.Event)) (string, error) {
	if a.store != nil {
		id, err := a.store.SessionID()
		if err != nil {
			return "", errors.Wrap(err, "read stored session")
		}
		if id == "" {
			return "", errors.Wrap(widget.ErrNoSession, "no stored session; start one with 'chatwidget chat'")
		}
	}

	opts := a.widgetOptions(onEvent)
	opts.SkipHistoryReplay = true
	opts.EndSessionOnClose = false

	factory := widget.NewFactory()
	w, err := factory.Init(ctx, a.client, opts)
	if err != nil {
		return "", errors.Wrap(err, "resume session")
	}
	defer factory.Destroy(ctx)

	path, err := w.DownloadTranscript(ctx)
	if err != nil {
		return "", errors.Wrap(err, "download transcript")
	}
	return path, nil
}

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// printTranscript writes a saved Markdown transcript to out, rendered with
// glamour at width when render is set and copied as-is otherwise. Other
// formats are skipped with a note.
func printTranscript(out io.Writer, path string, render bool, width int) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".md" && ext != ".markdown" {
		fmt.Fprintln(out, infoStyle.Render("not a Markdown transcript; open "+path+" to read it"))
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read transcript")
	}
	if !render {
		_, err = out.Write(data)
		return err
	}
	fmt.Fprint(out, renderMarkdown(string(data), width))
	return nil
}

// renderMarkdown renders content for the terminal, falling back to the
// raw text when glamour fails.
func renderMarkdown(content string, width int) string {
	if width <= 0 || width > 100 {
		width = 100
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-2),
	)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
