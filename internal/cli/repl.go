// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/export"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/model"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/richtext"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/ui/chat"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/ui/styles"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/validate"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/widget"
)

// errQuit ends the REPL without an error.
var errQuit = errors.New("quit")

// Prompter reads one line of input.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// repl drives a widget from a line-oriented terminal.
type repl struct {
	w          *widget.Widget
	in         Prompter
	out        io.Writer
	theme      *styles.Theme
	exportOpts *export.Options
	// plain drops styling when out is not a terminal.
	plain bool

	// lastShown is the id of the last message printed.
	lastShown string
}

func newREPL(in Prompter, out io.Writer, exportOpts *export.Options) *repl {
	return &repl{
		in:         in,
		out:        out,
		theme:      styles.NewTheme(),
		exportOpts: exportOpts,
		plain:      !writesToTerminal(out),
	}
}

// onEvent is the widget's OnEvent callback. Only side-channel events print
// here; messages are printed by flush after each operation.
func (r *repl) onEvent(ev widget.Event) {
	switch ev.Kind {
	case widget.EventNotice:
		fmt.Fprintln(r.out, noticeStyle.Render("[i] "+ev.Notice))
	case widget.EventTyping:
		if ev.Typing && r.w != nil {
			fmt.Fprintln(r.out, infoStyle.Render(r.w.Organization()+" is typing..."))
		}
	case widget.EventHighInterest:
		fmt.Fprintln(r.out, noticeStyle.Render("[i] "+chat.NoticeHighInterest))
	}
}

// =============================================================================
// LEAD CAPTURE
// =============================================================================

// captureLead prompts for each lead field until it validates, then submits.
// Submission failures keep the values and offer a retry.
func (r *repl) captureLead(ctx context.Context) error {
	if r.w.Gate() == widget.GateSubmitted {
		return nil
	}

	fmt.Fprintln(r.out, titleStyle.Render("Tell us a little about yourself to start chatting"))
	for _, f := range validate.Fields {
		for {
			value, err := r.in.Prompt(labelStyle.Render(f.Label()+":") + " ")
			if err != nil {
				return err
			}
			msg, err := r.w.SetField(f, value)
			if err != nil {
				return err
			}
			if msg == "" {
				break
			}
			fmt.Fprintln(r.out, errorStyle.Render(msg))
		}
	}

	for {
		err := r.w.Submit(ctx)
		r.flush()
		if err == nil {
			return nil
		}
		if errors.Is(err, widget.ErrSessionNotReady) || errors.Is(err, widget.ErrFormInvalid) {
			return err
		}

		answer, perr := r.in.Prompt(infoStyle.Render("Press Enter to retry, or type /quit: "))
		if perr != nil {
			return perr
		}
		if isQuit(answer) {
			return errQuit
		}
	}
}

// =============================================================================
// COMMANDS
// =============================================================================

// rejected reports a query the widget turned away without changing state.
func rejected(err error) bool {
	for _, target := range []error{widget.ErrBusy, widget.ErrEmptyQuery, widget.ErrNotSubmitted, widget.ErrSessionNotReady} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// handleLine runs one line of input. It returns errQuit to stop.
func (r *repl) handleLine(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	if isQuit(line) {
		return errQuit
	}

	if !strings.HasPrefix(line, "/") {
		err := r.w.SubmitQuery(ctx, line)
		r.flush()
		r.printSuggestions()
		if rejected(err) {
			return nil
		}
		return err
	}

	fields := strings.Fields(line)
	switch fields[0] {
	case "/help", "/?":
		r.printHelp()
		return nil

	case "/status":
		r.printStatus()
		return nil

	case "/s", "/suggest":
		if len(fields) != 2 {
			return &UsageError{Msg: "usage: /s N"}
		}
		n, err := strconv.Atoi(fields[1])
		suggestions := r.w.Suggestions()
		if err != nil || n < 1 || n > len(suggestions) {
			return &UsageError{Msg: fmt.Sprintf("no suggestion %q (have %d)", fields[1], len(suggestions))}
		}
		err = r.w.ClickSuggestion(ctx, suggestions[n-1])
		r.flush()
		r.printSuggestions()
		if rejected(err) {
			return nil
		}
		return err

	case "/download":
		// Success and failure are both reported through notices.
		_, err := r.w.DownloadTranscript(ctx)
		return errors.Wrap(err, "download transcript")

	case "/export":
		format := "md"
		if len(fields) > 1 {
			format = fields[1]
		}
		path, err := r.w.Export(format, r.exportOpts)
		if err != nil {
			return errors.Wrap(err, "export transcript")
		}
		fmt.Fprintln(r.out, noticeStyle.Render("[i] Transcript exported to "+path))
		return nil

	default:
		return &UsageError{Msg: fmt.Sprintf("unknown command %s (try /help)", fields[0])}
	}
}

func isQuit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "/quit", "/exit", "quit", "exit":
		return true
	}
	return false
}

// =============================================================================
// OUTPUT
// =============================================================================

// flush prints the messages added since the last flush. When the transcript
// was reset the whole of it is printed again.
func (r *repl) flush() {
	msgs := r.w.Messages()
	start := 0
	if r.lastShown != "" {
		for i, m := range msgs {
			if m.ID == r.lastShown {
				start = i + 1
				break
			}
		}
	}
	for _, m := range msgs[start:] {
		r.printMessage(m)
	}
	if len(msgs) > 0 {
		r.lastShown = msgs[len(msgs)-1].ID
	}
}

func (r *repl) printMessage(m model.Message) {
	if m.IsUser() {
		fmt.Fprintln(r.out, userStyle.Render("You:")+" "+m.Text)
		return
	}
	fmt.Fprintln(r.out, botStyle.Render(r.w.Organization()+":"))
	segs := richtext.Format(m.Text)
	if r.plain {
		fmt.Fprintln(r.out, richtext.PlainText(segs))
	} else {
		fmt.Fprintln(r.out, chat.RenderSegments(r.theme, segs))
	}
	fmt.Fprintln(r.out)
}

func (r *repl) printSuggestions() {
	suggestions := r.w.Suggestions()
	if len(suggestions) == 0 {
		if prompt, ok := r.w.FallbackPrompt(); ok {
			fmt.Fprintln(r.out, infoStyle.Render(prompt))
		}
		return
	}
	fmt.Fprintln(r.out, infoStyle.Render("Suggestions (/s N):"))
	for i, s := range suggestions {
		fmt.Fprintf(r.out, "  %d. %s\n", i+1, s)
	}
}

func (r *repl) printStatus() {
	st := r.w.Status()
	rows := [][2]string{
		{"Organization", r.w.Organization()},
		{"Status", st.Label()},
		{"Session", orDash(st.SessionID)},
		{"Lead form", st.Gate.String()},
		{"Messages", strconv.Itoa(len(r.w.Messages()))},
	}
	if intent := r.w.LastIntent(); intent != nil {
		rows = append(rows, [2]string{"Last intent", fmt.Sprintf("%s (%.2f)", intent.Type, intent.Confidence)})
	}
	for _, row := range rows {
		fmt.Fprintln(r.out, labelStyle.Render(row[0])+row[1])
	}
}

func (r *repl) printHelp() {
	lines := []string{
		"<question>          ask a question",
		"/s N                click suggestion N",
		"/download           download the service transcript",
		"/export [md|json|html]  render the transcript locally",
		"/status             session and connection status",
		"/quit               leave",
	}
	for _, l := range lines {
		fmt.Fprintln(r.out, infoStyle.Render(l))
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
