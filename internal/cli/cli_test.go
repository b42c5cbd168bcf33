// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/backend"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/config"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/server"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/storage"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/validate"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/widget"
)

// =============================================================================
// EXIT CODES
// =============================================================================

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"usage", &UsageError{Msg: "bad"}, ExitUsageError},
		{"config", errors.Wrap(config.ValidateErrors{{Field: "Backend.BaseURL", Message: "required"}}, "load"), ExitConfigError},
		{"connection", errors.Wrap(&backend.ClientError{Type: backend.ErrTypeConnection}, "start"), ExitNetworkError},
		{"timeout", &backend.ClientError{Type: backend.ErrTypeTimeout}, ExitTimeoutError},
		{"not found", &backend.ClientError{Type: backend.ErrTypeStatus, Status: 404}, ExitNotFoundError},
		{"server error", &backend.ClientError{Type: backend.ErrTypeStatus, Status: 500}, ExitNetworkError},
		{"no session", errors.Wrap(widget.ErrNoSession, "download"), ExitNotFoundError},
		{"other", fmt.Errorf("boom"), ExitGeneralError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

// =============================================================================
// COMMANDS
// =============================================================================

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	return home
}

func TestVersionCmd(t *testing.T) {
	out, err := runRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "chatwidget "+Version)
	assert.Contains(t, out, "Commit")
}

func TestConfigInitShowPath(t *testing.T) {
	home := isolateHome(t)
	want := filepath.Join(home, ".chatwidget", "config.toml")

	out, err := runRoot(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, want+"\n", out)

	_, err = runRoot(t, "config", "init")
	require.NoError(t, err)
	assert.FileExists(t, want)

	_, err = runRoot(t, "config", "init")
	var usage *UsageError
	assert.ErrorAs(t, err, &usage)

	out, err = runRoot(t, "config", "show", "--backend-url", "http://chat.example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "[backend]")
	assert.Contains(t, out, "http://chat.example.com")
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "widget.toml")
	require.NoError(t, os.WriteFile(path, []byte("[widget]\norganization = \"Acme\"\n"), 0600))

	cfg, err := loadConfig(&globals{configPath: path, backendURL: "http://svc:9000", logLevel: "debug"})
	require.NoError(t, err)
	assert.Equal(t, "Acme", cfg.Widget.Organization)
	assert.Equal(t, "http://svc:9000", cfg.Backend.BaseURL)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_InvalidFlag(t *testing.T) {
	isolateHome(t)
	_, err := loadConfig(&globals{logLevel: "loud"})
	require.Error(t, err)
	assert.Equal(t, ExitConfigError, ExitCode(err))
}

// =============================================================================
// REPL
// =============================================================================

// script answers prompts from a fixed list, then reports EOF.
type script struct {
	lines   []string
	prompts []string
}

func (s *script) Prompt(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func testApp(t *testing.T) *app {
	t.Helper()
	scfg := server.DefaultConfig()
	scfg.RateLimit = 0
	ts := httptest.NewServer(server.New(scfg).Handler())
	t.Cleanup(ts.Close)

	cfg := config.Default()
	cfg.Backend.BaseURL = ts.URL
	cfg.Transcript.Dir = t.TempDir()
	return &app{
		cfg:    cfg,
		log:    zerolog.Nop(),
		client: backend.NewClientWithConfig(&backend.ClientConfig{BaseURL: ts.URL}),
	}
}

func TestREPL_FullSession(t *testing.T) {
	a := testApp(t)
	in := &script{lines: []string{
		"J4", "Jane Doe", "jane@example.com", "9876543210", "Acme",
		"What is EPR?",
		"/s 1",
		"/status",
		"/export json",
		"/download",
		"/bogus",
		"/quit",
	}}
	var out bytes.Buffer

	require.NoError(t, runREPL(context.Background(), a, in, &out))

	text := out.String()
	assert.Contains(t, text, validate.MsgInvalidName)
	assert.Contains(t, text, "Great to meet you, Jane!")
	assert.Contains(t, text, "You: What is EPR?")
	assert.Contains(t, text, "Suggestions (/s N):")
	assert.Contains(t, text, "Online")
	assert.Contains(t, text, "Transcript exported to")
	assert.Contains(t, text, "Transcript saved to")
	assert.Contains(t, text, "unknown command /bogus")
	assert.Empty(t, in.lines)

	saved, err := filepath.Glob(filepath.Join(a.cfg.Transcript.Dir, "Jane_chat_transcript*"))
	require.NoError(t, err)
	assert.Len(t, saved, 1)
}

func TestREPL_EOFDuringLeadCapture(t *testing.T) {
	a := testApp(t)
	in := &script{lines: []string{"Jane Doe"}}
	var out bytes.Buffer

	assert.NoError(t, runREPL(context.Background(), a, in, &out))
}

func TestREPL_ServiceDown(t *testing.T) {
	a := testApp(t)
	a.client = backend.NewClientWithConfig(&backend.ClientConfig{BaseURL: "http://127.0.0.1:1"})
	var out bytes.Buffer

	err := runREPL(context.Background(), a, &script{}, &out)
	require.Error(t, err)
	assert.Equal(t, ExitNetworkError, ExitCode(err))
	assert.Contains(t, out.String(), "Offline")
	assert.Contains(t, out.String(), widget.MsgSessionFailed)
}

func TestREPL_SuggestionOutOfRange(t *testing.T) {
	a := testApp(t)
	r := newREPL(&script{}, io.Discard, a.exportOptions())
	f := widget.NewFactory()
	w, err := f.Init(context.Background(), a.client, a.widgetOptions(r.onEvent))
	require.NoError(t, err)
	r.w = w

	var usage *UsageError
	assert.ErrorAs(t, r.handleLine(context.Background(), "/s 3"), &usage)
	assert.ErrorAs(t, r.handleLine(context.Background(), "/s"), &usage)
	assert.ErrorIs(t, r.handleLine(context.Background(), "exit"), errQuit)
	assert.NoError(t, r.handleLine(context.Background(), "   "))
	// The lead form is still open, so the question is turned away quietly.
	assert.NoError(t, r.handleLine(context.Background(), "What is EPR?"))
	assert.Empty(t, w.Messages())
}

func TestDownloadStored_NoSession(t *testing.T) {
	isolateHome(t)
	a := testApp(t)
	store, err := openTestStore(t)
	require.NoError(t, err)
	a.store = store

	_, err = downloadStored(context.Background(), a, nil)
	assert.ErrorIs(t, err, widget.ErrNoSession)
}

func openTestStore(t *testing.T) (*storage.Store, error) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "state.db"))
	if err == nil {
		t.Cleanup(func() { store.Close() })
	}
	return store, err
}

func TestForget(t *testing.T) {
	store, err := openTestStore(t)
	require.NoError(t, err)
	require.NoError(t, store.RecordSessionID("sess-42"))

	var out bytes.Buffer
	require.NoError(t, forget(&out, store))
	assert.Contains(t, out.String(), "Forgot session sess-42")

	id, err := store.SessionID()
	require.NoError(t, err)
	assert.Empty(t, id)

	out.Reset()
	require.NoError(t, forget(&out, store))
	assert.Contains(t, out.String(), "Nothing stored")
}

// =============================================================================
// TRANSCRIPT PRINTING
// =============================================================================

func TestPrintTranscript(t *testing.T) {
	dir := t.TempDir()
	md := filepath.Join(dir, "Jane_chat_transcript.md")
	require.NoError(t, os.WriteFile(md, []byte("# Chat with Jane\n\n**You:** hi\n"), 0644))

	var buf bytes.Buffer
	require.NoError(t, printTranscript(&buf, md, false, 80))
	assert.Equal(t, "# Chat with Jane\n\n**You:** hi\n", buf.String())

	buf.Reset()
	require.NoError(t, printTranscript(&buf, md, true, 80))
	assert.Contains(t, buf.String(), "Jane")

	buf.Reset()
	require.NoError(t, printTranscript(&buf, filepath.Join(dir, "Jane_chat_transcript.pdf"), true, 80))
	assert.Contains(t, buf.String(), "not a Markdown transcript")

	assert.Error(t, printTranscript(&buf, filepath.Join(dir, "missing.md"), false, 80))
}

func TestColorProfile(t *testing.T) {
	env := func(vars map[string]string) func(string) string {
		return func(k string) string { return vars[k] }
	}

	assert.Equal(t, termenv.Ascii, colorProfile(env(map[string]string{"NO_COLOR": "1", "FORCE_COLOR": "1"}), true))
	assert.Equal(t, termenv.ANSI256, colorProfile(env(map[string]string{"FORCE_COLOR": "1"}), false))
	assert.Equal(t, termenv.Ascii, colorProfile(env(nil), false))
}

func TestTerminal_NotATerminal(t *testing.T) {
	var term Terminal
	assert.False(t, term.Interactive())
	assert.False(t, term.OutputIsTerminal())
	assert.Equal(t, defaultWidth, term.Width())
}
