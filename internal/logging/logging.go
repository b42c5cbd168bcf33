// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the zerolog logger shared by every component.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/config"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/storage"
)

// Options selects where logs go.
type Options struct {
	Level string
	// File, when set, receives logs instead of Out.
	File string
	// Out defaults to os.Stderr.
	Out io.Writer
	// NoColor disables ANSI colors in console output.
	NoColor bool
}

// FromConfig maps the [log] section onto Options. toFile routes output to
// the configured file, which hosts that own the terminal need.
func FromConfig(cfg config.LogConfig, toFile bool) Options {
	opts := Options{Level: cfg.Level}
	if toFile {
		opts.File = cfg.File
	}
	return opts
}

// New creates a console logger. The returned closer releases the log file,
// if one was opened; it is never nil.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	var closer io.Closer = nopCloser{}

	noColor := opts.NoColor
	if opts.File != "" {
		path := storage.ExpandHome(opts.File)
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("failed to open log file: %w", err)
		}
		out, closer, noColor = f, f, true
	}

	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}
	logger := zerolog.New(writer).
		With().
		Timestamp().
		Logger().
		Level(ParseLevel(opts.Level))
	return logger, closer, nil
}

// ParseLevel maps a level name onto zerolog, defaulting to info.
func ParseLevel(raw string) zerolog.Level {
	if raw == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// Component derives a sub-logger tagged with the component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
