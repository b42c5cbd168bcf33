// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/backend"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/config"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/export"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/logging"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/storage"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/widget"
)

// app is what every widget host needs: logger, local state and a client.
type app struct {
	cfg       *config.Config
	log       zerolog.Logger
	logCloser io.Closer
	store     *storage.Store
	client    *backend.Client
}

// newApp wires the host. logToFile sends logs to the configured file, for
// hosts that own the terminal. A state database that cannot be opened only
// costs persistence; the host still runs with an in-memory jar.
func newApp(cfg *config.Config, logToFile bool) (*app, error) {
	log, closer, err := logging.New(logging.FromConfig(cfg.Log, logToFile))
	if err != nil {
		return nil, errors.Wrap(err, "set up logging")
	}
	a := &app{cfg: cfg, log: log, logCloser: closer}

	var jar http.CookieJar
	if store, err := storage.Open(cfg.Storage.Path); err != nil {
		log.Warn().Err(err).Str("path", cfg.Storage.Path).Msg("state database unavailable")
	} else {
		a.store = store
		if cfg.Storage.PersistCookies {
			if j, err := store.CookieJar(); err != nil {
				log.Warn().Err(err).Msg("stored cookies unavailable")
			} else {
				jar = j
			}
		}
	}

	a.client = backend.NewClientWithConfig(&backend.ClientConfig{
		BaseURL:   cfg.Backend.BaseURL,
		Timeout:   cfg.Backend.Timeout,
		UserAgent: cfg.Backend.UserAgent,
		Jar:       jar,
		Logger:    log,
	})
	return a, nil
}

// widgetOptions maps the configuration onto widget options.
func (a *app) widgetOptions(onEvent func(widget.Event)) widget.Options {
	opts := widget.OptionsFromConfig(a.cfg)
	opts.OnEvent = onEvent
	opts.Logger = a.log
	if a.store != nil {
		opts.Recorder = a.store
	}
	return opts
}

// exportOptions places local exports next to downloaded transcripts.
func (a *app) exportOptions() *export.Options {
	return &export.Options{
		OutputDir:         a.cfg.Transcript.Dir,
		OpenAfterExport:   a.cfg.Transcript.OpenAfterSave,
		IncludeMetadata:   true,
		IncludeTimestamps: true,
	}
}

// Close releases the database and the log file.
func (a *app) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn().Err(err).Msg("close state database")
		}
	}
	_ = a.logCloser.Close()
}
