// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"context"
	"fmt"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/export"
)

// Saver receives a downloaded transcript and stores it wherever the host
// keeps downloads. It returns a description of where the file went.
type Saver interface {
	Save(filename string, data []byte, contentType string) (string, error)
}

func newFileSaver(dir string, open bool) Saver {
	return &export.FileSaver{Dir: dir, Open: open}
}

// DownloadTranscript fetches the service's transcript for this session and
// hands it to the Saver. The transcript is untouched; outcomes are reported
// as notices.
func (w *Widget) DownloadTranscript(ctx context.Context) (string, error) {
	id := w.session.SessionID()
	if id == "" {
		w.deliver(batch{{Kind: EventNotice, Notice: MsgNoSession}})
		return "", ErrNoSession
	}

	tr, err := w.backend.DownloadChat(ctx, id)
	if err != nil {
		w.deliver(batch{{Kind: EventNotice, Notice: MsgDownloadFailed}})
		w.log.Warn().Err(err).Msg("transcript download failed")
		return "", fmt.Errorf("download transcript: %w", err)
	}

	name := export.ServedTranscriptFilename(w.Profile(), tr.Filename, tr.Data, tr.ContentType)
	path, err := w.opts.Saver.Save(name, tr.Data, tr.ContentType)
	if err != nil {
		w.deliver(batch{{Kind: EventNotice, Notice: MsgDownloadFailed}})
		w.log.Warn().Err(err).Msg("transcript save failed")
		return "", err
	}

	w.deliver(batch{{Kind: EventNotice, Notice: fmt.Sprintf(MsgTranscriptSaved, path)}})
	w.log.Info().Str("path", path).Int("bytes", len(tr.Data)).Msg("transcript saved")
	return path, nil
}

// Document snapshots the on-screen conversation for local export.
func (w *Widget) Document() *export.Document {
	w.mu.Lock()
	defer w.mu.Unlock()
	return export.NewDocument(w.session.SessionID(), w.profile, w.opts.Organization, w.transcript.Messages())
}

// Export renders the on-screen conversation locally in the given format
// (md, json or html) and returns the path written.
func (w *Widget) Export(format string, opts *export.Options) (string, error) {
	exporter, err := export.ForFormat(format, opts)
	if err != nil {
		return "", err
	}
	return export.ExportToFile(w.Document(), exporter, opts)
}
