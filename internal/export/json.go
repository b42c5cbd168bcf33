// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"time"
)

// JSONFormat tags every JSON transcript so readers can reject files they
// do not understand.
const JSONFormat = "chatwidget.transcript/v1"

// Envelope is the top level of a JSON transcript.
type Envelope struct {
	Format     string    `json:"format"`
	ExportedAt time.Time `json:"exported_at"`
	Document   *Document `json:"transcript"`
}

// JSONExporter writes the whole document regardless of Options, so the
// file can be read back without loss.
type JSONExporter struct {
	now func() time.Time
}

// NewJSONExporter creates a JSON exporter. Options are accepted for
// symmetry with the other formats and ignored.
func NewJSONExporter(_ *Options) *JSONExporter {
	return &JSONExporter{now: time.Now}
}

func (e *JSONExporter) Export(doc *Document) ([]byte, error) {
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return json.MarshalIndent(Envelope{
		Format:     JSONFormat,
		ExportedAt: e.now().UTC(),
		Document:   doc,
	}, "", "  ")
}

func (e *JSONExporter) FileExtension() string { return ".json" }

func (e *JSONExporter) MimeType() string { return "application/json" }
