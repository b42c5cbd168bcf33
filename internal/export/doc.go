// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes chat transcripts to disk.
//
// Two paths lead here. The service renders its own transcript artifact,
// which FileSaver stores under a name built from the visitor's first name
// and an extension sniffed from the bytes. The in-memory conversation can
// also be rendered locally with one of the exporters.
//
// # Supported Formats
//
//   - Markdown: human-readable, used by the reference backend as well
//   - JSON: machine-readable with full message metadata
//   - HTML: standalone page with links and emphasis rendered
//
// # Usage
//
//	doc := export.NewDocument(sessionID, profile, "ReCircle", messages)
//	path, err := export.ExportToFile(doc, export.NewMarkdownExporter(nil), nil)
package export
