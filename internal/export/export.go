// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/model"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/util"
)

// ErrEmptyDocument is returned when there is nothing to export.
var ErrEmptyDocument = errors.New("export: conversation has no messages")

// =============================================================================
// DOCUMENT
// =============================================================================

// Document is a conversation snapshot ready for export.
type Document struct {
	SessionID    string            `json:"session_id,omitempty"`
	Organization string            `json:"organization,omitempty"`
	Visitor      model.UserProfile `json:"visitor"`
	Messages     []model.Message   `json:"messages"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// NewDocument builds a document; timestamps come from the first and last message.
func NewDocument(sessionID string, visitor model.UserProfile, organization string, msgs []model.Message) *Document {
	doc := &Document{
		SessionID:    sessionID,
		Organization: organization,
		Visitor:      visitor,
		Messages:     msgs,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if len(msgs) > 0 {
		doc.CreatedAt = msgs[0].Timestamp
		doc.UpdatedAt = msgs[len(msgs)-1].Timestamp
	}
	return doc
}

// Title names the conversation for headings.
func (d *Document) Title() string {
	if first := d.Visitor.FirstName(); first != "" {
		return "Chat with " + first
	}
	return "Chat transcript"
}

func (d *Document) validate() error {
	if d == nil || len(d.Messages) == 0 {
		return ErrEmptyDocument
	}
	return nil
}

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter renders a document in one format.
type Exporter interface {
	Export(doc *Document) ([]byte, error)

	// FileExtension returns the extension including the dot, e.g. ".md".
	FileExtension() string

	MimeType() string
}

// Options configures export behavior.
type Options struct {
	// OutputDir is where files are written. Default: current directory.
	OutputDir string

	// OpenAfterExport opens the file in the default application.
	OpenAfterExport bool

	// IncludeMetadata adds the session header block.
	IncludeMetadata bool

	// IncludeTimestamps adds per-message times.
	IncludeTimestamps bool
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		OutputDir:         ".",
		IncludeMetadata:   true,
		IncludeTimestamps: true,
	}
}

// ForFormat returns the exporter for a format name (md, markdown, json, html).
func ForFormat(format string, opts *Options) (Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "md", "markdown":
		return NewMarkdownExporter(opts), nil
	case "json":
		return NewJSONExporter(opts), nil
	case "html", "htm":
		return NewHTMLExporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// ExportToFile renders doc and writes it under opts.OutputDir.
// Returns the path written.
func ExportToFile(doc *Document, exporter Exporter, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	content, err := exporter.Export(doc)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	filename := fmt.Sprintf("%s_chat_%s%s",
		sanitizeFilename(visitorStem(doc.Visitor)),
		time.Now().Format("20060102_150405"),
		exporter.FileExtension(),
	)

	dir := opts.OutputDir
	if dir == "" {
		dir = "."
	}
	outputPath, err := util.SaveUnique(filepath.Join(dir, filename), content, 0644)
	if err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	if opts.OpenAfterExport {
		// The file exists either way; failing to open it is not an export error.
		_ = openFile(outputPath)
	}
	return outputPath, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// visitorStem is the visitor's first name, or "visitor".
func visitorStem(p model.UserProfile) string {
	if first := p.FirstName(); first != "" {
		return first
	}
	return "visitor"
}

// sanitizeFilename replaces characters that are invalid in filenames.
func sanitizeFilename(s string) string {
	const maxLen = 50
	runes := []rune(s)
	if len(runes) > maxLen {
		runes = runes[:maxLen]
	}

	result := make([]rune, 0, len(runes))
	for _, r := range runes {
		switch {
		case strings.ContainsRune(`/\:*?"<>|`, r):
			result = append(result, '-')
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			result = append(result, '_')
		case r < 32 || r == 127:
			result = append(result, '-')
		default:
			result = append(result, r)
		}
	}

	if len(result) == 0 {
		return "visitor"
	}
	return string(result)
}

// openFile opens a file in the default application for the OS.
func openFile(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", `""`, path)
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	return cmd.Start()
}

// formatTimestamp formats a timestamp for display.
func formatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// formatShortTimestamp formats a timestamp for inline display.
func formatShortTimestamp(t time.Time) string {
	return t.Format("15:04:05")
}
