// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/model"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/util"
)

// =============================================================================
// TRANSCRIPT ARTIFACTS
// =============================================================================

// TranscriptFilename builds "<First>_chat_transcript<ext>" for a service
// artifact. See ExtensionFor for how the extension is chosen.
func TranscriptFilename(visitor model.UserProfile, data []byte, contentType string) string {
	return sanitizeFilename(visitorStem(visitor)) + "_chat_transcript" + ExtensionFor(data, contentType)
}

// ServedTranscriptFilename is TranscriptFilename, except that the extension
// of the name the service suggested wins when it has one.
func ServedTranscriptFilename(visitor model.UserProfile, served string, data []byte, contentType string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(served)))
	if len(ext) < 2 || len(ext) > 6 {
		return TranscriptFilename(visitor, data, contentType)
	}
	return sanitizeFilename(visitorStem(visitor)) + "_chat_transcript" + ext
}

// ExtensionFor picks a file extension for an opaque payload: the declared
// content type when it is specific, else the type sniffed from data, else ".pdf".
func ExtensionFor(data []byte, contentType string) string {
	const generic = "application/octet-stream"

	mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	if mediaType != "" && mediaType != generic {
		if m := mimetype.Lookup(mediaType); m != nil && m.Extension() != "" {
			return m.Extension()
		}
	}
	if len(data) > 0 {
		if m := mimetype.Detect(data); !m.Is(generic) && m.Extension() != "" {
			return m.Extension()
		}
	}
	return ".pdf"
}

// FileSaver stores artifacts in a directory. It is the terminal hosts'
// stand-in for a browser download.
type FileSaver struct {
	Dir  string
	Open bool
}

// Save writes data under Dir with the given name, never overwriting an
// existing file. Returns the path written.
func (s *FileSaver) Save(filename string, data []byte, contentType string) (string, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	name := filepath.Base(filename)
	if name == "." || name == string(filepath.Separator) {
		name = "chat_transcript" + ExtensionFor(data, contentType)
	}

	path, err := util.SaveUnique(filepath.Join(dir, name), data, 0644)
	if err != nil {
		return "", fmt.Errorf("save transcript: %w", err)
	}
	if s.Open {
		_ = openFile(path)
	}
	return path, nil
}
