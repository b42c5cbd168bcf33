// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/model"
)

func sampleDoc() *Document {
	t0 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	msgs := []model.Message{
		{ID: "1", Text: "What is EPR?", Sender: model.SenderUser, Timestamp: t0},
		{ID: "2", Text: "**EPR** means Extended Producer Responsibility.\n- see https://x.com", Sender: model.SenderBot, Timestamp: t0.Add(time.Second)},
	}
	visitor := model.UserProfile{Name: "Jane Doe", Email: "jane@x.com", Organization: "Acme"}
	return NewDocument("sess-1", visitor, "ReCircle", msgs)
}

// =============================================================================
// DOCUMENT TESTS
// =============================================================================

func TestNewDocument_Timestamps(t *testing.T) {
	doc := sampleDoc()
	assert.Equal(t, doc.Messages[0].Timestamp, doc.CreatedAt)
	assert.Equal(t, doc.Messages[1].Timestamp, doc.UpdatedAt)
	assert.Equal(t, "Chat with Jane", doc.Title())
}

func TestExporters_RejectEmpty(t *testing.T) {
	empty := NewDocument("", model.UserProfile{}, "", nil)
	for _, format := range []string{"md", "json", "html"} {
		exp, err := ForFormat(format, nil)
		require.NoError(t, err)
		_, err = exp.Export(empty)
		assert.ErrorIs(t, err, ErrEmptyDocument, format)
	}
}

func TestForFormat_Unknown(t *testing.T) {
	_, err := ForFormat("docx", nil)
	assert.Error(t, err)
}

// =============================================================================
// FORMAT TESTS
// =============================================================================

func TestMarkdownExporter(t *testing.T) {
	out, err := NewMarkdownExporter(nil).Export(sampleDoc())
	require.NoError(t, err)
	md := string(out)

	assert.Contains(t, md, "# Chat with Jane")
	assert.Contains(t, md, "session: sess-1")
	assert.Contains(t, md, "- **Email**: jane@x.com")
	assert.Contains(t, md, "### Visitor <sub>10:00:00</sub>")
	assert.Contains(t, md, "### ReCircle Assistant")
	assert.Contains(t, md, "**EPR** means Extended Producer Responsibility.")
	assert.Less(t, strings.Index(md, "What is EPR?"), strings.Index(md, "Extended Producer"))
}

func TestMarkdownExporter_NoMetadata(t *testing.T) {
	opts := &Options{IncludeMetadata: false, IncludeTimestamps: false}
	out, err := NewMarkdownExporter(opts).Export(sampleDoc())
	require.NoError(t, err)
	assert.NotContains(t, string(out), "---\ntitle")
	assert.NotContains(t, string(out), "jane@x.com")
	assert.Contains(t, string(out), "### Visitor\n")
}

func TestJSONExporter(t *testing.T) {
	out, err := NewJSONExporter(nil).Export(sampleDoc())
	require.NoError(t, err)

	var back Envelope
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, JSONFormat, back.Format)
	assert.False(t, back.ExportedAt.IsZero())
	require.NotNil(t, back.Document)
	assert.Equal(t, "sess-1", back.Document.SessionID)
	require.Len(t, back.Document.Messages, 2)
	assert.Equal(t, model.SenderBot, back.Document.Messages[1].Sender)
}

func TestHTMLExporter_RendersSegments(t *testing.T) {
	doc := sampleDoc()
	doc.Messages = append(doc.Messages, model.Message{Text: "<script>x</script>", Sender: model.SenderUser})

	out, err := NewHTMLExporter(nil).Export(doc)
	require.NoError(t, err)
	page := string(out)

	assert.Contains(t, page, "<strong>EPR</strong>")
	assert.Contains(t, page, `<a href="https://x.com"`)
	assert.Contains(t, page, "• ")
	assert.Contains(t, page, "&lt;script&gt;")
	assert.NotContains(t, page, "<script>x")
}

// =============================================================================
// FILE TESTS
// =============================================================================

func TestExportToFile(t *testing.T) {
	dir := t.TempDir()
	opts := DefaultOptions()
	opts.OutputDir = dir

	path, err := ExportToFile(sampleDoc(), NewMarkdownExporter(opts), opts)
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "Jane_chat_"))
	assert.Equal(t, ".md", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "What is EPR?")
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"Jane":       "Jane",
		"a/b:c":      "a-b-c",
		"two words":  "two_words",
		"":           "visitor",
		"bad\x01chr": "bad-chr",
	}
	for in, want := range tests {
		assert.Equal(t, want, sanitizeFilename(in), "sanitizeFilename(%q)", in)
	}
}

// =============================================================================
// ARTIFACT TESTS
// =============================================================================

func TestExtensionFor(t *testing.T) {
	pdf := []byte("%PDF-1.4\n1 0 obj\n")
	assert.Equal(t, ".pdf", ExtensionFor(pdf, ""))
	assert.Equal(t, ".pdf", ExtensionFor(pdf, "application/octet-stream"))
	assert.Equal(t, ".pdf", ExtensionFor(nil, "application/pdf"))
	assert.Equal(t, ".txt", ExtensionFor([]byte("plain words here"), ""))
	assert.Equal(t, ".json", ExtensionFor(nil, "application/json; charset=utf-8"))
	assert.Equal(t, ".pdf", ExtensionFor(nil, ""))
}

func TestTranscriptFilename(t *testing.T) {
	pdf := []byte("%PDF-1.7")
	assert.Equal(t, "Jane_chat_transcript.pdf",
		TranscriptFilename(model.UserProfile{Name: "Jane Doe"}, pdf, "application/pdf"))
	assert.Equal(t, "visitor_chat_transcript.pdf",
		TranscriptFilename(model.UserProfile{}, pdf, ""))
}

func TestFileSaver_NeverOverwrites(t *testing.T) {
	s := &FileSaver{Dir: t.TempDir()}

	p1, err := s.Save("Jane_chat_transcript.pdf", []byte("one"), "application/pdf")
	require.NoError(t, err)
	p2, err := s.Save("Jane_chat_transcript.pdf", []byte("two"), "application/pdf")
	require.NoError(t, err)

	assert.NotEqual(t, p1, p2)
	b1, _ := os.ReadFile(p1)
	b2, _ := os.ReadFile(p2)
	assert.Equal(t, "one", string(b1))
	assert.Equal(t, "two", string(b2))
}

func TestFileSaver_StripsDirectories(t *testing.T) {
	dir := t.TempDir()
	s := &FileSaver{Dir: dir}
	p, err := s.Save("../../escape.pdf", []byte("x"), "")
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(p))
}

func TestServedTranscriptFilename(t *testing.T) {
	visitor := model.UserProfile{Name: "Jane Doe"}

	assert.Equal(t, "Jane_chat_transcript.md",
		ServedTranscriptFilename(visitor, "chat_abc.md", []byte("# hi"), "text/markdown"))
	assert.Equal(t, "Jane_chat_transcript.pdf",
		ServedTranscriptFilename(visitor, "", []byte("%PDF-1.4"), "application/pdf"))
	assert.Equal(t, "Jane_chat_transcript.pdf",
		ServedTranscriptFilename(visitor, "../../x.PDF", nil, ""))
}
