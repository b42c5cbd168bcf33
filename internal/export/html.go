// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/model"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/richtext"
)

// =============================================================================
// HTML EXPORTER
// =============================================================================

// HTMLExporter exports conversations to a standalone HTML page.
// Bot answers are rendered from rich-text segments, so links, emails,
// emphasis and bullets survive.
type HTMLExporter struct {
	options *Options
}

// NewHTMLExporter creates a new HTML exporter.
func NewHTMLExporter(opts *Options) *HTMLExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &HTMLExporter{options: opts}
}

// Export converts a conversation to HTML.
func (e *HTMLExporter) Export(doc *Document) ([]byte, error) {
	if err := doc.validate(); err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	sb.WriteString("    <meta charset=\"UTF-8\">\n")
	sb.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	sb.WriteString(fmt.Sprintf("    <title>%s</title>\n", html.EscapeString(doc.Title())))
	sb.WriteString("    <meta name=\"generator\" content=\"chatwidget\">\n")
	sb.WriteString(fmt.Sprintf("    <meta name=\"date\" content=\"%s\">\n", doc.CreatedAt.Format(time.RFC3339)))
	sb.WriteString(css)
	sb.WriteString("</head>\n<body>\n<main>\n")

	sb.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(doc.Title())))
	if e.options.IncludeMetadata {
		sb.WriteString(e.renderHeader(doc))
	}

	for _, msg := range doc.Messages {
		sb.WriteString(e.renderMessage(msg))
	}

	sb.WriteString("</main>\n</body>\n</html>\n")
	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for HTML.
func (e *HTMLExporter) FileExtension() string {
	return ".html"
}

// MimeType returns the MIME type for HTML.
func (e *HTMLExporter) MimeType() string {
	return "text/html"
}

func (e *HTMLExporter) renderHeader(doc *Document) string {
	var sb strings.Builder
	sb.WriteString("<dl class=\"meta\">\n")
	row := func(k, v string) {
		if v != "" {
			sb.WriteString(fmt.Sprintf("  <dt>%s</dt><dd>%s</dd>\n", k, html.EscapeString(v)))
		}
	}
	row("Name", doc.Visitor.Name)
	row("Email", doc.Visitor.Email)
	row("Organization", doc.Visitor.Organization)
	row("Session", doc.SessionID)
	row("Started", formatTimestamp(doc.CreatedAt))
	sb.WriteString("</dl>\n")
	return sb.String()
}

func (e *HTMLExporter) renderMessage(msg model.Message) string {
	class := "bot"
	if msg.IsUser() {
		class = "user"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<div class=\"msg %s\">\n", class))
	if e.options.IncludeTimestamps && !msg.Timestamp.IsZero() {
		sb.WriteString(fmt.Sprintf("  <time>%s</time>\n", formatShortTimestamp(msg.Timestamp)))
	}
	sb.WriteString("  <p>")
	if msg.IsUser() {
		sb.WriteString(strings.ReplaceAll(html.EscapeString(msg.Text), "\n", "<br>"))
	} else {
		sb.WriteString(RenderSegmentsHTML(richtext.Format(msg.Text)))
	}
	sb.WriteString("</p>\n</div>\n")
	return sb.String()
}

// RenderSegmentsHTML renders rich-text segments as inline HTML.
func RenderSegmentsHTML(segs []richtext.Segment) string {
	var sb strings.Builder
	for _, s := range segs {
		text := html.EscapeString(s.Text)
		switch s.Kind {
		case richtext.KindBold:
			sb.WriteString("<strong>" + text + "</strong>")
		case richtext.KindItalic:
			sb.WriteString("<em>" + text + "</em>")
		case richtext.KindLink:
			sb.WriteString(fmt.Sprintf("<a href=\"%s\" target=\"_blank\" rel=\"noopener noreferrer\">%s</a>",
				html.EscapeString(s.Href()), text))
		case richtext.KindEmail:
			sb.WriteString(fmt.Sprintf("<a href=\"%s\">%s</a>", html.EscapeString(s.Href()), text))
		case richtext.KindLineBreak:
			sb.WriteString("<br>")
		default:
			sb.WriteString(text)
		}
	}
	return sb.String()
}

const css = `    <style>
        body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; background: #f5f7f5; margin: 0; }
        main { max-width: 760px; margin: 2rem auto; padding: 0 1rem; }
        h1 { color: #1b5e20; }
        .meta { display: grid; grid-template-columns: max-content 1fr; gap: .25rem 1rem; color: #555; }
        .meta dt { font-weight: 600; }
        .msg { margin: .75rem 0; padding: .75rem 1rem; border-radius: 12px; max-width: 85%; }
        .msg.user { background: #2e7d32; color: #fff; margin-left: auto; }
        .msg.bot { background: #fff; border: 1px solid #dfe6df; }
        .msg time { display: block; font-size: .75rem; opacity: .7; }
        .msg p { margin: .25rem 0 0; line-height: 1.5; }
        .msg.bot a { color: #1b5e20; }
    </style>
`
