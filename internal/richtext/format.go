// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package richtext turns plain bot answers into renderable segments.
//
// Answers may carry markdown emphasis (**bold**, *italic*), bare URLs,
// email addresses and "-"/"*" bullet lines. Format splits them into a flat
// sequence of typed segments that a host UI can style however it likes.
//
//	for _, seg := range richtext.Format(answer) {
//	    switch seg.Kind {
//	    case richtext.KindBold:
//	        ...
//	    }
//	}
package richtext

import (
	"regexp"
	"strings"
)

// =============================================================================
// SEGMENT TYPES
// =============================================================================

// Kind identifies the type of a segment.
type Kind int

const (
	KindPlain Kind = iota
	KindBold
	KindItalic
	KindLink
	KindEmail
	KindLineBreak
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindBold:
		return "bold"
	case KindItalic:
		return "italic"
	case KindLink:
		return "link"
	case KindEmail:
		return "email"
	case KindLineBreak:
		return "linebreak"
	default:
		return "unknown"
	}
}

// Segment is one renderable run of text.
// For KindLink Text holds the URL, for KindEmail the address.
type Segment struct {
	Kind Kind
	Text string
}

// Plain, Bold, Italic, Link, Email and LineBreak build segments.
func Plain(s string) Segment  { return Segment{Kind: KindPlain, Text: s} }
func Bold(s string) Segment   { return Segment{Kind: KindBold, Text: s} }
func Italic(s string) Segment { return Segment{Kind: KindItalic, Text: s} }
func Link(u string) Segment   { return Segment{Kind: KindLink, Text: u} }
func Email(a string) Segment  { return Segment{Kind: KindEmail, Text: a} }
func LineBreak() Segment      { return Segment{Kind: KindLineBreak} }

// Href returns the link target for link and email segments.
func (s Segment) Href() string {
	switch s.Kind {
	case KindLink:
		return s.Text
	case KindEmail:
		return "mailto:" + s.Text
	default:
		return ""
	}
}

// BulletGlyph replaces a leading "- " or "* " marker.
const BulletGlyph = "• "

// =============================================================================
// TOKENIZER
// =============================================================================

// tokenRe matches, in priority order at each position: bold, italic, URL, email.
// Go's regexp is leftmost-first, so the earliest start wins and ties go to the
// first alternative.
var tokenRe = regexp.MustCompile(
	`(\*\*[^\n]+?\*\*)` +
		`|(\*[^*\n]+\*)` +
		`|(https?://\S+)` +
		`|([A-Za-z0-9._-]+@[A-Za-z0-9.-]+\.[A-Za-z0-9_-]+)`,
)

// strictEmailRe must accept the whole token before it is rendered as an email.
var strictEmailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

var bulletRe = regexp.MustCompile(`^[-*]\s+`)

// Format converts text into segments. Lines are separated by LineBreak
// segments; no LineBreak trails the final line.
func Format(text string) []Segment {
	lines := strings.Split(text, "\n")
	segs := make([]Segment, 0, len(lines)*2)
	for i, line := range lines {
		if i > 0 {
			segs = append(segs, LineBreak())
		}
		segs = append(segs, formatLine(line)...)
	}
	return segs
}

func formatLine(line string) []Segment {
	var segs []Segment
	if loc := bulletRe.FindStringIndex(line); loc != nil {
		segs = append(segs, Plain(BulletGlyph))
		line = line[loc[1]:]
	}

	last := 0
	for _, m := range tokenRe.FindAllStringSubmatchIndex(line, -1) {
		start, end := m[0], m[1]
		if start > last {
			segs = append(segs, Plain(line[last:start]))
		}
		token := line[start:end]
		switch {
		case m[2] >= 0:
			segs = append(segs, Bold(token[2:len(token)-2]))
		case m[4] >= 0:
			segs = append(segs, Italic(token[1:len(token)-1]))
		case m[6] >= 0:
			segs = append(segs, Link(token))
		case m[8] >= 0:
			if strictEmailRe.MatchString(token) {
				segs = append(segs, Email(token))
			} else {
				segs = append(segs, Plain(token))
			}
		}
		last = end
	}
	if last < len(line) {
		segs = append(segs, Plain(line[last:]))
	}
	return segs
}

// =============================================================================
// FLATTENING
// =============================================================================

// PlainText renders segments back to undecorated text.
func PlainText(segs []Segment) string {
	var sb strings.Builder
	for _, s := range segs {
		if s.Kind == KindLineBreak {
			sb.WriteByte('\n')
			continue
		}
		sb.WriteString(s.Text)
	}
	return sb.String()
}
