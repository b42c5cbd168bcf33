// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling for the chat widget's terminal host.

All colors use Lip Gloss AdaptiveColor so the widget reads well on light and
dark terminals. NewTheme detects the terminal's color profile with termenv.

# Colors (colors.go)

  - Brand - header, focused inputs, submit button
  - Accent - bot bubbles and suggestion chips
  - Online, Connecting, Offline - the connectivity indicator
  - Danger - field errors and the connection banner

# Theme (theme.go)

The Theme groups the styles the chat host draws with: header and status
indicator, message bubbles, rich-text runs (bold, italic, links), the lead
form, suggestion chips, notices and the help footer.

	theme := styles.NewTheme()
	header := theme.Header.Render("ReCircle")
*/
package styles
