// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chat is the Bubble Tea host for the chat widget.

It draws a *widget.Widget and forwards keystrokes to it. All conversation
state lives in the widget; the Model only keeps UI state (focus, input
buffers, scroll position, the last notice).

# Layout

  - Header with the organization name and the Online / Connecting... /
    Offline indicator, plus the connection banner when it applies
  - Message list rendered from rich-text segments, with a typing indicator
  - Numbered suggestions, or the fallback prompt when there are none
  - Either the lead form (four inputs with live errors and a submit button
    that stays disabled until the form is valid) or the composer

# Events

Widget callbacks arrive on arbitrary goroutines. An EventBridge turns them
into a channel that the Model drains one EventMsg at a time, re-reading the
widget's snapshots on each.

	bridge := chat.NewEventBridge(64)
	opts.OnEvent = bridge.Send
	w := widget.New(client, opts)
	p := tea.NewProgram(chat.New(ctx, w, bridge, styles.NewTheme()), tea.WithAltScreen())
*/
package chat
