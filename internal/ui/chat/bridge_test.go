// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/widget"
)

func receive(t *testing.T, b *EventBridge) widget.Event {
	t.Helper()
	select {
	case ev, ok := <-b.Events():
		require.True(t, ok, "bridge closed")
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("no event delivered")
		return widget.Event{}
	}
}

func TestEventBridge_LatestTypingWins(t *testing.T) {
	b := NewEventBridge(1)
	defer b.Close()

	b.Send(widget.Event{Kind: widget.EventMessages})
	b.Send(widget.Event{Kind: widget.EventTyping, Typing: true})
	b.Send(widget.Event{Kind: widget.EventTyping, Typing: false})

	assert.Equal(t, widget.EventMessages, receive(t, b).Kind)
	ev := receive(t, b)
	assert.Equal(t, widget.EventTyping, ev.Kind)
	assert.False(t, ev.Typing)
	assert.Zero(t, b.Pending())
}

func TestEventBridge_OneShotsAreKept(t *testing.T) {
	b := NewEventBridge(1)
	defer b.Close()

	b.Send(widget.Event{Kind: widget.EventMessages})
	b.Send(widget.Event{Kind: widget.EventNotice, Notice: "saved"})
	b.Send(widget.Event{Kind: widget.EventNotice, Notice: "failed"})
	b.Send(widget.Event{Kind: widget.EventGate, Gate: widget.GateSubmitted})
	b.Send(widget.Event{Kind: widget.EventHighInterest})

	var got []widget.EventKind
	var notices []string
	for i := 0; i < 5; i++ {
		ev := receive(t, b)
		got = append(got, ev.Kind)
		if ev.Kind == widget.EventNotice {
			notices = append(notices, ev.Notice)
		}
	}
	assert.Equal(t, []widget.EventKind{
		widget.EventMessages, widget.EventNotice, widget.EventNotice,
		widget.EventGate, widget.EventHighInterest,
	}, got)
	assert.Equal(t, []string{"saved", "failed"}, notices)
}

func TestEventBridge_Close(t *testing.T) {
	b := NewEventBridge(4)
	b.Close()
	b.Close()
	b.Send(widget.Event{Kind: widget.EventMessages})

	msg := WaitForEvent(b.Events())()
	assert.IsType(t, eventsClosedMsg{}, msg)
	assert.Zero(t, b.Pending())
}
