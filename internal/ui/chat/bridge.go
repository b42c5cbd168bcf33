// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"sync"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/widget"
)

// EventBridge queues widget events for the update loop. Send never blocks.
//
// Redraw events (messages, suggestions, typing, status, form) coalesce: a
// queued event of the same kind is replaced by the newer one, so the last
// state change always reaches the Model. Notices, gate changes and
// high-interest signals are never merged or dropped.
type EventBridge struct {
	mu     sync.Mutex
	queue  []widget.Event
	wake   chan struct{}
	out    chan widget.Event
	done   chan struct{}
	closed bool
}

// NewEventBridge creates a bridge. size is the initial queue capacity.
func NewEventBridge(size int) *EventBridge {
	if size < 1 {
		size = 1
	}
	b := &EventBridge{
		queue: make([]widget.Event, 0, size),
		wake:  make(chan struct{}, 1),
		out:   make(chan widget.Event),
		done:  make(chan struct{}),
	}
	go b.pump()
	return b
}

// Send is a widget.Options.OnEvent callback.
func (b *EventBridge) Send(ev widget.Event) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.enqueue(ev)
	b.mu.Unlock()

	select {
	case b.wake <- struct{}{}:
	default:
	}
}

// enqueue adds ev, replacing a queued redraw of the same kind. Caller holds b.mu.
func (b *EventBridge) enqueue(ev widget.Event) {
	if coalesces(ev.Kind) {
		for i := range b.queue {
			if b.queue[i].Kind == ev.Kind {
				b.queue[i] = ev
				return
			}
		}
	}
	b.queue = append(b.queue, ev)
}

func coalesces(kind widget.EventKind) bool {
	switch kind {
	case widget.EventNotice, widget.EventGate, widget.EventHighInterest:
		return false
	default:
		return true
	}
}

// pump moves queued events to the receive side until Close.
func (b *EventBridge) pump() {
	defer close(b.out)
	for {
		b.mu.Lock()
		if len(b.queue) == 0 {
			b.mu.Unlock()
			select {
			case <-b.wake:
				continue
			case <-b.done:
				return
			}
		}
		ev := b.queue[0]
		b.queue = b.queue[1:]
		b.mu.Unlock()

		select {
		case b.out <- ev:
		case <-b.done:
			return
		}
	}
}

// Pending returns the number of events not yet handed to the receiver.
func (b *EventBridge) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queue)
}

// Events returns the receive side. It is closed after Close.
func (b *EventBridge) Events() <-chan widget.Event {
	return b.out
}

// Close stops delivery. Queued events are discarded and later Sends are
// ignored.
func (b *EventBridge) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.closed {
		b.closed = true
		b.queue = nil
		close(b.done)
	}
}
