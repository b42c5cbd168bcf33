// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package widget

import (
	"context"
	"sync"
)

// Factory mounts at most one widget at a time.
type Factory struct {
	mu      sync.Mutex
	current *Widget
}

// NewFactory creates an empty factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Init mounts a widget and starts its session. It fails with
// ErrAlreadyInitialized while another widget is mounted.
//
// A session failure does not unmount the widget: the widget is returned
// together with the error and shows the connection notice.
func (f *Factory) Init(ctx context.Context, b Backend, opts Options) (*Widget, error) {
	f.mu.Lock()
	if f.current != nil {
		f.mu.Unlock()
		return nil, ErrAlreadyInitialized
	}
	w := New(b, opts)
	f.current = w
	f.mu.Unlock()

	return w, w.Initialize(ctx)
}

// Current returns the mounted widget.
func (f *Factory) Current() (*Widget, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current, f.current != nil
}

// Destroy unmounts the widget, if any, so Init may be called again.
func (f *Factory) Destroy(ctx context.Context) error {
	f.mu.Lock()
	w := f.current
	f.current = nil
	f.mu.Unlock()

	if w == nil {
		return nil
	}
	return w.Close(ctx)
}
