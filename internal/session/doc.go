// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the one-time visitor session handshake.
//
// A Manager moves through a small state machine:
//
//	Uninitialized -> Connecting -> Ready | Failed
//
// Initialize runs the transition exactly once. Later calls, including calls
// that arrive while the first is still connecting, return ErrAlreadyStarted
// without contacting the service. A failed handshake is terminal for the
// Manager; the host retries by building a new one.
//
// # Usage
//
//	mgr := session.NewManager(client, session.Options{Logger: log})
//	res, err := mgr.Initialize(ctx)
//	switch {
//	case errors.Is(err, session.ErrAlreadyStarted):
//	    // someone else got there first
//	case err != nil:
//	    // offline until the page is reloaded
//	case res.Returning:
//	    // skip lead capture
//	}
//
// Connectivity is derived from the state: Ready is online, Connecting is
// connecting, and both Failed and Uninitialized read as offline.
package session
