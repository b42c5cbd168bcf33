// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage keeps widget state between runs in a local SQLite file.
//
// Two things are persisted:
//
//   - A small key/value table, used for the last session id.
//   - The cookie jar, so the service recognises a returning visitor the way
//     a browser would.
//
// # Usage
//
//	st, err := storage.Open("~/.chatwidget/state.db")
//	if err != nil {
//	    return err
//	}
//	defer st.Close()
//
//	jar, err := st.CookieJar()
//	client := backend.NewClientWithConfig(&backend.ClientConfig{Jar: jar})
//
// The pure-Go modernc.org/sqlite driver is used, so no cgo toolchain is needed.
package storage
