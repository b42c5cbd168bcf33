// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides file and string helpers shared by the widget hosts.
//
//   - WriteFileAtomic: crash-safe writes for config files and saved transcripts
//   - SaveUnique / UniquePath: non-clobbering file names for downloads
//   - TruncateWidth / PadWidth: display-width aware truncation for terminal UIs
package util
