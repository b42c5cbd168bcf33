// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the chatwidget command line.
//
// # Commands
//
//   - chatwidget, chatwidget tui: full-screen Bubble Tea host
//   - chatwidget chat: line REPL host (liner)
//   - chatwidget transcript: download the stored session's transcript
//   - chatwidget config show|init|path: configuration management
//   - chatwidget stub: run the reference backend
//   - chatwidget version
//
// Global flags --config, --backend-url and --log-level override the loaded
// configuration. Every command returns its error to Execute, which maps it
// onto an exit code.
package cli
