// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads and validates the chat widget configuration.
//
// Supports both TOML and JSON configuration formats, with defaults,
// environment variable overrides and struct-tag validation.
//
// # Configuration Precedence
//
// Highest wins:
//   - Environment variables (CHATWIDGET_*), including values from ./.env
//   - ~/.chatwidget/config.toml (or the file passed with --config)
//   - ~/.chatwidget/config.json
//   - Built-in defaults
//
// # Example
//
//	[backend]
//	base_url = "https://chat.example.com"
//
//	[widget]
//	organization = "ReCircle"
//	history_mode = "prior"
//	empty_suggestions = "clear"
//
// The same values can be set with CHATWIDGET_BACKEND_URL and
// CHATWIDGET_WIDGET_HISTORY_MODE.
package config
