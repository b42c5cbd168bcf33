// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// BRAND COLORS
// =============================================================================

// Brand - header, focus ring, primary button
var Brand = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"}

// BrandDeep - button background
var BrandDeep = lipgloss.AdaptiveColor{Light: "#065F46", Dark: "#064E3B"}

// Accent - bot messages and suggestion chips
var Accent = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// =============================================================================
// STATUS COLORS
// =============================================================================

// Online - session ready
var Online = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#22C55E"}

// Connecting - handshake in flight
var Connecting = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// Offline - no session
var Offline = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}

// Danger - errors, banner
var Danger = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// DangerDeep - banner background
var DangerDeep = lipgloss.AdaptiveColor{Light: "#FFE4E6", Dark: "#881337"}

// =============================================================================
// SURFACE AND TEXT
// =============================================================================

var (
	Surface    = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}
	SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#181825"}
	Overlay    = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}
	OverlayDim = lipgloss.AdaptiveColor{Light: "#D4D4D4", Dark: "#45475A"}

	TextPrimary   = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}
	TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}
	TextMuted     = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}
	TextInverse   = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#11111B"}
)

// Message bubbles.
var (
	UserBubbleBg     = lipgloss.AdaptiveColor{Light: "#ECFDF5", Dark: "#1F3B33"}
	UserBubbleFg     = lipgloss.AdaptiveColor{Light: "#064E3B", Dark: "#D1FAE5"}
	UserBubbleBorder = lipgloss.AdaptiveColor{Light: "#6EE7B7", Dark: "#34D399"}

	BotBubbleBg     = lipgloss.AdaptiveColor{Light: "#F0F9FF", Dark: "#1E3240"}
	BotBubbleFg     = lipgloss.AdaptiveColor{Light: "#0C4A6E", Dark: "#E0F2FE"}
	BotBubbleBorder = lipgloss.AdaptiveColor{Light: "#7DD3FC", Dark: "#22D3EE"}
)

// LinkColor - links and email addresses
var LinkColor = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}

// =============================================================================
// INDICATORS
// =============================================================================

// StatusDot is drawn before the connectivity label.
const StatusDot = "●"

// RenderNotice renders a one-line host notice.
func RenderNotice(message string) string {
	return lipgloss.NewStyle().Foreground(Accent).Render("[i] " + message)
}

// RenderError renders a one-line error.
func RenderError(message string) string {
	return lipgloss.NewStyle().Foreground(Danger).Render("[X] " + message)
}
