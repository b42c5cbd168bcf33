// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/export"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/ui/styles"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/validate"
	"github.com/VishalSingh1806/ChatBot-RAG/internal/widget"
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the widget host.
type Model struct {
	ctx    context.Context
	widget *widget.Widget
	events <-chan widget.Event

	theme      *styles.Theme
	keys       KeyMap
	help       help.Model
	exportOpts *export.Options

	// Dimensions
	width  int
	height int

	// UI components
	viewport viewport.Model
	composer textinput.Model
	fields   []textinput.Model
	spinner  spinner.Model

	// focus indexes fields; len(fields) is the submit button.
	focus int

	rendered   int
	submitting bool
	notice     string
	noticeErr  bool
	quitting   bool
}

// New creates the host for w. Events must be the bridge w reports to.
func New(ctx context.Context, w *widget.Widget, bridge *EventBridge, theme *styles.Theme) Model {
	if theme == nil {
		theme = styles.NewTheme()
	}

	composer := textinput.New()
	composer.Placeholder = "Type your question..."
	composer.Prompt = "> "
	composer.CharLimit = 4000

	fields := make([]textinput.Model, len(validate.Fields))
	for i, f := range validate.Fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholderFor(f)
		ti.CharLimit = 120
		fields[i] = ti
	}
	fields[0].Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = theme.Typing

	return Model{
		ctx:        ctx,
		widget:     w,
		events:     bridge.Events(),
		theme:      theme,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		exportOpts: export.DefaultOptions(),
		viewport:   viewport.New(80, 10),
		composer:   composer,
		fields:     fields,
		spinner:    sp,
	}
}

// WithExportOptions sets where ctrl+e writes the Markdown transcript.
func (m Model) WithExportOptions(opts *export.Options) Model {
	if opts != nil {
		m.exportOpts = opts
	}
	return m
}

func placeholderFor(f validate.Field) string {
	switch f {
	case validate.FieldName:
		return "Jane Doe"
	case validate.FieldEmail:
		return "jane@example.com"
	case validate.FieldPhone:
		return "98765 43210"
	default:
		return "Acme Corp"
	}
}

// Init starts the handshake and the event pump.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		initCmd(m.ctx, m.widget),
		WaitForEvent(m.events),
		m.spinner.Tick,
		textinput.Blink,
	)
}

// Update handles a message, then recomputes the layout.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.layout()
	return m, cmd
}

// View renders the host.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.viewport.View(),
		m.bottomView(),
	)
}

// Widget returns the hosted widget.
func (m Model) Widget() *widget.Widget {
	return m.widget
}

// Notice returns the last host notice.
func (m Model) Notice() string {
	return m.notice
}

// layout sizes the viewport to what the chrome leaves and refreshes its
// content, following the conversation when new messages arrive.
func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	chrome := lipgloss.Height(m.headerView()) + lipgloss.Height(m.bottomView())
	h := m.height - chrome
	if h < 3 {
		h = 3
	}
	m.viewport.Width = m.width
	m.viewport.Height = h
	m.composer.Width = m.width - 6

	msgs := m.widget.Messages()
	follow := m.viewport.AtBottom() || len(msgs) != m.rendered
	m.viewport.SetContent(renderTranscript(m.theme, msgs, m.widget.Organization(), m.width))
	m.rendered = len(msgs)
	if follow {
		m.viewport.GotoBottom()
	}
}
