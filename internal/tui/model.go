package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/weftkit/weft/internal/components"
	"github.com/weftkit/weft/internal/logger"
)

// Options configures the demo program.
type Options struct {
	Width     int
	MinRows   int
	MaxRows   int
	MaxLength int
	Log       *logger.Logger
}

// Model contains the Bubbletea state for the component demo.
type Model struct {
	textarea *components.Textarea
	log      *logger.Logger
	width    int
	height   int
	disabled bool
	quitting bool
}

// NewModel constructs the demo model around a single textarea.
func NewModel(opts Options) Model {
	if opts.Width <= 0 {
		opts.Width = 60
	}
	if opts.MinRows <= 0 {
		opts.MinRows = 3
	}
	if opts.MaxRows <= 0 {
		opts.MaxRows = 10
	}
	if opts.MaxLength <= 0 {
		opts.MaxLength = 280
	}

	ta := components.NewTextarea(components.TextareaOptions{
		Label:       "Message",
		Caption:     "ctrl+d toggles disabled, esc quits",
		Placeholder: "Say something...",
		Required:    true,
		MaxLength:   opts.MaxLength,
		ShowCount:   true,
		AutoResize:  true,
		MinRows:     opts.MinRows,
		MaxRows:     opts.MaxRows,
		Width:       opts.Width,
	})

	return Model{
		textarea: ta,
		log:      opts.Log.WithComponent("demo"),
	}
}

// Init starts the cursor blink and focuses the field.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.textarea.Init(), m.textarea.Focus())
}

// Textarea exposes the demo's field, mainly for tests.
func (m Model) Textarea() *components.Textarea {
	return m.textarea
}

// Quitting reports whether the demo is shutting down.
func (m Model) Quitting() bool {
	return m.quitting
}
