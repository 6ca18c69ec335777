package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModelDefaults(t *testing.T) {
	m := NewModel(Options{})

	require.NotNil(t, m.Textarea())
	assert.False(t, m.Quitting())
	assert.Equal(t, 3, m.Textarea().Height(), "empty field should sit at the minimum rows")
}

func TestUpdateQuitsOnEscape(t *testing.T) {
	m := NewModel(Options{})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	model, ok := next.(Model)
	require.True(t, ok)
	assert.True(t, model.Quitting())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestUpdateForwardsEditsToTextarea(t *testing.T) {
	m := NewModel(Options{})
	m.Textarea().Focus()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})

	model := next.(Model)
	assert.Equal(t, "hi", model.Textarea().Value())
}

func TestUpdateTogglesDisabled(t *testing.T) {
	m := NewModel(Options{})
	m.Textarea().Focus()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	model := next.(Model)

	next, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	model = next.(Model)
	assert.Equal(t, "", model.Textarea().Value(), "edits should be suppressed while disabled")
}

func TestUpdateResizesWithWindow(t *testing.T) {
	m := NewModel(Options{Width: 60})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	model := next.(Model)

	view := model.View()
	assert.NotEmpty(t, view)
}

func TestViewContainsFieldChrome(t *testing.T) {
	m := NewModel(Options{})

	view := m.View()
	assert.Contains(t, view, "Message")
	assert.Contains(t, view, "0/280")
	assert.True(t, strings.Contains(view, "rows: 3"))
}
