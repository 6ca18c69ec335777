package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update routes messages to the textarea and handles program-level keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if msg.Width > 8 {
			m.textarea.WithWidth(msg.Width - 8)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			if m.log != nil {
				m.log.Debug("demo exiting")
			}
			return m, tea.Quit
		case tea.KeyCtrlD:
			m.disabled = !m.disabled
			m.textarea.WithDisabled(m.disabled)
			if !m.disabled {
				return m, m.textarea.Focus()
			}
			return m, nil
		}
	}

	return m, m.textarea.Update(msg)
}
