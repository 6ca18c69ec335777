package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/weftkit/weft/internal/components"
)

// View renders the demo screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := components.Style(
		lipgloss.NewStyle(),
		components.Typography(components.TypographyVariantTitle),
	).Render("Weft textarea demo")

	status := components.Style(
		lipgloss.NewStyle(),
		components.Typography(components.TypographyVariantCaption),
	).Render(fmt.Sprintf("rows: %d", m.textarea.Height()))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		m.textarea.View(),
		"",
		status,
	)
}
