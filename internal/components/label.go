package components

import "github.com/charmbracelet/lipgloss"

// Label represents a form field label with an optional required marker.
type Label struct {
	text     string
	required bool
	style    lipgloss.Style
}

// NewLabel creates a new label with the given text.
func NewLabel(text string) *Label {
	return &Label{
		text:  text,
		style: Style(lipgloss.NewStyle(), LabelBaseStyle()...),
	}
}

// WithRequired toggles the required marker.
func (l *Label) WithRequired(required bool) *Label {
	l.required = required
	return l
}

// WithStyle sets a custom style for the label text.
func (l *Label) WithStyle(style lipgloss.Style) *Label {
	l.style = style
	return l
}

// View renders the label.
func (l *Label) View() string {
	if l.text == "" {
		return ""
	}

	out := l.style.Render(l.text)
	if l.required {
		marker := Style(lipgloss.NewStyle(), Foreground(PaletteDanger)).Render("*")
		out += " " + marker
	}
	return out
}

// Caption represents helper text displayed under a form field.
type Caption struct {
	text  string
	style lipgloss.Style
}

// NewCaption creates a new caption with the given text.
func NewCaption(text string) *Caption {
	return &Caption{
		text:  text,
		style: Style(lipgloss.NewStyle(), CaptionBaseStyle()...),
	}
}

// WithStyle sets a custom style for the caption text.
func (c *Caption) WithStyle(style lipgloss.Style) *Caption {
	c.style = style
	return c
}

// View renders the caption.
func (c *Caption) View() string {
	if c.text == "" {
		return ""
	}
	return c.style.Render(c.text)
}

// ErrorCaption creates a caption styled as an error message.
func ErrorCaption(text string) *Caption {
	return NewCaption(text).WithStyle(
		Style(lipgloss.NewStyle(), Foreground(PaletteDanger)),
	)
}
