// Package components provides theme-aware form components for terminal
// applications, built on lipgloss and the bubbles input models.
//
// The centerpiece is Textarea, a styled multi-line text input with an
// optional label, caption or error text, a character counter, and
// content-driven height:
//
//	ta := components.NewTextarea(components.TextareaOptions{
//		Label:      "Bio",
//		Caption:    "Tell us about yourself",
//		MaxLength:  280,
//		ShowCount:  true,
//		AutoResize: true,
//		MinRows:    3,
//		MaxRows:    10,
//	})
//
// Styling flows through a global Theme of semantic colour slots, borders,
// spacing, and typography tokens. Components resolve their visual
// treatment from typed enums (variant, size, state) rather than magic
// strings, and the fluent StyleFunc modifiers let hosts restyle any
// region:
//
//	style := components.Style(
//		lipgloss.NewStyle(),
//		components.Foreground(components.PaletteDanger),
//		components.Typography(components.TypographyVariantLabel),
//	)
package components
