package components

import "github.com/charmbracelet/lipgloss"

// TextareaVariant represents the validation treatment of a textarea.
type TextareaVariant int

const (
	TextareaVariantDefault TextareaVariant = iota
	TextareaVariantError
)

// TextareaSize represents different textarea sizes.
type TextareaSize int

const (
	TextareaSizeSmall TextareaSize = iota
	TextareaSizeMedium
	TextareaSizeLarge
)

// TextareaStyles groups the resolved styles for each region of a textarea.
type TextareaStyles struct {
	Field   lipgloss.Style
	Label   lipgloss.Style
	Caption lipgloss.Style
	Counter lipgloss.Style
}

// effectiveTextareaVariant resolves the variant actually rendered. A
// non-empty error message forces the error variant regardless of the
// caller-supplied variant.
func effectiveTextareaVariant(variant TextareaVariant, errorText string) TextareaVariant {
	if errorText != "" {
		return TextareaVariantError
	}
	return variant
}

// ResolveTextareaStyles maps variant, size, disabled, and focus state to the
// concrete styles for a textarea's field, label, caption, and counter
// regions. It is total over its inputs.
func ResolveTextareaStyles(variant TextareaVariant, size TextareaSize, disabled, focused bool) TextareaStyles {
	fieldAppliers := FieldBaseStyle()
	if focused && !disabled {
		fieldAppliers = FieldFocusStyle()
	}
	fieldAppliers = cloneAppliers(fieldAppliers, textareaSizeAppliers(size)...)

	field := Style(lipgloss.NewStyle(), fieldAppliers...)
	label := Style(lipgloss.NewStyle(), LabelBaseStyle()...)
	caption := Style(lipgloss.NewStyle(), CaptionBaseStyle()...)
	counter := Style(lipgloss.NewStyle(), CounterBaseStyle()...)

	theme := GetTheme()

	switch {
	case disabled:
		field = field.Faint(true).BorderForeground(theme.Palette.Neutral.Muted)
		label = label.Faint(true)
		caption = caption.Faint(true)
		counter = counter.Faint(true)
	case variant == TextareaVariantError:
		field = field.BorderForeground(theme.Palette.Danger.Base)
		caption = Style(lipgloss.NewStyle(), Foreground(PaletteDanger))
	}

	return TextareaStyles{
		Field:   field,
		Label:   label,
		Caption: caption,
		Counter: counter,
	}
}

func textareaSizeAppliers(size TextareaSize) []StyleApplier {
	switch size {
	case TextareaSizeSmall:
		return []StyleApplier{
			PaddingX(SpacingSizeNone),
		}
	case TextareaSizeLarge:
		return []StyleApplier{
			PaddingX(SpacingSizeSmall),
		}
	default:
		return []StyleApplier{
			PaddingX(SpacingSizeExtraSmall),
		}
	}
}
