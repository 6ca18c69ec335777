package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestEffectiveTextareaVariant(t *testing.T) {
	assert.Equal(t, TextareaVariantDefault, effectiveTextareaVariant(TextareaVariantDefault, ""))
	assert.Equal(t, TextareaVariantError, effectiveTextareaVariant(TextareaVariantError, ""))
	assert.Equal(t, TextareaVariantError, effectiveTextareaVariant(TextareaVariantDefault, "too long"),
		"a non-empty error message should force the error variant")
}

func TestResolveTextareaStylesIsTotal(t *testing.T) {
	variants := []TextareaVariant{TextareaVariantDefault, TextareaVariantError}
	sizes := []TextareaSize{TextareaSizeSmall, TextareaSizeMedium, TextareaSizeLarge}

	for _, variant := range variants {
		for _, size := range sizes {
			for _, disabled := range []bool{false, true} {
				for _, focused := range []bool{false, true} {
					styles := ResolveTextareaStyles(variant, size, disabled, focused)
					assert.NotEqual(t, lipgloss.Style{}, styles.Field)
					assert.NotEqual(t, lipgloss.Style{}, styles.Label)
				}
			}
		}
	}
}

func TestResolveTextareaStylesErrorBorder(t *testing.T) {
	theme := GetTheme()

	styles := ResolveTextareaStyles(TextareaVariantError, TextareaSizeMedium, false, false)
	assert.Equal(t, theme.Palette.Danger.Base, styles.Field.GetBorderTopForeground(),
		"error variant should use the danger border colour")

	normal := ResolveTextareaStyles(TextareaVariantDefault, TextareaSizeMedium, false, false)
	assert.NotEqual(t, normal.Field.GetBorderTopForeground(), styles.Field.GetBorderTopForeground())
}

func TestResolveTextareaStylesFocusBorder(t *testing.T) {
	focused := ResolveTextareaStyles(TextareaVariantDefault, TextareaSizeMedium, false, true)
	blurred := ResolveTextareaStyles(TextareaVariantDefault, TextareaSizeMedium, false, false)

	assert.Equal(t, lipgloss.ThickBorder(), focused.Field.GetBorderStyle())
	assert.Equal(t, lipgloss.RoundedBorder(), blurred.Field.GetBorderStyle())
}

func TestResolveTextareaStylesDisabled(t *testing.T) {
	disabled := ResolveTextareaStyles(TextareaVariantDefault, TextareaSizeMedium, true, false)
	assert.True(t, disabled.Field.GetFaint(), "disabled field should render faint")
	assert.True(t, disabled.Label.GetFaint(), "disabled label should render faint")

	// Focus chrome never applies while disabled.
	focusedDisabled := ResolveTextareaStyles(TextareaVariantDefault, TextareaSizeMedium, true, true)
	assert.Equal(t, lipgloss.RoundedBorder(), focusedDisabled.Field.GetBorderStyle())
}

func TestResolveTextareaStylesSizes(t *testing.T) {
	small := ResolveTextareaStyles(TextareaVariantDefault, TextareaSizeSmall, false, false)
	medium := ResolveTextareaStyles(TextareaVariantDefault, TextareaSizeMedium, false, false)
	large := ResolveTextareaStyles(TextareaVariantDefault, TextareaSizeLarge, false, false)

	assert.Less(t, small.Field.GetPaddingLeft(), medium.Field.GetPaddingLeft())
	assert.Less(t, medium.Field.GetPaddingLeft(), large.Field.GetPaddingLeft())
}
