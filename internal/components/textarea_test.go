package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeRunes(t *testing.T, ta *Textarea, s string) {
	t.Helper()
	ta.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestNewTextarea(t *testing.T) {
	ta := NewTextarea(TextareaOptions{Label: "Bio"})

	require.NotNil(t, ta)
	assert.Equal(t, "", ta.Value())
	assert.Equal(t, 0, ta.CharCount())
	assert.Equal(t, defaultTextareaRows, ta.Height())
	assert.False(t, ta.Focused())
}

func TestTextareaBuilders(t *testing.T) {
	ta := SimpleTextarea("Bio")

	assert.Same(t, ta, ta.WithVariant(TextareaVariantError))
	assert.Same(t, ta, ta.WithSize(TextareaSizeLarge))
	assert.Same(t, ta, ta.WithRequired(true))
	assert.Same(t, ta, ta.WithCaption("Tell us about yourself"))
	assert.Same(t, ta, ta.WithMaxLength(140))
	assert.Same(t, ta, ta.WithShowCount(true))

	assert.Equal(t, TextareaVariantError, ta.options.Variant)
	assert.Equal(t, TextareaSizeLarge, ta.options.Size)
	assert.True(t, ta.options.Required)
	assert.Equal(t, 140, ta.options.MaxLength)
}

func TestTextareaAcceptedEditsUpdateCount(t *testing.T) {
	ta := NewTextarea(TextareaOptions{})
	ta.Focus()

	typeRunes(t, ta, "hello")

	assert.Equal(t, "hello", ta.Value())
	assert.Equal(t, 5, ta.CharCount())
}

func TestTextareaOnChangeFiresOncePerAcceptedEdit(t *testing.T) {
	var calls []string
	ta := NewTextarea(TextareaOptions{}).WithOnChange(func(v string) {
		calls = append(calls, v)
	})
	ta.Focus()

	typeRunes(t, ta, "a")
	typeRunes(t, ta, "b")
	typeRunes(t, ta, "c")

	require.Len(t, calls, 3)
	assert.Equal(t, []string{"a", "ab", "abc"}, calls)
}

func TestTextareaRejectsEditsBeyondMaxLength(t *testing.T) {
	var calls int
	ta := NewTextarea(TextareaOptions{MaxLength: 5}).WithOnChange(func(string) {
		calls++
	})
	ta.Focus()

	typeRunes(t, ta, "hello")
	require.Equal(t, "hello", ta.Value())
	require.Equal(t, 1, calls)

	typeRunes(t, ta, "!")

	assert.Equal(t, "hello", ta.Value(), "over-limit edit should leave the value unchanged")
	assert.Equal(t, 5, ta.CharCount())
	assert.Equal(t, 1, calls, "rejected edits should not notify")
}

func TestTextareaRejectsMidLineInsertions(t *testing.T) {
	var calls int
	ta := NewTextarea(TextareaOptions{MaxLength: 6}).WithOnChange(func(string) {
		calls++
	})
	ta.Focus()

	typeRunes(t, ta, "abcdef")
	require.Equal(t, "abcdef", ta.Value())
	require.Equal(t, 1, calls)

	for i := 0; i < 3; i++ {
		ta.Update(tea.KeyMsg{Type: tea.KeyLeft})
	}

	cmd := ta.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})

	assert.Equal(t, "abcdef", ta.Value(), "an insertion in the middle of the line must not land")
	assert.Equal(t, 1, calls, "rejected edits should not notify")
	assert.NotNil(t, cmd, "the cursor command should survive a rejected keystroke")

	ta.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "abdef", ta.Value(), "the cursor should stay where the rejected edit happened")
}

func TestTextareaRejectionPreservesCursorRow(t *testing.T) {
	ta := NewTextarea(TextareaOptions{MaxLength: 7})
	ta.Focus()

	typeRunes(t, ta, "one")
	ta.Update(tea.KeyMsg{Type: tea.KeyEnter})
	typeRunes(t, ta, "two")
	require.Equal(t, "one\ntwo", ta.Value())

	ta.Update(tea.KeyMsg{Type: tea.KeyUp})
	typeRunes(t, ta, "X")

	assert.Equal(t, "one\ntwo", ta.Value())
	assert.Equal(t, 0, ta.Model().Line(), "the cursor should stay on its row after a rejected edit")
}

func TestTextareaMaxLengthCountsRunes(t *testing.T) {
	ta := NewTextarea(TextareaOptions{MaxLength: 2})
	ta.Focus()

	typeRunes(t, ta, "éé")
	assert.Equal(t, "éé", ta.Value())

	typeRunes(t, ta, "é")
	assert.Equal(t, "éé", ta.Value())
}

func TestTextareaCounterScenario(t *testing.T) {
	ta := NewTextarea(TextareaOptions{MaxLength: 280, ShowCount: true})
	ta.Focus()

	typeRunes(t, ta, "hello")
	assert.Contains(t, ta.View(), "5/280")

	typeRunes(t, ta, strings.Repeat("x", 275))
	assert.Equal(t, 280, ta.CharCount())
	assert.Contains(t, ta.View(), "280/280")

	typeRunes(t, ta, "y")
	assert.Equal(t, 280, ta.CharCount(), "the 281st character should be rejected")
	assert.Contains(t, ta.View(), "280/280")
}

func TestTextareaCounterRequiresMaxLength(t *testing.T) {
	ta := NewTextarea(TextareaOptions{ShowCount: true})
	ta.Focus()
	typeRunes(t, ta, "hello")

	assert.NotContains(t, ta.View(), "/", "counter should not render without a max length")

	ta = NewTextarea(TextareaOptions{MaxLength: 10})
	ta.Focus()
	typeRunes(t, ta, "hello")

	assert.NotContains(t, ta.View(), "5/10", "counter should not render without the show flag")
}

func TestTextareaDisabledSuppressesEdits(t *testing.T) {
	var calls int
	ta := NewTextarea(TextareaOptions{Disabled: true}).WithOnChange(func(string) {
		calls++
	})

	assert.Nil(t, ta.Focus(), "disabled fields should refuse focus")

	typeRunes(t, ta, "hello")

	assert.Equal(t, "", ta.Value())
	assert.Equal(t, 0, calls)
}

func TestTextareaDisableAfterFocus(t *testing.T) {
	ta := NewTextarea(TextareaOptions{})
	ta.Focus()
	typeRunes(t, ta, "a")

	ta.WithDisabled(true)
	assert.False(t, ta.Focused(), "disabling should blur the field")

	typeRunes(t, ta, "b")
	assert.Equal(t, "a", ta.Value())
}

func TestTextareaAutoResizeClampsHeight(t *testing.T) {
	ta := NewTextarea(TextareaOptions{
		AutoResize: true,
		MinRows:    3,
		MaxRows:    10,
		Width:      10,
	})

	assert.Equal(t, 3, ta.Height(), "empty content should sit at the minimum")

	ta.SetValue("a\nb\nc\nd\ne")
	assert.Equal(t, 5, ta.Height(), "content within bounds should size to fit")

	ta.SetValue(strings.Repeat("line\n", 11) + "line")
	assert.Equal(t, 10, ta.Height(), "content beyond the maximum should clamp")

	ta.SetValue("")
	assert.Equal(t, 3, ta.Height(), "shrinking content should shrink the field")
}

func TestTextareaAutoResizeCountsWrappedLines(t *testing.T) {
	ta := NewTextarea(TextareaOptions{
		AutoResize: true,
		MinRows:    1,
		Width:      10,
	})

	ta.SetValue(strings.Repeat("x", 25))
	assert.Equal(t, 3, ta.Height(), "soft-wrapped content should count wrapped rows")
}

func TestTextareaAutoResizeUnboundedMax(t *testing.T) {
	ta := NewTextarea(TextareaOptions{
		AutoResize: true,
		MinRows:    1,
		Width:      10,
	})

	ta.SetValue(strings.Repeat("a\n", 39) + "a")
	assert.Equal(t, 40, ta.Height())
}

func TestTextareaFixedHeightWithoutAutoResize(t *testing.T) {
	ta := NewTextarea(TextareaOptions{Rows: 4, Width: 10})

	assert.Equal(t, 4, ta.Height())

	ta.SetValue(strings.Repeat("line\n", 9) + "line")
	assert.Equal(t, 4, ta.Height(), "height should never be overridden when auto-resize is off")
}

func TestTextareaAutoResizeOnAcceptedEdit(t *testing.T) {
	ta := NewTextarea(TextareaOptions{
		AutoResize: true,
		MinRows:    1,
		MaxRows:    5,
		Width:      10,
	})
	ta.Focus()

	typeRunes(t, ta, strings.Repeat("x", 25))
	assert.Equal(t, 3, ta.Height())
}

func TestTextareaViewRegions(t *testing.T) {
	ta := NewTextarea(TextareaOptions{
		Label:   "Bio",
		Caption: "Tell us about yourself",
	})

	view := ta.View()
	assert.Contains(t, view, "Bio")
	assert.Contains(t, view, "Tell us about yourself")
}

func TestTextareaRequiredMarker(t *testing.T) {
	ta := NewTextarea(TextareaOptions{Label: "Bio", Required: true})
	assert.Contains(t, ta.View(), "*")

	ta = NewTextarea(TextareaOptions{Label: "Bio"})
	assert.NotContains(t, ta.View(), "*")
}

func TestTextareaErrorReplacesCaption(t *testing.T) {
	ta := NewTextarea(TextareaOptions{
		Label:   "Bio",
		Caption: "Tell us about yourself",
		Error:   "bio is too long",
	})

	view := ta.View()
	assert.Contains(t, view, "bio is too long")
	assert.NotContains(t, view, "Tell us about yourself")
}

func TestTextareaFocusChrome(t *testing.T) {
	ta := NewTextarea(TextareaOptions{})

	blurred := ta.View()
	assert.Contains(t, blurred, "╭", "blurred field should use the rounded border")

	ta.Focus()
	focused := ta.View()
	assert.Contains(t, focused, "┏", "focused field should use the thick border")
}

func TestTextareaControlledValue(t *testing.T) {
	var calls int
	ta := NewTextarea(TextareaOptions{}).WithOnChange(func(string) {
		calls++
	})

	ta.SetValue("from the host")

	assert.Equal(t, "from the host", ta.Value())
	assert.Equal(t, 0, calls, "host-initiated sets should not echo back")
}

func TestTextareaInitialValue(t *testing.T) {
	ta := NewTextarea(TextareaOptions{}).WithInitialValue("draft")
	assert.Equal(t, "draft", ta.Value())
	assert.Equal(t, 5, ta.CharCount())
}
