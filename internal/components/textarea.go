package components

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultTextareaWidth = 40
	defaultTextareaRows  = 3
)

// TextareaOptions defines the configuration options for a textarea.
type TextareaOptions struct {
	Variant     TextareaVariant
	Size        TextareaSize
	Disabled    bool
	Required    bool
	Label       string
	Caption     string
	Error       string
	Placeholder string

	// MaxLength is a hard cap on the value's rune count. Zero means no cap.
	MaxLength int
	// ShowCount renders a current/max counter. Requires MaxLength.
	ShowCount bool

	// AutoResize grows and shrinks the field to fit its content within
	// [MinRows, MaxRows]. MaxRows of zero leaves the upper bound open.
	// When off, the field keeps a fixed height of Rows.
	AutoResize bool
	MinRows    int
	MaxRows    int
	Rows       int

	Width int
}

// Textarea is a styled multi-line text input with an optional label,
// caption or error text, character counter, and auto-growing height.
type Textarea struct {
	input    textarea.Model
	options  TextareaOptions
	onChange func(string)
}

// NewTextarea creates a new textarea with the given options.
func NewTextarea(opts TextareaOptions) *Textarea {
	if opts.Width <= 0 {
		opts.Width = defaultTextareaWidth
	}
	if opts.Rows <= 0 {
		opts.Rows = defaultTextareaRows
	}
	if opts.MinRows <= 0 {
		opts.MinRows = 1
	}

	ta := textarea.New()
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Placeholder = opts.Placeholder
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.BlurredStyle.CursorLine = lipgloss.NewStyle()
	ta.SetWidth(opts.Width)

	t := &Textarea{
		input:   ta,
		options: opts,
	}
	t.syncHeight()
	return t
}

// SimpleTextarea creates a textarea with sensible defaults.
func SimpleTextarea(label string) *Textarea {
	return NewTextarea(TextareaOptions{
		Label: label,
		Size:  TextareaSizeMedium,
	})
}

// WithVariant sets the textarea variant.
func (t *Textarea) WithVariant(variant TextareaVariant) *Textarea {
	t.options.Variant = variant
	return t
}

// WithSize sets the textarea size.
func (t *Textarea) WithSize(size TextareaSize) *Textarea {
	t.options.Size = size
	return t
}

// WithDisabled sets the textarea disabled state. Disabling blurs the field
// and suppresses all edits.
func (t *Textarea) WithDisabled(disabled bool) *Textarea {
	t.options.Disabled = disabled
	if disabled {
		t.input.Blur()
	}
	return t
}

// WithRequired toggles the required marker next to the label. The marker is
// purely visual; no validation is enforced.
func (t *Textarea) WithRequired(required bool) *Textarea {
	t.options.Required = required
	return t
}

// WithLabel sets the label text.
func (t *Textarea) WithLabel(label string) *Textarea {
	t.options.Label = label
	return t
}

// WithCaption sets the caption text shown under the field.
func (t *Textarea) WithCaption(caption string) *Textarea {
	t.options.Caption = caption
	return t
}

// WithError sets the error text. A non-empty error forces the error variant
// and replaces the caption.
func (t *Textarea) WithError(err string) *Textarea {
	t.options.Error = err
	return t
}

// WithPlaceholder sets the placeholder text.
func (t *Textarea) WithPlaceholder(placeholder string) *Textarea {
	t.options.Placeholder = placeholder
	t.input.Placeholder = placeholder
	return t
}

// WithMaxLength sets the maximum value length in runes. Zero removes the cap.
func (t *Textarea) WithMaxLength(maxLength int) *Textarea {
	t.options.MaxLength = maxLength
	return t
}

// WithShowCount toggles the character counter. The counter only renders when
// a maximum length is also configured.
func (t *Textarea) WithShowCount(show bool) *Textarea {
	t.options.ShowCount = show
	return t
}

// WithAutoResize toggles content-driven height.
func (t *Textarea) WithAutoResize(autoResize bool) *Textarea {
	t.options.AutoResize = autoResize
	t.syncHeight()
	return t
}

// WithMinRows sets the minimum visible rows used by auto-resize.
func (t *Textarea) WithMinRows(rows int) *Textarea {
	if rows < 1 {
		rows = 1
	}
	t.options.MinRows = rows
	t.syncHeight()
	return t
}

// WithMaxRows sets the maximum visible rows used by auto-resize. Zero leaves
// the height unbounded.
func (t *Textarea) WithMaxRows(rows int) *Textarea {
	t.options.MaxRows = rows
	t.syncHeight()
	return t
}

// WithRows sets the fixed height used when auto-resize is off.
func (t *Textarea) WithRows(rows int) *Textarea {
	if rows < 1 {
		rows = 1
	}
	t.options.Rows = rows
	t.syncHeight()
	return t
}

// WithWidth sets the editing area width in columns.
func (t *Textarea) WithWidth(width int) *Textarea {
	if width < 1 {
		width = 1
	}
	t.options.Width = width
	t.input.SetWidth(width)
	t.syncHeight()
	return t
}

// WithInitialValue seeds the value for uncontrolled use.
func (t *Textarea) WithInitialValue(value string) *Textarea {
	t.input.SetValue(value)
	t.syncHeight()
	return t
}

// WithOnChange registers a change callback for controlled use. The callback
// fires at most once per accepted edit and never for rejected edits.
func (t *Textarea) WithOnChange(fn func(string)) *Textarea {
	t.onChange = fn
	return t
}

// Value returns the current value.
func (t *Textarea) Value() string {
	return t.input.Value()
}

// SetValue replaces the current value without invoking the change callback.
func (t *Textarea) SetValue(value string) {
	t.input.SetValue(value)
	t.syncHeight()
}

// CharCount returns the rune count of the current value.
func (t *Textarea) CharCount() int {
	return utf8.RuneCountInString(t.input.Value())
}

// Height returns the field's current height in rows.
func (t *Textarea) Height() int {
	return t.input.Height()
}

// Focused reports whether the field has focus.
func (t *Textarea) Focused() bool {
	return t.input.Focused()
}

// Focus gives the field focus. Disabled fields cannot be focused.
func (t *Textarea) Focus() tea.Cmd {
	if t.options.Disabled {
		return nil
	}
	return t.input.Focus()
}

// Blur removes focus from the field.
func (t *Textarea) Blur() {
	t.input.Blur()
}

// Model exposes the underlying textarea model for native attributes not
// covered by the options.
func (t *Textarea) Model() *textarea.Model {
	return &t.input
}

// Init returns the initial command for the field's cursor.
func (t *Textarea) Init() tea.Cmd {
	return textarea.Blink
}

// Update processes an input event. Edits whose resulting value would exceed
// the configured maximum length are dropped silently: the value is left
// unchanged and the change callback does not fire.
func (t *Textarea) Update(msg tea.Msg) tea.Cmd {
	if t.options.Disabled {
		return nil
	}

	// The inner model's value is a slice of rows, so a struct copy aliases
	// the same backing array and cannot serve as an undo point. Capture the
	// value and cursor instead and rebuild from those on rejection.
	prevValue := t.input.Value()
	prevRow := t.input.Line()
	info := t.input.LineInfo()
	prevCol := info.StartColumn + info.ColumnOffset

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)

	next := t.input.Value()
	if next == prevValue {
		return cmd
	}

	if t.options.MaxLength > 0 && utf8.RuneCountInString(next) > t.options.MaxLength {
		t.restore(prevValue, prevRow, prevCol)
		return cmd
	}

	t.syncHeight()
	if t.onChange != nil {
		t.onChange(next)
	}
	return cmd
}

// restore rewinds the editor to a captured value and cursor position.
func (t *Textarea) restore(value string, row, col int) {
	t.input.SetValue(value)
	for t.input.Line() > row {
		t.input.CursorUp()
	}
	t.input.SetCursor(col)
}

// syncHeight applies the height policy: a fixed row count, or the measured
// content height clamped into [MinRows, MaxRows] when auto-resize is on.
// Re-running it for unchanged content is a no-op.
func (t *Textarea) syncHeight() {
	// MaxHeight also caps the line count during insertion, which would
	// truncate content instead of scrolling it. Leave it unlimited and
	// clamp the applied height here instead.
	t.input.MaxHeight = 0

	if !t.options.AutoResize {
		t.input.SetHeight(t.options.Rows)
		return
	}

	natural := contentRows(t.input.Value(), t.options.Width)
	t.input.SetHeight(clampRows(natural, t.options.MinRows, t.options.MaxRows))
}

// View renders the textarea with its label, field, counter, and caption or
// error text.
func (t *Textarea) View() string {
	variant := effectiveTextareaVariant(t.options.Variant, t.options.Error)
	styles := ResolveTextareaStyles(variant, t.options.Size, t.options.Disabled, t.input.Focused())

	var sections []string

	if t.options.Label != "" {
		label := NewLabel(t.options.Label).
			WithRequired(t.options.Required).
			WithStyle(styles.Label)
		sections = append(sections, label.View())
	}

	field := styles.Field.Render(t.input.View())
	sections = append(sections, field)

	if counter := t.counterView(); counter != "" {
		width := lipgloss.Width(field)
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Right, styles.Counter.Render(counter)))
	}

	switch {
	case t.options.Error != "":
		sections = append(sections, styles.Caption.Render(t.options.Error))
	case t.options.Caption != "":
		sections = append(sections, styles.Caption.Render(t.options.Caption))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// counterView derives the current/max counter text. It renders only when
// both ShowCount and MaxLength are configured.
func (t *Textarea) counterView() string {
	if !t.options.ShowCount || t.options.MaxLength <= 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d", t.CharCount(), t.options.MaxLength)
}
