package components

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// ColourSet represents a semantic color set with base, on-base, muted, and contrast colors.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by form components.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Danger  ColourSet
	Neutral ColourSet
}

// PaletteSlot provides access to a semantic colour slot.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
)

const spacingSizeCount = int(SpacingSizeLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores distinct spacing scales for padding and margin.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantLabel
	TypographyVariantCaption
	TypographyVariantCounter
	TypographyVariantEmphasis
)

// TypographyScale contains the semantic typography presets used by field chrome.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Label    lipgloss.Style
	Caption  lipgloss.Style
	Counter  lipgloss.Style
	Emphasis lipgloss.Style
}

// FieldState distinguishes resting and focused field chrome.
type FieldState int

const (
	FieldStateDefault FieldState = iota
	FieldStateFocus
)

// FieldStyles describes default/focus styles for text-entry fields.
type FieldStyles struct {
	Default lipgloss.Style
	Focus   lipgloss.Style
}

// Theme represents the global styling theme for components.
type Theme struct {
	Palette    Palette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Field      FieldStyles
}

// ThemeManager coordinates access to a Theme instance.
type ThemeManager struct {
	mu    sync.RWMutex
	theme Theme
}

// NewThemeManager allocates a ThemeManager with the provided theme.
func NewThemeManager(theme Theme) *ThemeManager {
	return &ThemeManager{theme: normalizeTheme(theme)}
}

// SetTheme replaces the managed theme.
func (m *ThemeManager) SetTheme(theme Theme) {
	m.mu.Lock()
	m.theme = normalizeTheme(theme)
	m.mu.Unlock()
}

// Theme returns a copy of the managed theme.
func (m *ThemeManager) Theme() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

func normalizeTheme(theme Theme) Theme {
	theme.Spacing = normalizeSpacingConfig(theme.Spacing)
	return theme
}

func normalizeSpacingConfig(cfg SpacingConfig) SpacingConfig {
	if spacingTableIsZero(cfg.Padding) {
		cfg.Padding = defaultSpacingTable()
	}
	if spacingTableIsZero(cfg.Margin) {
		cfg.Margin = defaultSpacingTable()
	}
	return cfg
}

func spacingTableIsZero(table spacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      2,
		SpacingSizeMedium:     3,
		SpacingSizeLarge:      4,
	}
}

// DefaultTheme returns the default theme for components.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#3b82f6", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#2563eb", "#1d4ed8"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#3b82f6", "#60a5fa"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#f87171"),
			OnBase:   ac("#7f1d1d", "#450a0a"),
			Muted:    ac("#dc2626", "#b91c1c"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f1f5f9", "#0f172a"),
			Muted:    ac("#475569", "#334155"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}

	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}

	typography := defaultTypography(palette)

	spacing := SpacingConfig{
		Padding: defaultSpacingTable(),
		Margin:  defaultSpacingTable(),
	}

	field := FieldStyles{
		Default: lipgloss.NewStyle().
			BorderStyle(borders.Rounded).
			BorderForeground(palette.Neutral.Muted).
			Foreground(palette.Surface.OnBase),
		Focus: lipgloss.NewStyle().
			BorderStyle(borders.Thick).
			BorderForeground(palette.Primary.Base).
			Foreground(palette.Surface.OnBase),
	}

	theme := Theme{
		Palette:    palette,
		Borders:    borders,
		Spacing:    spacing,
		Typography: typography,
		Field:      field,
	}

	return normalizeTheme(theme)
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Label:    base.Bold(true),
		Caption:  base.Foreground(p.Neutral.Base).Faint(true),
		Counter:  base.Foreground(p.Neutral.Base).Faint(true),
		Emphasis: base.Bold(true),
	}
}

// DarkTheme returns a dark theme variant.
func DarkTheme() Theme {
	theme := DefaultTheme()

	theme.Palette.Surface = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#111827", Dark: "#0b1120"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#e5e7eb"},
		Muted:    lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#111827"},
		Contrast: lipgloss.AdaptiveColor{Light: "#3b82f6", Dark: "#60a5fa"},
	}

	theme.Palette.Neutral = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#475569", Dark: "#334155"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#cbd5f5"},
		Muted:    lipgloss.AdaptiveColor{Light: "#374151", Dark: "#1f2937"},
		Contrast: lipgloss.AdaptiveColor{Light: "#f8fafc", Dark: "#f8fafc"},
	}

	theme.Typography = defaultTypography(theme.Palette)
	return normalizeTheme(theme)
}

// LightTheme returns a light theme variant.
func LightTheme() Theme {
	return DefaultTheme()
}

var defaultThemeManager = NewThemeManager(DefaultTheme())

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	defaultThemeManager.SetTheme(theme)
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return defaultThemeManager.Theme()
}

// Helper functions to access theme properties using typed variants

func BorderStyle(variant BorderVariant) lipgloss.Border {
	return borderForVariant(GetTheme(), variant)
}

func PaddingValue(size SpacingSize) int {
	return spacingLookup(GetTheme().Spacing.Padding, size)
}

func MarginValue(size SpacingSize) int {
	return spacingLookup(GetTheme().Spacing.Margin, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// TypographyStyle returns the specified typography style from the current theme.
func TypographyStyle(variant TypographyVariant) lipgloss.Style {
	typo := GetTheme().Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantLabel:
		return typo.Label
	case TypographyVariantCaption:
		return typo.Caption
	case TypographyVariantCounter:
		return typo.Counter
	case TypographyVariantEmphasis:
		return typo.Emphasis
	default:
		return typo.Base
	}
}

// FieldStyle returns the field chrome for the given interaction state.
func FieldStyle(state FieldState) lipgloss.Style {
	field := GetTheme().Field
	if state == FieldStateFocus {
		return field.Focus
	}
	return field.Default
}

// StyleApplier represents a function that can apply styling to a lipgloss.Style
type StyleApplier interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc implements StyleApplier for a function type
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

func (fn StyleFunc) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	return fn(base, theme)
}

// Style applies a series of modifiers to create a final style
func Style(base lipgloss.Style, appliers ...StyleApplier) lipgloss.Style {
	theme := GetTheme()
	for _, applier := range appliers {
		base = applier.Apply(base, theme)
	}
	return base
}

func cloneAppliers(base []StyleApplier, extras ...StyleApplier) []StyleApplier {
	cloned := make([]StyleApplier, len(base)+len(extras))
	copy(cloned, base)
	copy(cloned[len(base):], extras)
	return cloned
}

// Fluent modifier functions

// Background applies a semantic background colour and matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Foreground(cs.Base)
	}
}

func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(borderForVariant(theme, variant))
	}
}

func borderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return theme.Borders.None
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.Padding(value)
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

func Margin(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Margin, size)
		return base.Margin(value)
	}
}

func MarginX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Margin, size)
		return base.MarginLeft(value).MarginRight(value)
	}
}

// Typography applies typography styling
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(variant))
	}
}

// Predefined style bundles for the field regions

func FieldBaseStyle() []StyleApplier {
	return []StyleApplier{
		StyleFunc(func(base lipgloss.Style, theme Theme) lipgloss.Style {
			return base.Inherit(theme.Field.Default).
				BorderStyle(theme.Borders.Rounded).
				BorderForeground(theme.Palette.Neutral.Muted)
		}),
	}
}

func FieldFocusStyle() []StyleApplier {
	return []StyleApplier{
		StyleFunc(func(base lipgloss.Style, theme Theme) lipgloss.Style {
			return base.Inherit(theme.Field.Focus).
				BorderStyle(theme.Borders.Thick).
				BorderForeground(theme.Palette.Primary.Base)
		}),
	}
}

func LabelBaseStyle() []StyleApplier {
	return []StyleApplier{
		Typography(TypographyVariantLabel),
	}
}

func CaptionBaseStyle() []StyleApplier {
	return []StyleApplier{
		Typography(TypographyVariantCaption),
	}
}

func CounterBaseStyle() []StyleApplier {
	return []StyleApplier{
		Typography(TypographyVariantCounter),
	}
}
