package config

// Config is the root of a theme override file.
type Config struct {
	Theme ThemeConfig `yaml:"theme"`
	Field FieldConfig `yaml:"field"`
}

// ThemeConfig selects a base theme and overrides individual palette slots.
type ThemeConfig struct {
	Base    string        `yaml:"base" validate:"omitempty,oneof=default dark light"`
	Palette PaletteConfig `yaml:"palette"`
}

// PaletteConfig carries optional overrides for the semantic colour slots.
// Absent slots keep the base theme's colours.
type PaletteConfig struct {
	Primary *ColourConfig `yaml:"primary"`
	Surface *ColourConfig `yaml:"surface"`
	Danger  *ColourConfig `yaml:"danger"`
	Neutral *ColourConfig `yaml:"neutral"`
}

// ColourConfig overrides the base colour of one slot for light and dark
// backgrounds.
type ColourConfig struct {
	Light string `yaml:"light" validate:"omitempty,hexcolor"`
	Dark  string `yaml:"dark" validate:"omitempty,hexcolor"`
}

// FieldConfig overrides the default field geometry used by the demo.
type FieldConfig struct {
	Width   int `yaml:"width" validate:"omitempty,min=10,max=200"`
	MinRows int `yaml:"min_rows" validate:"omitempty,min=1"`
	MaxRows int `yaml:"max_rows" validate:"omitempty,min=1"`
}
