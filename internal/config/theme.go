package config

import (
	"github.com/weftkit/weft/internal/components"
)

// BuildTheme resolves the base theme named by the config and applies its
// palette overrides. A nil config yields the default theme.
func BuildTheme(cfg *Config) components.Theme {
	if cfg == nil {
		return components.DefaultTheme()
	}

	var theme components.Theme
	switch cfg.Theme.Base {
	case "dark":
		theme = components.DarkTheme()
	case "light":
		theme = components.LightTheme()
	default:
		theme = components.DefaultTheme()
	}

	applyColour(&theme.Palette.Primary, cfg.Theme.Palette.Primary)
	applyColour(&theme.Palette.Surface, cfg.Theme.Palette.Surface)
	applyColour(&theme.Palette.Danger, cfg.Theme.Palette.Danger)
	applyColour(&theme.Palette.Neutral, cfg.Theme.Palette.Neutral)

	return theme
}

func applyColour(slot *components.ColourSet, override *ColourConfig) {
	if override == nil {
		return
	}
	colour := slot.Base
	if override.Light != "" {
		colour.Light = override.Light
	}
	if override.Dark != "" {
		colour.Dark = override.Dark
	}
	slot.Base = colour
}
