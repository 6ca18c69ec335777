package main

import (
	"github.com/weftkit/weft/internal/components"
	"github.com/weftkit/weft/internal/config"
	"github.com/weftkit/weft/internal/logger"
)

// loadTheme applies the --theme override, if any, and returns the parsed
// config so commands can pick up field geometry defaults.
func loadTheme(flags *rootFlags) (*config.Config, error) {
	if flags.themePath == "" {
		return nil, nil
	}

	cfg, err := config.ParseConfig(flags.themePath)
	if err != nil {
		return nil, err
	}

	components.SetTheme(config.BuildTheme(cfg))
	return cfg, nil
}

func newLogger(flags *rootFlags) (*logger.Logger, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, Pretty: true})
}
