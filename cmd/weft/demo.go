package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/weftkit/weft/internal/tui"
)

func newDemoCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Launch the interactive textarea demo",
		Long:  `Launch an interactive program embedding the textarea: live counter, auto-resize, focus chrome, and silent rejection at the character limit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(flags)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}

			cfg, err := loadTheme(flags)
			if err != nil {
				log.Error(err, "theme override rejected")
				return err
			}

			opts := tui.Options{Log: log}
			if cfg != nil {
				opts.Width = cfg.Field.Width
				opts.MinRows = cfg.Field.MinRows
				opts.MaxRows = cfg.Field.MaxRows
			}

			log.Info("starting demo")
			program := tea.NewProgram(tui.NewModel(opts), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("run demo: %w", err)
			}
			return nil
		},
	}

	return cmd
}
