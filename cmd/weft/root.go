package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose   bool
	themePath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "weft",
		Short:         "Weft showcases theme-aware form components for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.themePath, "theme", "", "Path to a YAML theme override file")

	cmd.AddCommand(newGalleryCmd(flags))
	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
