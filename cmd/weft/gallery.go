package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/weftkit/weft/internal/components"
)

const (
	defaultGalleryWidth = 60
	maxGalleryWidth     = 100
)

func newGalleryCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Render every documented textarea state",
		Long:  `Render the component stories: sizes, variants, disabled and required states, the character counter, and auto-resize.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadTheme(flags); err != nil {
				return err
			}
			return runGallery(cmd)
		},
	}

	return cmd
}

type story struct {
	title    string
	textarea *components.Textarea
}

func galleryStories(width int) []story {
	return []story{
		{
			title: "Default",
			textarea: components.NewTextarea(components.TextareaOptions{
				Label:       "Bio",
				Caption:     "Tell us about yourself",
				Placeholder: "Start typing...",
				Width:       width,
			}),
		},
		{
			title: "Small",
			textarea: components.NewTextarea(components.TextareaOptions{
				Label: "Notes",
				Size:  components.TextareaSizeSmall,
				Rows:  2,
				Width: width,
			}),
		},
		{
			title: "Large",
			textarea: components.NewTextarea(components.TextareaOptions{
				Label: "Description",
				Size:  components.TextareaSizeLarge,
				Rows:  5,
				Width: width,
			}),
		},
		{
			title: "Required",
			textarea: components.NewTextarea(components.TextareaOptions{
				Label:    "Feedback",
				Required: true,
				Caption:  "We read every word",
				Width:    width,
			}),
		},
		{
			title: "Error",
			textarea: components.NewTextarea(components.TextareaOptions{
				Label: "Bio",
				Error: "bio must be 280 characters or fewer",
				Width: width,
			}).WithInitialValue("An autobiography in three volumes."),
		},
		{
			title: "Disabled",
			textarea: components.NewTextarea(components.TextareaOptions{
				Label:    "Archived note",
				Disabled: true,
				Width:    width,
			}).WithInitialValue("This entry can no longer be edited."),
		},
		{
			title: "Character counter",
			textarea: components.NewTextarea(components.TextareaOptions{
				Label:     "Post",
				MaxLength: 280,
				ShowCount: true,
				Width:     width,
			}).WithInitialValue("hello"),
		},
		{
			title: "Auto-resize",
			textarea: components.NewTextarea(components.TextareaOptions{
				Label:      "Changelog",
				AutoResize: true,
				MinRows:    3,
				MaxRows:    10,
				Width:      width,
			}).WithInitialValue("Added themes.\nFixed counter.\nRemoved cruft."),
		},
	}
}

func runGallery(cmd *cobra.Command) error {
	width := galleryWidth()
	titleStyle := components.Style(lipgloss.NewStyle(), components.Typography(components.TypographyVariantTitle))

	out := cmd.OutOrStdout()
	for _, s := range galleryStories(width) {
		fmt.Fprintln(out, titleStyle.Render("--- "+s.title+" ---"))
		fmt.Fprintln(out, s.textarea.View())
		fmt.Fprintln(out)
	}
	return nil
}

func galleryWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultGalleryWidth
	}

	// Leave room for the field border.
	width -= 4
	if width > maxGalleryWidth {
		width = maxGalleryWidth
	}
	if width < 20 {
		width = 20
	}
	return width
}
