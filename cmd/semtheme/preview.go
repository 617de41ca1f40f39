package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"semtheme/internal/preview"
)

const defaultWidth = 100

// interactive reports whether the full-screen viewer can take over out.
var interactive = func(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func newPreviewCmd() *cobra.Command {
	var (
		plain bool
		color string
		width int
	)
	cmd := &cobra.Command{
		Use:   "preview <theme>",
		Short: "Show theme colors in the terminal",
		Long: `Render the palette and one swatch per token rule using the theme's own
colors. Rules whose foreground contrasts poorly with the editor background
are marked with "!". On a terminal the preview opens in a scrollable viewer;
use --plain to print it instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if color != "" {
				profile, ok := preview.ColorProfile(color)
				if !ok {
					return fmt.Errorf("unknown color profile %q", color)
				}
				lipgloss.SetColorProfile(profile)
			}

			target, err := resolveTarget(args[0])
			if err != nil {
				return err
			}
			doc, _, err := compiler().Compile(target)
			if err != nil {
				return err
			}

			content := preview.Palette(doc) + "\n\n" + preview.Swatches(doc, width)
			out := cmd.OutOrStdout()
			if plain || !interactive(out) {
				fmt.Fprintln(out, content)
				return nil
			}
			return preview.Run(target.Label, content)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print the preview instead of opening the viewer")
	cmd.Flags().StringVar(&color, "color", "", "color profile (truecolor, 256, 16, none)")
	cmd.Flags().IntVar(&width, "width", defaultWidth, "maximum line width")
	return cmd
}
