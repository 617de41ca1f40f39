package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"semtheme/internal/build"
	"semtheme/internal/config"
	"semtheme/internal/palette"
)

func newListCmd() *cobra.Command {
	var available bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List manifest themes and their palettes",
		Long: `List the themes declared in the manifest together with the palette each
one compiles from. With --available, list every palette name instead:
palette files from the palettes directory merged with the built-in set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			dir := config.GetPath(config.KeyPalettesDir)

			if available {
				names, err := palette.Available(dir)
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			m, err := loadManifest()
			if err != nil {
				return err
			}
			targets, err := build.Plan(m, dir)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "THEME\tLABEL\tUI THEME\tPALETTE SOURCE")
			for i, t := range targets {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.Name, t.Label, m.Themes[i].UITheme, t.Palette.Source)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVarP(&available, "available", "a", false, "list every available palette")
	return cmd
}
