package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"semtheme/internal/config"
	"semtheme/internal/preview"
)

func newDescribeCmd() *cobra.Command {
	var (
		style     string
		raw       bool
		saveStyle bool
		width     int
	)
	cmd := &cobra.Command{
		Use:   "describe <theme>",
		Short: "Summarise a theme as Markdown tables",
		Long: `Describe a compiled theme: its workbench colors, semantic token rules and
token rules as Markdown tables, rendered for the terminal. The rendering
style comes from preview.style in the configuration (dark, light, notty,
plain); --save-style stores the chosen --style for later runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("style") {
				if saveStyle {
					if err := config.Save(config.KeyPreviewStyle, style); err != nil {
						return err
					}
				} else if err := config.Set(config.KeyPreviewStyle, style); err != nil {
					return err
				}
			}

			target, err := resolveTarget(args[0])
			if err != nil {
				return err
			}
			doc, _, err := compiler().Compile(target)
			if err != nil {
				return err
			}

			md := preview.Markdown(doc)
			if !raw {
				md = preview.RenderMarkdown(md, config.GetString(config.KeyPreviewStyle), width)
			}
			fmt.Fprintln(cmd.OutOrStdout(), md)
			return nil
		},
	}
	cmd.Flags().StringVar(&style, "style", "", "rendering style (dark, light, notty, plain)")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the Markdown source")
	cmd.Flags().BoolVar(&saveStyle, "save-style", false, "persist --style to the configuration")
	cmd.Flags().IntVar(&width, "width", defaultWidth, "word wrap width")
	return cmd
}
