package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"semtheme/internal/preview"
)

func newShowCmd() *cobra.Command {
	var copyOut bool
	cmd := &cobra.Command{
		Use:   "show <theme>",
		Short: "Print a compiled theme document",
		Long: `Compile one theme and print its JSON document without touching the
output directory. The theme is looked up by manifest name or label first,
then by palette name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := resolveTarget(args[0])
			if err != nil {
				return err
			}
			_, data, err := compiler().Compile(target)
			if err != nil {
				return err
			}

			if copyOut {
				if err := preview.Copy(string(data)); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "copied %s to the clipboard\n", target.Name)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&copyOut, "copy", "c", false, "copy the document to the clipboard instead of printing it")
	return cmd
}
