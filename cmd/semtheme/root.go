package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"semtheme/internal/config"
	"semtheme/internal/debug"
)

type rootOptions struct {
	debug    bool
	logLevel string
	manifest string
	palettes string
	out      string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "semtheme",
		Short: "Compile color palettes into editor themes",
		Long: `semtheme compiles declarative color palettes into editor color-theme
JSON documents. Themes are listed in the extension manifest (package.json);
each entry's palette is read from the palettes directory or taken from the
built-in set.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			debug.Close()
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVar(&opts.debug, "debug", false, "write a debug log to ~/.semtheme/debug.log")
	flags.StringVar(&opts.logLevel, "log-level", "", "console log level (debug, info, warn, error)")
	flags.StringVar(&opts.manifest, "manifest", "", "path to the extension manifest")
	flags.StringVar(&opts.palettes, "palettes", "", "directory holding palette files")
	flags.StringVar(&opts.out, "out", "", "output directory for theme files")

	cmd.AddCommand(
		newBuildCmd(),
		newListCmd(),
		newShowCmd(),
		newPreviewCmd(),
		newDescribeCmd(),
		newVersionCmd(),
	)
	return cmd
}

// setup loads configuration, applies changed flags on top and starts
// logging.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	if err := config.Initialize(); err != nil {
		return err
	}

	overrides := map[string]any{}
	flags := cmd.Flags()
	for flag, key := range map[string]string{
		"log-level": config.KeyLogLevel,
		"manifest":  config.KeyManifest,
		"palettes":  config.KeyPalettesDir,
		"out":       config.KeyOutputDir,
	} {
		if flags.Changed(flag) {
			value, _ := flags.GetString(flag)
			overrides[key] = value
		}
	}
	if err := config.ApplyOverrides(overrides); err != nil {
		return err
	}

	if err := debug.Init(debug.Options{
		Debug:   o.debug,
		Level:   config.GetString(config.KeyLogLevel),
		Console: cmd.ErrOrStderr(),
	}); err != nil {
		return err
	}
	if debug.Enabled() {
		if path, err := debug.GetLogPath(); err == nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "debug log: %s\n", path)
		}
	}
	return nil
}
