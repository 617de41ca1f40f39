package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"semtheme/internal/build"
	"semtheme/internal/cache"
	"semtheme/internal/config"
	"semtheme/internal/debug"
	appErrors "semtheme/internal/errors"
	"semtheme/internal/palette"
)

type buildOptions struct {
	force   bool
	strict  bool
	jobs    int
	noCache bool
	watch   bool
}

func newBuildCmd() *cobra.Command {
	opts := &buildOptions{}
	cmd := &cobra.Command{
		Use:   "build [theme...]",
		Short: "Generate theme files",
		Long: `Generate one JSON file per manifest theme into the output directory.
Every theme is compiled before anything is written; a single failure leaves
the output directory untouched. Outputs whose content did not change are
skipped unless --force is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]any{}
			if cmd.Flags().Changed("strict") {
				overrides[config.KeyBuildStrict] = opts.strict
			}
			if cmd.Flags().Changed("jobs") {
				overrides[config.KeyBuildJobs] = opts.jobs
			}
			if err := config.ApplyOverrides(overrides); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := runBuild(ctx, cmd.OutOrStdout(), args, opts); err != nil {
				return err
			}
			if !opts.watch {
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), "watching for changes, press Ctrl+C to stop")
			return build.Watch(ctx, build.WatchConfig{
				Dirs:   []string{config.GetPath(config.KeyPalettesDir)},
				Files:  []string{config.GetPath(config.KeyManifest)},
				Logger: debug.Component("watch"),
			}, func(ctx context.Context) error {
				return runBuild(ctx, cmd.OutOrStdout(), args, opts)
			})
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "rewrite outputs even when unchanged")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "reject illegal font styles and malformed colors")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 0, "parallel compile jobs (0 = number of CPUs)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "do not read or update the build cache")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "rebuild when palettes or the manifest change")
	return cmd
}

func runBuild(ctx context.Context, out io.Writer, names []string, opts *buildOptions) error {
	logger := debug.Component("build")

	m, err := loadManifest()
	if err != nil {
		return err
	}
	if m.Source == "" {
		logger.Info().Msg("no manifest found, building built-in palettes")
	}

	targets, err := build.Plan(m, config.GetPath(config.KeyPalettesDir))
	if err != nil {
		return err
	}
	if err := checkNames(targets, names); err != nil {
		return err
	}
	targets = build.Filter(targets, names)

	builderOpts := []build.Option{
		build.WithJobs(config.GetInt(config.KeyBuildJobs)),
		build.WithStrict(config.GetBool(config.KeyBuildStrict)),
		build.WithIndent(config.GetInt(config.KeyOutputIndent)),
		build.WithForce(opts.force),
		build.WithLogger(logger),
	}
	if config.GetBool(config.KeyCacheEnabled) && !opts.noCache {
		c, err := cache.Open(ctx, config.GetPath(config.KeyCachePath))
		if err != nil {
			logger.Warn().Err(err).Msg("build cache unavailable, writing every output")
		} else {
			defer func() {
				_ = c.Close()
			}()
			builderOpts = append(builderOpts, build.WithCache(c))
		}
	}

	sink := build.FileSink{Dir: config.GetPath(config.KeyOutputDir)}
	builder := build.NewBuilder(sink, builderOpts...)
	results, err := builder.Build(ctx, targets)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		stale, err := builder.Prune(ctx, results)
		if err != nil {
			logger.Warn().Err(err).Msg("pruning the build cache failed")
		} else if len(stale) > 0 {
			logger.Info().Int("records", len(stale)).Msg("forgot outputs no longer in the manifest")
		}
	}

	for _, r := range results {
		status := "wrote"
		if r.Skipped {
			status = "unchanged"
		}
		fmt.Fprintf(out, "%-9s %s (%s)\n", status, r.Path, r.HumanSize())
	}
	fmt.Fprintln(out, build.Summary(results))
	return nil
}

func checkNames(targets []build.Target, names []string) error {
	known := make([]string, len(targets))
	for i, t := range targets {
		known[i] = t.Name
	}
	for _, name := range names {
		found := false
		for _, k := range known {
			if k == name {
				found = true
				break
			}
		}
		if !found {
			msg := fmt.Sprintf("theme %q is not in the manifest", name)
			if s := palette.Suggest(name, known); len(s) > 0 {
				msg += fmt.Sprintf(" (did you mean %s?)", s[0])
			}
			return appErrors.NewSubject(appErrors.CodeNotFound, name, msg, nil)
		}
	}
	return nil
}
