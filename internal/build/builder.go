// Package build compiles palettes into theme files.
//
// Compilation runs in parallel with no shared state; persisting runs
// afterwards, in target order, and only when every theme compiled.
package build

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"semtheme/internal/cache"
	"semtheme/internal/domain"
	"semtheme/internal/theme"
)

// Result describes the outcome for one target.
type Result struct {
	Name     string
	Label    string
	Path     string
	Size     int64
	Digest   string
	Skipped  bool
	Duration time.Duration
}

// HumanSize formats Size for display.
func (r Result) HumanSize() string {
	return humanize.Bytes(uint64(r.Size))
}

// Builder drives compilation and persistence.
type Builder struct {
	sink   Sink
	cache  *cache.Cache
	jobs   int
	strict bool
	force  bool
	indent int
	logger zerolog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithCache enables incremental builds backed by c.
func WithCache(c *cache.Cache) Option {
	return func(b *Builder) { b.cache = c }
}

// WithJobs bounds parallel compilation; n <= 0 uses GOMAXPROCS.
func WithJobs(n int) Option {
	return func(b *Builder) { b.jobs = n }
}

// WithStrict rejects documents with illegal font styles or colors.
func WithStrict(strict bool) Option {
	return func(b *Builder) { b.strict = strict }
}

// WithForce writes every output even when the cache says it is current.
func WithForce(force bool) Option {
	return func(b *Builder) { b.force = force }
}

// WithIndent sets the JSON indent width.
func WithIndent(n int) Option {
	return func(b *Builder) { b.indent = n }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Builder) { b.logger = l }
}

// NewBuilder returns a builder writing to sink.
func NewBuilder(sink Sink, opts ...Option) *Builder {
	b := &Builder{
		sink:   sink,
		indent: 2,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Compile assembles and encodes one target.
func (b *Builder) Compile(t Target) (*domain.Document, []byte, error) {
	doc, err := theme.Assemble(t.Label, t.Palette)
	if err != nil {
		return nil, nil, compileError(t.Name, err)
	}
	if b.strict {
		if err := doc.Validate(); err != nil {
			return nil, nil, compileError(t.Name, err)
		}
	}
	data, err := Encode(doc, b.indent)
	if err != nil {
		return nil, nil, err
	}
	return doc, data, nil
}

type compiled struct {
	data     []byte
	duration time.Duration
}

// Build compiles every target and then writes the outputs in order. No
// file is written when any target fails to compile.
func (b *Builder) Build(ctx context.Context, targets []Target) ([]Result, error) {
	out := make([]compiled, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	jobs := b.jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(jobs)

	for i, t := range targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			_, data, err := b.Compile(t)
			if err != nil {
				return err
			}
			out[i] = compiled{data: data, duration: time.Since(start)}
			b.logger.Debug().Str("theme", t.Name).Dur("took", out[i].duration).Msg("compiled")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(targets))
	for i, t := range targets {
		r, err := b.persist(ctx, t, out[i])
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}

// Prune forgets cache records of outputs missing from results, such as themes
// dropped from the manifest, and returns their paths. Output files are left
// alone.
func (b *Builder) Prune(ctx context.Context, results []Result) ([]string, error) {
	if b.cache == nil {
		return nil, nil
	}
	keep := make(map[string]bool, len(results))
	for _, r := range results {
		keep[r.Path] = true
	}

	entries, err := b.cache.Entries(ctx)
	if err != nil {
		return nil, err
	}
	var forgotten []string
	for _, e := range entries {
		if keep[e.Path] {
			continue
		}
		if err := b.cache.Forget(ctx, e.Path); err != nil {
			return forgotten, err
		}
		b.logger.Debug().Str("path", e.Path).Msg("forgot stale cache record")
		forgotten = append(forgotten, e.Path)
	}
	return forgotten, nil
}

func (b *Builder) persist(ctx context.Context, t Target, c compiled) (Result, error) {
	r := Result{
		Name:     t.Name,
		Label:    t.Label,
		Path:     b.sink.Path(t.Name),
		Size:     int64(len(c.data)),
		Digest:   cache.Digest(c.data),
		Duration: c.duration,
	}

	if b.cache != nil && !b.force {
		fresh, err := b.cache.Fresh(ctx, r.Path, c.data)
		if err != nil {
			b.logger.Warn().Err(err).Str("theme", t.Name).Msg("cache lookup failed")
		}
		if fresh {
			r.Skipped = true
			b.logger.Debug().Str("path", r.Path).Msg("unchanged, skipped")
			return r, nil
		}
	}

	path, err := b.sink.Write(t.Name, c.data)
	if err != nil {
		return r, err
	}
	r.Path = path
	b.logger.Info().Str("path", path).Str("size", r.HumanSize()).Msg("theme file generated")

	if b.cache != nil {
		if _, err := b.cache.Record(ctx, path, c.data); err != nil {
			b.logger.Warn().Err(err).Str("path", path).Msg("cache record failed")
		}
	}
	return r, nil
}

// Summary renders a one-line report of a build.
func Summary(results []Result) string {
	var written, skipped int
	var total int64
	for _, r := range results {
		if r.Skipped {
			skipped++
			continue
		}
		written++
		total += r.Size
	}
	parts := []string{fmt.Sprintf("%d written (%s)", written, humanize.Bytes(uint64(total)))}
	if skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d unchanged", skipped))
	}
	return strings.Join(parts, ", ")
}
