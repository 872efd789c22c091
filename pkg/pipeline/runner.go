package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mkessel/cumulus/pkg/cache"
	"github.com/mkessel/cumulus/pkg/errors"
	"github.com/mkessel/cumulus/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options, as long as each layout is built by a
// single goroutine.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// cacheScope prefixes every pipeline cache key. It versions the key schema,
// so entries written by a release with a different key layout miss instead
// of decoding badly, and it keeps cumulus keys apart from other applications
// on a shared Redis or Mongo backend.
const cacheScope = "cumulus:v1:"

// NewRunner creates a runner with the given cache.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  cache.NewScopedCache(c, cacheScope),
		Logger: logger,
	}
}

// Execute runs the complete parse → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Parse
	parseStart := time.Now()
	observability.Pipeline().OnParseStart(ctx, opts.source())
	ws, err := r.Parse(ctx, &opts)
	observability.Pipeline().OnParseComplete(ctx, opts.source(), len(ws), time.Since(parseStart), err)
	if err != nil {
		return nil, err
	}
	result.Words = ws
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.WordCount = len(ws)

	opts.Logger.Info("parsed words",
		"count", len(ws),
		"duration", result.Stats.ParseTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, len(ws))
	l, layoutHit, err := r.ComputeLayout(ctx, ws, opts)
	observability.Pipeline().OnLayoutComplete(ctx, layoutHit, time.Since(layoutStart), err)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "layout")
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	opts.Logger.Info("computed layout",
		"words", len(l.Words),
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, renderHit, err := r.Render(ctx, l, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, renderHit, time.Since(renderStart), err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// applyLogger propagates the runner's logger into the options when the
// caller did not set one.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
