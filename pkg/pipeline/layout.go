package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/mkessel/cumulus/pkg/cache"
	"github.com/mkessel/cumulus/pkg/observability"
	"github.com/mkessel/cumulus/pkg/render/cloud"
	"github.com/mkessel/cumulus/pkg/words"
)

// ComputeLayout sizes the words and places them on the canvas, consulting
// the cache first. Returns the layout and whether it came from cache.
func (r *Runner) ComputeLayout(ctx context.Context, ws []words.Word, opts Options) (*cloud.Layout, bool, error) {
	opts.SetLayoutDefaults()

	key := layoutKey(ws, opts)

	if !opts.Refresh {
		if data, ok, err := r.Cache.Get(ctx, key); err == nil && ok {
			l, err := cloud.Read(bytes.NewReader(data))
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return l, true, nil
			}
			// Corrupt entry: drop it and recompute
			_ = r.Cache.Delete(ctx, key)
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	sized, err := r.sizeWords(ws, opts)
	if err != nil {
		return nil, false, err
	}

	l, err := cloud.Build(sized, cloud.BuildOptions{
		Width:          opts.Width,
		Height:         opts.Height,
		Title:          opts.Title,
		AngleStep:      opts.AngleStep,
		RadiusGrowth:   opts.RadiusGrowth,
		CompactionStep: opts.CompactionStep,
	})
	if err != nil {
		return nil, false, err
	}

	l.Style = opts.Style
	l.Background = opts.Background
	l.Palette = opts.Palette

	var buf bytes.Buffer
	if err := cloud.Write(l, &buf); err == nil {
		if err := r.Cache.Set(ctx, key, buf.Bytes(), DefaultTTL); err != nil {
			opts.Logger.Warn("failed to cache layout", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "layout", buf.Len())
		}
	}

	return l, false, nil
}

// sizeWords maps weights to font sizes and measures each word.
func (r *Runner) sizeWords(ws []words.Word, opts Options) ([]words.Sized, error) {
	var m words.Measurer = words.HeuristicMeasurer{}
	if opts.FontPath != "" {
		fm, err := words.LoadFont(opts.FontPath)
		if err != nil {
			return nil, err
		}
		m = fm
	}

	return words.Scale(ws, m, words.ScaleOptions{
		MinFontSize: opts.MinFontSize,
		MaxFontSize: opts.MaxFontSize,
		Padding:     opts.Padding,
	}), nil
}

// layoutKey derives a cache key from the word list and every option that
// affects placement or sizing.
func layoutKey(ws []words.Word, opts Options) string {
	wordData, _ := json.Marshal(ws)
	return cache.ArtifactKey("layout",
		cache.Hash(wordData),
		opts.Width, opts.Height, opts.Title,
		fmt.Sprintf("%g/%g/%g", opts.AngleStep, opts.RadiusGrowth, opts.CompactionStep),
		fmt.Sprintf("%g/%g/%d", opts.MinFontSize, opts.MaxFontSize, opts.Padding),
		opts.FontPath, opts.Style, opts.Background,
		fmt.Sprintf("%v", opts.Palette),
	)
}
