package pipeline

import (
	"context"

	"github.com/mkessel/cumulus/pkg/cache"
	"github.com/mkessel/cumulus/pkg/errors"
	"github.com/mkessel/cumulus/pkg/observability"
	"github.com/mkessel/cumulus/pkg/render/cloud"
	"github.com/mkessel/cumulus/pkg/render/cloud/sink"
	"github.com/mkessel/cumulus/pkg/render/cloud/styles"
)

// Render generates output artifacts in the requested formats, consulting the
// artifact cache per format. Returns the artifacts and whether every one of
// them came from cache.
func (r *Runner) Render(ctx context.Context, l *cloud.Layout, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	allHit := true

	for _, format := range opts.Formats {
		key := artifactKey(l, format, opts)

		if !opts.Refresh {
			if data, ok, err := r.Cache.Get(ctx, key); err == nil && ok {
				observability.Cache().OnCacheHit(ctx, format)
				artifacts[format] = data
				continue
			}
			observability.Cache().OnCacheMiss(ctx, format)
		}
		allHit = false

		data, err := r.renderFormat(ctx, l, format, opts)
		if err != nil {
			return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		artifacts[format] = data

		if err := r.Cache.Set(ctx, key, data, DefaultTTL); err != nil {
			opts.Logger.Warn("failed to cache artifact", "format", format, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, format, len(data))
		}
	}

	return artifacts, allHit, nil
}

func (r *Runner) renderFormat(ctx context.Context, l *cloud.Layout, format string, opts Options) ([]byte, error) {
	svgOpts := r.svgOptions(opts)

	switch format {
	case FormatSVG:
		return sink.RenderSVG(l, svgOpts...), nil
	case FormatPNG:
		pngOpts := []sink.PNGOption{sink.WithScale(opts.Scale)}
		if opts.Background != "" {
			pngOpts = append(pngOpts, sink.WithPNGBackground(opts.Background))
		}
		if len(opts.Palette) > 0 {
			pngOpts = append(pngOpts, sink.WithPNGPalette(opts.Palette))
		}
		return sink.RenderPNG(l, pngOpts...)
	case FormatPDF:
		return sink.RenderPDF(l, sink.WithPDFSVGOptions(svgOpts...))
	case FormatJSON:
		return sink.RenderJSON(l)
	case FormatDOT:
		return sink.RenderDOT(l), nil
	case FormatGraph:
		return sink.RenderContactGraph(ctx, l)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
	}
}

// svgOptions translates pipeline options into SVG sink options.
func (r *Runner) svgOptions(opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption
	if s, err := styles.For(opts.Style); err == nil {
		svgOpts = append(svgOpts, sink.WithStyle(s))
	}
	if opts.Background != "" {
		svgOpts = append(svgOpts, sink.WithBackground(opts.Background))
	}
	if len(opts.Palette) > 0 {
		svgOpts = append(svgOpts, sink.WithPalette(opts.Palette))
	}
	if opts.Boxes {
		svgOpts = append(svgOpts, sink.WithBoxes())
	}
	if opts.Title != "" {
		svgOpts = append(svgOpts, sink.WithTitle())
	}
	return svgOpts
}

// artifactKey derives a cache key from the layout identity and every render
// option that affects the output bytes.
func artifactKey(l *cloud.Layout, format string, opts Options) string {
	return cache.ArtifactKey(format,
		l.ID, opts.Style, opts.Background, opts.Palette, opts.Boxes, opts.Scale, opts.Title)
}
