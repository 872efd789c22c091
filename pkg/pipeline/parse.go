package pipeline

import (
	"context"
	"os"
	"strings"

	"github.com/mkessel/cumulus/pkg/errors"
	"github.com/mkessel/cumulus/pkg/httputil"
	"github.com/mkessel/cumulus/pkg/words"
)

// Parse extracts weighted words from the configured source: inline text, a
// text file or http(s) URL, or a TOML manifest. The result is sorted
// heaviest-first, ready for sizing and placement.
//
// When the source is a manifest, its layout and render settings are folded
// into opts (explicit option values win), which is why opts is a pointer.
func (r *Runner) Parse(ctx context.Context, opts *Options) ([]words.Word, error) {
	if err := opts.ValidateForParse(); err != nil {
		return nil, err
	}

	if opts.Manifest != "" {
		ws, err := r.parseManifest(opts)
		if err != nil {
			return nil, err
		}
		if err := words.Validate(ws); err != nil {
			return nil, err
		}
		return ws, nil
	}

	text := opts.Text
	switch {
	case httputil.IsURL(opts.InputPath):
		data, err := httputil.Fetch(ctx, opts.InputPath)
		if err != nil {
			return nil, err
		}
		text = string(data)
	case opts.InputPath != "":
		data, err := os.ReadFile(opts.InputPath)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", opts.InputPath)
		}
		text = string(data)
	}

	ws, err := words.Count(strings.NewReader(text), words.CountOptions{
		MinLength: opts.MinLength,
		MaxWords:  opts.MaxWords,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "count words")
	}
	if len(ws) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no words found in input")
	}
	if err := words.Validate(ws); err != nil {
		return nil, err
	}

	words.SortByWeight(ws)
	return ws, nil
}

// parseManifest loads a manifest and folds its settings into the options.
func (r *Runner) parseManifest(opts *Options) ([]words.Word, error) {
	m, err := words.LoadManifest(opts.Manifest)
	if err != nil {
		return nil, err
	}
	opts.applyManifest(m)

	ws := m.WordList()
	if opts.MaxWords > 0 && len(ws) > opts.MaxWords {
		ws = ws[:opts.MaxWords]
	}
	return ws, nil
}
