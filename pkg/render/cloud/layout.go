// Package cloud holds the serializable tag cloud layout model.
//
// A [Layout] is the bridge between placement and rendering: it records every
// placed word with its rectangle and font size, plus the visual metadata the
// sinks need (style, palette, background). Layouts round-trip through JSON
// with [Write] and [Read], so a computed layout can be cached or re-rendered
// without re-running placement.
package cloud

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/mkessel/cumulus/pkg/cloud"
	"github.com/mkessel/cumulus/pkg/errors"
	"github.com/mkessel/cumulus/pkg/geom"
	"github.com/mkessel/cumulus/pkg/words"
)

// PlacedWord is a single word with its final position in the cloud.
type PlacedWord struct {
	Text     string    `json:"text"`
	Weight   float64   `json:"weight"`
	FontSize float64   `json:"font_size"`
	Rect     geom.Rect `json:"rect"`
}

// Layout is a fully placed tag cloud, ready for rendering.
type Layout struct {
	ID         string       `json:"id"`
	Title      string       `json:"title,omitempty"`
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	Center     geom.Point   `json:"center"`
	Style      string       `json:"style,omitempty"`
	Background string       `json:"background,omitempty"`
	Palette    []string     `json:"palette,omitempty"`
	FontFamily string       `json:"font_family,omitempty"`
	Words      []PlacedWord `json:"words"`
}

// Bounds returns the tight bounding box of all placed words.
// Returns the zero rectangle for an empty layout.
func (l *Layout) Bounds() geom.Rect {
	rects := make([]geom.Rect, len(l.Words))
	for i, w := range l.Words {
		rects[i] = w.Rect
	}
	return geom.Bounds(rects)
}

// BuildOptions configure layout construction.
type BuildOptions struct {
	Width  int // canvas width in pixels
	Height int // canvas height in pixels
	Title  string

	// Placement tuning, forwarded to the engine. Zero values use the
	// engine defaults.
	AngleStep      float64
	RadiusGrowth   float64
	CompactionStep float64
}

// Build places the sized words on a fresh canvas and returns the resulting
// layout. Words are placed in order, so callers should sort by weight first
// (heaviest words claim the center). Words with degenerate sizes are skipped.
func Build(sized []words.Sized, opts BuildOptions) (*Layout, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"canvas dimensions must be positive, got %dx%d", opts.Width, opts.Height)
	}

	center := geom.Point{X: opts.Width / 2, Y: opts.Height / 2}

	var engineOpts []cloud.Option
	if opts.AngleStep > 0 {
		engineOpts = append(engineOpts, cloud.WithAngleStep(opts.AngleStep))
	}
	if opts.RadiusGrowth > 0 {
		engineOpts = append(engineOpts, cloud.WithRadiusGrowth(opts.RadiusGrowth))
	}
	if opts.CompactionStep > 0 {
		engineOpts = append(engineOpts, cloud.WithCompactionStep(opts.CompactionStep))
	}

	eng := cloud.New(center, engineOpts...)

	l := &Layout{
		ID:     uuid.NewString(),
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Center: center,
		Words:  make([]PlacedWord, 0, len(sized)),
	}

	for _, s := range sized {
		r, err := eng.Place(s.Size)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "place %q", s.Word.Text)
		}
		if r.IsEmpty() {
			continue
		}
		l.Words = append(l.Words, PlacedWord{
			Text:     s.Word.Text,
			Weight:   s.Word.Weight,
			FontSize: s.FontSize,
			Rect:     r,
		})
	}

	return l, nil
}

// Write encodes a layout as indented JSON and writes it to w.
// The output can be re-imported with [Read] for round-trip processing.
func Write(l *Layout, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Read decodes a layout from JSON.
func Read(r io.Reader) (*Layout, error) {
	var l Layout
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode layout")
	}
	return &l, nil
}

// Export writes a layout to a JSON file at path.
// This is a convenience wrapper around [Write] for file-based output.
func Export(l *Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(l, f)
}

// Import reads a layout from a JSON file at path.
func Import(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}
