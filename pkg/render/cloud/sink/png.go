package sink

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/mkessel/cumulus/pkg/render/cloud"
	"github.com/mkessel/cumulus/pkg/render/cloud/styles"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale      float64
	background string
	palette    []string
}

// WithScale sets the PNG scale factor (default 1.0).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGBackground overrides the background color recorded in the layout.
func WithPNGBackground(c string) PNGOption {
	return func(r *pngRenderer) { r.background = c }
}

// WithPNGPalette overrides the palette recorded in the layout.
func WithPNGPalette(p []string) PNGOption {
	return func(r *pngRenderer) { r.palette = p }
}

// RenderPNG rasterizes the layout directly: each word is painted as a filled
// rectangle in its palette color. This is a diagnostic view of the placement
// result; for text output use [RenderSVG] and convert.
func RenderPNG(l *cloud.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{
		scale:      1.0,
		background: defaultBackground,
		palette:    l.Palette,
	}
	if l.Background != "" {
		r.background = l.Background
	}
	for _, opt := range opts {
		opt(&r)
	}

	bg, err := parseHexColor(r.background)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, l.Width, l.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)

	for i, w := range l.Words {
		c, err := parseHexColor(styles.ColorAt(r.palette, i))
		if err != nil {
			return nil, err
		}
		rect := image.Rect(w.Rect.Min.X, w.Rect.Min.Y, w.Rect.MaxX(), w.Rect.MaxY())
		draw.Draw(img, rect, &image.Uniform{c}, image.Point{}, draw.Src)
	}

	out := image.Image(img)
	if r.scale != 1.0 {
		out = imaging.Resize(img,
			int(float64(l.Width)*r.scale), int(float64(l.Height)*r.scale),
			imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// parseHexColor parses #rgb and #rrggbb color strings.
func parseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		err = fmt.Errorf("length %d", len(s))
	}
	if err != nil {
		return c, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}
