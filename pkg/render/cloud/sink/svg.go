package sink

import (
	"bytes"
	"fmt"

	"github.com/mkessel/cumulus/pkg/render/cloud"
	"github.com/mkessel/cumulus/pkg/render/cloud/styles"
)

const defaultBackground = "#ffffff"

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style      styles.Style
	background string
	palette    []string
	showBoxes  bool
	title      bool
}

// WithStyle overrides the style recorded in the layout.
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithBackground overrides the background color recorded in the layout.
func WithBackground(c string) SVGOption { return func(r *svgRenderer) { r.background = c } }

// WithPalette overrides the palette recorded in the layout.
func WithPalette(p []string) SVGOption { return func(r *svgRenderer) { r.palette = p } }

// WithBoxes draws the placement rectangle outlines behind each word.
// Useful for inspecting how tightly the cloud packed.
func WithBoxes() SVGOption { return func(r *svgRenderer) { r.showBoxes = true } }

// WithTitle renders the layout title above the cloud.
func WithTitle() SVGOption { return func(r *svgRenderer) { r.title = true } }

// RenderSVG renders the layout as an SVG document. Style, background and
// palette default to whatever the layout recorded; options override them.
func RenderSVG(l *cloud.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(l, opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		l.Width, l.Height, l.Width, l.Height)

	r.style.RenderDefs(&buf)

	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n",
		styles.EscapeXML(r.background))

	if r.showBoxes {
		renderBoxes(&buf, l)
	}

	for i, w := range l.Words {
		r.style.RenderWord(&buf, styles.Word{
			Text: w.Text,
			X:    float64(w.Rect.Min.X), Y: float64(w.Rect.Min.Y),
			W: float64(w.Rect.Size.W), H: float64(w.Rect.Size.H),
			CX:         float64(w.Rect.Min.X) + float64(w.Rect.Size.W)/2,
			CY:         float64(w.Rect.Min.Y) + float64(w.Rect.Size.H)/2,
			FontSize:   w.FontSize,
			FontFamily: l.FontFamily,
			Color:      styles.ColorAt(r.palette, i),
		})
	}

	if r.title && l.Title != "" {
		renderTitle(&buf, l)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(l *cloud.Layout, opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		background: defaultBackground,
		palette:    l.Palette,
	}
	if l.Background != "" {
		r.background = l.Background
	}
	// A bad style name in the layout falls back to simple; the CLI
	// validates names before layouts are built.
	r.style, _ = styles.For(l.Style)
	if r.style == nil {
		r.style = styles.Simple{}
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func renderBoxes(buf *bytes.Buffer, l *cloud.Layout) {
	for _, w := range l.Words {
		fmt.Fprintf(buf,
			`  <rect class="box" x="%d" y="%d" width="%d" height="%d" fill="none" stroke="#ccc" stroke-width="0.5"/>`+"\n",
			w.Rect.Min.X, w.Rect.Min.Y, w.Rect.Size.W, w.Rect.Size.H)
	}
}

func renderTitle(buf *bytes.Buffer, l *cloud.Layout) {
	fmt.Fprintf(buf,
		`  <text class="title" x="%d" y="24" text-anchor="middle" font-family="Helvetica, Arial, sans-serif" font-size="18" fill="#333">%s</text>`+"\n",
		l.Width/2, styles.EscapeXML(l.Title))
}
