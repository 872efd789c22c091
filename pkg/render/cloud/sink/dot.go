package sink

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/mkessel/cumulus/pkg/geom"
	"github.com/mkessel/cumulus/pkg/render/cloud"
)

// ToDOT converts the layout's contact graph to Graphviz DOT format. Two words
// are connected when their rectangles touch (share an edge or corner). The
// contact graph is a compact way to inspect packing density: a tight cloud is
// highly connected, a sparse one falls apart into islands.
func ToDOT(l *cloud.Layout) string {
	var buf bytes.Buffer
	buf.WriteString("graph cloud {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	for _, w := range l.Words {
		c := w.Rect.Center()
		fmt.Fprintf(&buf, "  %q [pos=\"%d,%d\", fontsize=%.1f];\n",
			w.Text, c.X, -c.Y, w.FontSize/2)
	}

	buf.WriteString("\n")
	for i := range l.Words {
		for j := i + 1; j < len(l.Words); j++ {
			if touching(l.Words[i].Rect, l.Words[j].Rect) {
				fmt.Fprintf(&buf, "  %q -- %q;\n", l.Words[i].Text, l.Words[j].Text)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// touching reports whether two non-overlapping rectangles share an edge or
// corner. Growing one by a pixel turns contact into overlap.
func touching(a, b geom.Rect) bool {
	grown := geom.Rect{
		Min:  geom.Point{X: a.Min.X - 1, Y: a.Min.Y - 1},
		Size: geom.Size{W: a.Size.W + 2, H: a.Size.H + 2},
	}
	return grown.Intersects(b)
}

// RenderDOT returns the layout's contact graph as Graphviz DOT source.
// The bytes are plain text, suitable for piping into dot or neato.
func RenderDOT(l *cloud.Layout) []byte {
	return []byte(ToDOT(l))
}

// RenderContactGraph renders the layout's contact graph to SVG using
// Graphviz.
func RenderContactGraph(ctx context.Context, l *cloud.Layout) ([]byte, error) {
	dot := ToDOT(l)

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
