// Package styles defines visual styles for cloud rendering.
//
// A style controls how each placed word is drawn into the SVG output. Two
// styles ship with cumulus:
//
//   - [Simple]: clean sans-serif text with palette colors
//   - [Ink]: a hand-lettered look with deterministic per-word tilt
//
// Styles receive [Word] structs containing everything needed for rendering:
// the display text, the placement rectangle, the resolved font size and the
// fill color picked from the palette.
package styles

import (
	"bytes"
	"encoding/xml"

	"github.com/mkessel/cumulus/pkg/errors"
)

// Style defines the visual appearance for cloud rendering.
// Implementations control how individual words are drawn.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, patterns, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderWord writes the SVG for a single placed word.
	RenderWord(buf *bytes.Buffer, w Word)
}

// Word contains all data needed to render a single placed word.
type Word struct {
	Text       string  // Display text
	X, Y, W, H float64 // Placement rectangle
	CX, CY     float64 // Center coordinates (for text anchoring)
	FontSize   float64 // Resolved font size in pixels
	FontFamily string  // Font family, empty for the style default
	Color      string  // Fill color from the palette
}

// For resolves a style by name. Empty defaults to simple.
func For(name string) (Style, error) {
	switch name {
	case "", "simple":
		return Simple{}, nil
	case "ink":
		return Ink{}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidStyle,
			"unknown style %q (available: simple, ink)", name)
	}
}

// EscapeXML escapes text for safe inclusion in SVG attributes and content.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
