package styles

import (
	"bytes"
	"fmt"
)

const simpleFontFamily = "Helvetica, Arial, sans-serif"

// Simple is a clean, minimal style with solid palette colors.
type Simple struct{}

// RenderDefs writes nothing; the simple style needs no SVG defs.
func (Simple) RenderDefs(buf *bytes.Buffer) {}

// RenderWord draws the word as centered text inside its rectangle.
func (Simple) RenderWord(buf *bytes.Buffer, w Word) {
	family := w.FontFamily
	if family == "" {
		family = simpleFontFamily
	}
	fmt.Fprintf(buf,
		`  <text class="word" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-family="%s" font-size="%.1f" fill="%s">%s</text>`+"\n",
		w.CX, w.CY, EscapeXML(family), w.FontSize, EscapeXML(w.Color), EscapeXML(w.Text))
}
