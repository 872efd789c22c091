package styles

import (
	"bytes"
	"fmt"
	"hash/fnv"
)

const (
	inkFontFamily = `"Comic Sans MS", "Comic Sans", cursive`
	inkMaxTilt    = 6.0 // degrees
)

// Ink is a hand-lettered style: each word gets a small deterministic tilt
// derived from its text, plus a soft roughen filter.
type Ink struct{}

// RenderDefs writes the roughen filter applied to every word.
func (Ink) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <filter id="ink-roughen" x="-5%" y="-5%" width="110%" height="110%">
      <feTurbulence type="fractalNoise" baseFrequency="0.02" numOctaves="2" result="noise"/>
      <feDisplacementMap in="SourceGraphic" in2="noise" scale="1.5"/>
    </filter>
  </defs>
`)
}

// RenderWord draws the word tilted around its center.
func (Ink) RenderWord(buf *bytes.Buffer, w Word) {
	family := w.FontFamily
	if family == "" {
		family = inkFontFamily
	}
	fmt.Fprintf(buf,
		`  <text class="word" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-family="%s" font-size="%.1f" fill="%s" filter="url(#ink-roughen)" transform="rotate(%.1f %.2f %.2f)">%s</text>`+"\n",
		w.CX, w.CY, EscapeXML(family), w.FontSize, EscapeXML(w.Color),
		tiltFor(w.Text), w.CX, w.CY, EscapeXML(w.Text))
}

// tiltFor returns a deterministic rotation in [-inkMaxTilt, inkMaxTilt]
// degrees. Same text, same tilt, so re-renders are stable.
func tiltFor(text string) float64 {
	h := fnv.New32a()
	h.Write([]byte(text))
	frac := float64(h.Sum32()%1000) / 999.0
	return inkMaxTilt * (2*frac - 1)
}
