package words

import (
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/mkessel/cumulus/pkg/errors"
	"github.com/mkessel/cumulus/pkg/geom"
)

// A Measurer converts a word at a font size into an integer rectangle size.
type Measurer interface {
	Measure(text string, fontSize float64) geom.Size
}

// ScaleOptions controls how weights map to font sizes.
type ScaleOptions struct {
	// MinFontSize and MaxFontSize bound the rendered font sizes in pixels.
	// Zero values default to 12 and 64.
	MinFontSize float64
	MaxFontSize float64

	// Padding is added around each measured word in pixels, keeping visual
	// breathing room between placed rectangles. Zero means 2.
	Padding int
}

// Sized pairs a word with its font size and measured rectangle size.
type Sized struct {
	Word     Word      `json:"word"`
	FontSize float64   `json:"font_size"`
	Size     geom.Size `json:"size"`
}

// Scale maps word weights linearly onto the font size range and measures
// each word with m. Words must already be sorted and validated; the output
// preserves input order so the heaviest words are laid out first.
func Scale(ws []Word, m Measurer, opts ScaleOptions) []Sized {
	if opts.MinFontSize <= 0 {
		opts.MinFontSize = 12
	}
	if opts.MaxFontSize <= 0 {
		opts.MaxFontSize = 64
	}
	if opts.Padding == 0 {
		opts.Padding = 2
	}

	minW, maxW := math.Inf(1), math.Inf(-1)
	for _, w := range ws {
		minW = math.Min(minW, w.Weight)
		maxW = math.Max(maxW, w.Weight)
	}

	out := make([]Sized, len(ws))
	for i, w := range ws {
		t := 1.0
		if maxW > minW {
			t = (w.Weight - minW) / (maxW - minW)
		}
		fontSize := opts.MinFontSize + t*(opts.MaxFontSize-opts.MinFontSize)
		size := m.Measure(w.Text, fontSize)
		size.W += 2 * opts.Padding
		size.H += 2 * opts.Padding
		out[i] = Sized{Word: w, FontSize: fontSize, Size: size}
	}
	return out
}

// HeuristicMeasurer approximates text extents without font metrics: a fixed
// advance per rune plus line height proportional to the font size. Good
// enough for layout shape; exact rendering uses the same boxes, so clouds
// stay overlap-free regardless of how the text really rasterizes.
type HeuristicMeasurer struct{}

// Advance and height ratios relative to the font size. The advance matches
// the average glyph width of common sans-serif faces.
const (
	heuristicAdvance = 0.58
	heuristicHeight  = 1.2
)

// Measure returns the approximate pixel extent of text at fontSize.
func (HeuristicMeasurer) Measure(text string, fontSize float64) geom.Size {
	runes := len([]rune(text))
	w := int(math.Ceil(float64(runes) * heuristicAdvance * fontSize))
	h := int(math.Ceil(heuristicHeight * fontSize))
	if w < 1 {
		w = 1
	}
	return geom.Size{W: w, H: h}
}

// FontMeasurer measures text with real font metrics from a TTF/OTF file.
type FontMeasurer struct {
	font *opentype.Font

	// faces caches one face per font size; clouds use a handful of sizes.
	faces map[float64]font.Face
}

// LoadFont parses the font file at path into a FontMeasurer.
func LoadFont(path string) (*FontMeasurer, error) {
	if err := errors.ValidateFontPath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "failed to read font %s", path)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFont, err, "failed to parse font %s", path)
	}
	return &FontMeasurer{font: f, faces: make(map[float64]font.Face)}, nil
}

// Measure returns the pixel extent of text at fontSize using the font's
// real advance widths and line metrics. Falls back to the heuristic when a
// face cannot be constructed for the requested size.
func (m *FontMeasurer) Measure(text string, fontSize float64) geom.Size {
	face, ok := m.faces[fontSize]
	if !ok {
		var err error
		face, err = opentype.NewFace(m.font, &opentype.FaceOptions{
			Size:    fontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return HeuristicMeasurer{}.Measure(text, fontSize)
		}
		m.faces[fontSize] = face
	}

	advance := font.MeasureString(face, text)
	metrics := face.Metrics()
	height := metrics.Ascent + metrics.Descent
	return geom.Size{
		W: fixedCeil(advance),
		H: fixedCeil(height),
	}
}

func fixedCeil(v fixed.Int26_6) int {
	return int((v + 63) >> 6)
}
