package words

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mkessel/cumulus/pkg/errors"
)

// Manifest is a TOML cloud description: an explicit word list plus optional
// layout and render settings.
//
// Example:
//
//	title = "gopher cloud"
//
//	[layout]
//	width = 800
//	height = 600
//
//	[render]
//	style = "simple"
//	min-font-size = 14.0
//	max-font-size = 72.0
//
//	[[words]]
//	text = "gopher"
//	weight = 12.0
type Manifest struct {
	Title  string         `toml:"title"`
	Layout LayoutConfig   `toml:"layout"`
	Render RenderConfig   `toml:"render"`
	Words  []ManifestWord `toml:"words"`
}

// LayoutConfig holds layout engine settings from a manifest. Zero values
// mean "use the pipeline default".
type LayoutConfig struct {
	Width          int     `toml:"width"`
	Height         int     `toml:"height"`
	AngleStep      float64 `toml:"angle-step"`
	RadiusGrowth   float64 `toml:"radius-growth"`
	CompactionStep float64 `toml:"compaction-step"`
}

// RenderConfig holds render settings from a manifest.
type RenderConfig struct {
	Style       string   `toml:"style"`
	Background  string   `toml:"background"`
	Palette     []string `toml:"palette"`
	Font        string   `toml:"font"`
	MinFontSize float64  `toml:"min-font-size"`
	MaxFontSize float64  `toml:"max-font-size"`
}

// ManifestWord is one word entry in a manifest.
type ManifestWord struct {
	Text   string  `toml:"text"`
	Weight float64 `toml:"weight"`
}

// LoadManifest reads and validates a TOML manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "failed to read manifest %s", path)
	}
	return ParseManifest(data)
}

// ParseManifest decodes and validates TOML manifest data.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "failed to parse manifest")
	}

	if len(m.Words) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "manifest contains no words")
	}
	for i, w := range m.Words {
		if err := errors.ValidateWord(w.Text); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "word %d", i)
		}
		if w.Weight <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidManifest,
				"word %q has non-positive weight %g", w.Text, w.Weight)
		}
	}
	if m.Render.MinFontSize < 0 || m.Render.MaxFontSize < 0 {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "font sizes cannot be negative")
	}
	if m.Render.MinFontSize > 0 && m.Render.MaxFontSize > 0 &&
		m.Render.MinFontSize > m.Render.MaxFontSize {
		return nil, errors.New(errors.ErrCodeInvalidManifest,
			"min-font-size %g exceeds max-font-size %g", m.Render.MinFontSize, m.Render.MaxFontSize)
	}

	return &m, nil
}

// WordList returns the manifest words sorted by weight, ready for sizing.
func (m *Manifest) WordList() []Word {
	out := make([]Word, len(m.Words))
	for i, w := range m.Words {
		out[i] = Word{Text: w.Text, Weight: w.Weight}
	}
	SortByWeight(out)
	return out
}
