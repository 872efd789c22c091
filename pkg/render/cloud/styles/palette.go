package styles

// DefaultPalette is used when a layout carries no palette of its own.
// Colors cycle across words in placement order.
var DefaultPalette = []string{
	"#1f77b4", // blue
	"#d62728", // red
	"#2ca02c", // green
	"#ff7f0e", // orange
	"#9467bd", // purple
	"#8c564b", // brown
	"#17becf", // cyan
}

// ColorAt returns the palette color for word index i, cycling through the
// palette. Falls back to [DefaultPalette] when palette is empty.
func ColorAt(palette []string, i int) string {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return palette[i%len(palette)]
}
