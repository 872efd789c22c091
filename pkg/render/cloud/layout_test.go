package cloud

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/mkessel/cumulus/pkg/errors"
	"github.com/mkessel/cumulus/pkg/geom"
	"github.com/mkessel/cumulus/pkg/words"
)

func sizedWords() []words.Sized {
	return []words.Sized{
		{Word: words.Word{Text: "alpha", Weight: 10}, FontSize: 48, Size: geom.Size{W: 120, H: 50}},
		{Word: words.Word{Text: "beta", Weight: 5}, FontSize: 30, Size: geom.Size{W: 80, H: 34}},
		{Word: words.Word{Text: "gamma", Weight: 2}, FontSize: 16, Size: geom.Size{W: 60, H: 20}},
	}
}

func TestBuild(t *testing.T) {
	l, err := Build(sizedWords(), BuildOptions{Width: 800, Height: 600, Title: "demo"})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if l.ID == "" {
		t.Error("Build() should assign a layout ID")
	}
	if l.Title != "demo" {
		t.Errorf("Title = %q, want demo", l.Title)
	}
	if len(l.Words) != 3 {
		t.Fatalf("placed %d words, want 3", len(l.Words))
	}

	// Heaviest word goes first and lands centered on the canvas center
	first := l.Words[0]
	if first.Text != "alpha" {
		t.Errorf("first word = %q, want alpha", first.Text)
	}
	wantMin := geom.Point{X: 400 - 120/2, Y: 300 - 50/2}
	if first.Rect.Min != wantMin {
		t.Errorf("first rect min = %v, want %v", first.Rect.Min, wantMin)
	}

	// No two placed words overlap
	for i := range l.Words {
		for j := i + 1; j < len(l.Words); j++ {
			if l.Words[i].Rect.Intersects(l.Words[j].Rect) {
				t.Errorf("words %q and %q overlap", l.Words[i].Text, l.Words[j].Text)
			}
		}
	}
}

func TestBuildSkipsDegenerateWords(t *testing.T) {
	sized := []words.Sized{
		{Word: words.Word{Text: "real", Weight: 3}, FontSize: 20, Size: geom.Size{W: 50, H: 20}},
		{Word: words.Word{Text: "ghost", Weight: 1}, FontSize: 10, Size: geom.Size{W: 0, H: 20}},
	}

	l, err := Build(sized, BuildOptions{Width: 400, Height: 300})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if len(l.Words) != 1 {
		t.Fatalf("placed %d words, want 1", len(l.Words))
	}
	if l.Words[0].Text != "real" {
		t.Errorf("placed word = %q, want real", l.Words[0].Text)
	}
}

func TestBuildInvalidCanvas(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{name: "zero width", width: 0, height: 100},
		{name: "zero height", width: 100, height: 0},
		{name: "negative", width: -10, height: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(sizedWords(), BuildOptions{Width: tt.width, Height: tt.height})
			if err == nil {
				t.Fatal("Build() expected error, got nil")
			}
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("error code = %v, want %v", err, errors.ErrCodeInvalidInput)
			}
		})
	}
}

func TestBuildUniqueData(t *testing.T) {
	l1, err := Build(sizedWords(), BuildOptions{Width: 400, Height: 300})
	if err != nil {
		t.Fatal(err)
	}
	l2, err := Build(sizedWords(), BuildOptions{Width: 400, Height: 300})
	if err != nil {
		t.Fatal(err)
	}
	if l1.ID == l2.ID {
		t.Error("layout IDs should be unique per build")
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	l, err := Build(sizedWords(), BuildOptions{Width: 640, Height: 480, Title: "roundtrip"})
	if err != nil {
		t.Fatal(err)
	}
	l.Style = "ink"
	l.Palette = []string{"#111", "#222"}

	var buf bytes.Buffer
	if err := Write(l, &buf); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}

	if got.ID != l.ID || got.Title != l.Title || got.Style != l.Style {
		t.Errorf("round trip lost metadata: got %+v", got)
	}
	if len(got.Words) != len(l.Words) {
		t.Fatalf("round trip lost words: got %d, want %d", len(got.Words), len(l.Words))
	}
	for i := range got.Words {
		if got.Words[i] != l.Words[i] {
			t.Errorf("word %d = %+v, want %+v", i, got.Words[i], l.Words[i])
		}
	}
}

func TestReadInvalidJSON(t *testing.T) {
	_, err := Read(bytes.NewBufferString("{not json"))
	if err == nil {
		t.Fatal("Read() expected error for invalid JSON")
	}
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %v, want %v", err, errors.ErrCodeInvalidFormat)
	}
}

func TestExportImport(t *testing.T) {
	l, err := Build(sizedWords(), BuildOptions{Width: 320, Height: 240})
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "layout.json")
	if err := Export(l, path); err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	got, err := Import(path)
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}
	if got.ID != l.ID {
		t.Errorf("imported ID = %q, want %q", got.ID, l.ID)
	}
}

func TestImportMissingFile(t *testing.T) {
	_, err := Import(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("Import() expected error for missing file")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", err, errors.ErrCodeFileNotFound)
	}
}

func TestBounds(t *testing.T) {
	l := &Layout{
		Words: []PlacedWord{
			{Rect: geom.Rect{Min: geom.Point{X: 10, Y: 20}, Size: geom.Size{W: 30, H: 10}}},
			{Rect: geom.Rect{Min: geom.Point{X: 0, Y: 25}, Size: geom.Size{W: 15, H: 40}}},
		},
	}

	got := l.Bounds()
	want := geom.Rect{Min: geom.Point{X: 0, Y: 20}, Size: geom.Size{W: 40, H: 45}}
	if got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}

	empty := &Layout{}
	if !empty.Bounds().IsEmpty() {
		t.Error("Bounds() of empty layout should be empty")
	}
}
