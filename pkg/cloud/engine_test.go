package cloud

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/mkessel/cumulus/pkg/errors"
	"github.com/mkessel/cumulus/pkg/geom"
)

// assertNoOverlaps fails the test if any pair of rectangles intersects.
func assertNoOverlaps(t *testing.T, rects []geom.Rect) {
	t.Helper()
	for i := 0; i < len(rects); i++ {
		for j := i + 1; j < len(rects); j++ {
			if rects[i].Intersects(rects[j]) {
				t.Fatalf("rectangles %d and %d overlap: %+v, %+v", i, j, rects[i], rects[j])
			}
		}
	}
}

// variedSizes returns a deterministic mix of word-like rectangle sizes.
func variedSizes(n int, seed int64) []geom.Size {
	rng := rand.New(rand.NewSource(seed))
	sizes := make([]geom.Size, n)
	for i := range sizes {
		sizes[i] = geom.Size{
			W: 30 + rng.Intn(60),
			H: 12 + rng.Intn(24),
		}
	}
	return sizes
}

func TestFirstPlacementCentered(t *testing.T) {
	tests := []struct {
		name   string
		center geom.Point
		size   geom.Size
	}{
		{name: "origin even", center: geom.Point{}, size: geom.Size{W: 10, H: 10}},
		{name: "origin odd", center: geom.Point{}, size: geom.Size{W: 7, H: 13}},
		{name: "positive center", center: geom.Point{X: 400, Y: 300}, size: geom.Size{W: 50, H: 20}},
		{name: "negative center", center: geom.Point{X: -170, Y: -33}, size: geom.Size{W: 11, H: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := New(tt.center)
			r, err := engine.Place(tt.size)
			if err != nil {
				t.Fatalf("Place error: %v", err)
			}
			if got := r.Center(); got != tt.center {
				t.Errorf("first rectangle centered at %+v, want %+v", got, tt.center)
			}
			if r.Size != tt.size {
				t.Errorf("placed size = %+v, want %+v", r.Size, tt.size)
			}
		})
	}
}

func TestPlaceNegativeSize(t *testing.T) {
	sizes := []geom.Size{
		{W: -10, H: 10},
		{W: 10, H: -10},
		{W: -10, H: -10},
		{W: -1, H: 0},
	}

	engine := New(geom.Point{X: 100, Y: 100})
	if _, err := engine.Place(geom.Size{W: 20, H: 20}); err != nil {
		t.Fatalf("setup placement failed: %v", err)
	}

	for _, s := range sizes {
		_, err := engine.Place(s)
		if err == nil {
			t.Errorf("Place(%+v) succeeded, want error", s)
			continue
		}
		if !errors.Is(err, errors.ErrCodeInvalidSize) {
			t.Errorf("Place(%+v) error code = %v, want %v", s, errors.GetCode(err), errors.ErrCodeInvalidSize)
		}
	}

	if got := engine.Len(); got != 1 {
		t.Errorf("failed placements mutated state: %d rectangles, want 1", got)
	}
}

func TestPlaceZeroSizeIsNoOp(t *testing.T) {
	sizes := []geom.Size{
		{W: 0, H: 0},
		{W: 0, H: 10},
		{W: 10, H: 0},
	}

	engine := New(geom.Point{})
	for i := 0; i < 3; i++ {
		for _, s := range sizes {
			r, err := engine.Place(s)
			if err != nil {
				t.Fatalf("Place(%+v) error: %v", s, err)
			}
			if !r.IsEmpty() {
				t.Errorf("Place(%+v) = %+v, want empty rectangle", s, r)
			}
		}
	}

	if got := engine.Rects(); len(got) != 0 {
		t.Errorf("degenerate placements entered the sequence: %d rectangles", len(got))
	}
}

func TestPlacedRectanglesNeverOverlap(t *testing.T) {
	engine := New(geom.Point{X: 55, Y: -30})
	for _, s := range variedSizes(250, 1) {
		if _, err := engine.Place(s); err != nil {
			t.Fatalf("Place error: %v", err)
		}
	}
	rects := engine.Rects()
	if len(rects) != 250 {
		t.Fatalf("placed %d rectangles, want 250", len(rects))
	}
	assertNoOverlaps(t, rects)
}

func TestPlaceReturnsDisjointRectangle(t *testing.T) {
	engine := New(geom.Point{})
	var placed []geom.Rect
	for _, s := range variedSizes(80, 2) {
		r, err := engine.Place(s)
		if err != nil {
			t.Fatalf("Place error: %v", err)
		}
		for i, p := range placed {
			if r.Intersects(p) {
				t.Fatalf("returned rectangle %+v overlaps earlier rectangle %d %+v", r, i, p)
			}
		}
		placed = append(placed, r)
	}
}

// cloudRadius returns the max distance from center to any rectangle corner.
func cloudRadius(center geom.Point, rects []geom.Rect) float64 {
	var radius float64
	for _, r := range rects {
		for _, c := range r.Corners() {
			if d := center.DistanceTo(c); d > radius {
				radius = d
			}
		}
	}
	return radius
}

func totalArea(rects []geom.Rect) float64 {
	var area float64
	for _, r := range rects {
		area += float64(r.Area())
	}
	return area
}

func TestCloudIsTight(t *testing.T) {
	center := geom.Point{X: 500, Y: 500}
	engine := New(center)
	for _, s := range variedSizes(150, 3) {
		if _, err := engine.Place(s); err != nil {
			t.Fatalf("Place error: %v", err)
		}
	}

	rects := engine.Rects()
	radius := cloudRadius(center, rects)
	area := totalArea(rects)

	if circle := math.Pi * radius * radius; circle >= 3*area {
		t.Errorf("enclosing circle area %.0f >= 3x total rectangle area %.0f (radius %.1f)",
			circle, area, radius)
	}
}

// smallWordMix returns sizes dominated by small rectangles with occasional
// large ones, the shape of a real word cloud with a long frequency tail.
func smallWordMix(n int, seed int64) []geom.Size {
	rng := rand.New(rand.NewSource(seed))
	sizes := make([]geom.Size, n)
	for i := range sizes {
		if rng.Float64() < 0.8 {
			sizes[i] = geom.Size{W: 10, H: 10}
		} else {
			sizes[i] = geom.Size{W: 20 + rng.Intn(81), H: 12 + rng.Intn(29)}
		}
	}
	return sizes
}

// A long tail of small rectangles is the hard case for tightness: the small
// ones must keep filling gaps between the large ones far from the center
// instead of ringing around the outside.
func TestCloudStaysTightWithSmallWordMix(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		center := geom.Point{X: 1000, Y: 1000}
		engine := New(center)
		for _, s := range smallWordMix(1000, seed) {
			if _, err := engine.Place(s); err != nil {
				t.Fatalf("seed %d: Place error: %v", seed, err)
			}
		}

		rects := engine.Rects()
		radius := cloudRadius(center, rects)
		area := totalArea(rects)

		if circle := math.Pi * radius * radius; circle >= 3*area {
			t.Errorf("seed %d: enclosing circle area %.0f >= 3x total rectangle area %.0f (radius %.1f)",
				seed, circle, area, radius)
		}
		assertNoOverlaps(t, rects)
	}
}

func TestCloudStaysRound(t *testing.T) {
	center := geom.Point{}
	engine := New(center)
	for _, s := range variedSizes(150, 4) {
		if _, err := engine.Place(s); err != nil {
			t.Fatalf("Place error: %v", err)
		}
	}

	rects := engine.Rects()
	area := totalArea(rects)
	equalAreaRadius := math.Sqrt(area / math.Pi)

	// Every rectangle stays within twice the equal-area disk radius.
	for i, r := range rects {
		if d := center.DistanceTo(r.Center()); d >= 2*equalAreaRadius {
			t.Errorf("rectangle %d center at distance %.1f, want < %.1f", i, d, 2*equalAreaRadius)
		}
	}

	// The cloud must not elongate: bounding box aspect stays near square.
	bounds := geom.Bounds(rects)
	aspect := float64(bounds.Size.W) / float64(bounds.Size.H)
	if aspect < 0.5 || aspect > 2.0 {
		t.Errorf("bounding box aspect ratio %.2f outside [0.5, 2.0]: %+v", aspect, bounds)
	}
}

func TestCompactionPullsTowardCenter(t *testing.T) {
	center := geom.Point{}
	engine := New(center)
	first, err := engine.Place(geom.Size{W: 40, H: 20})
	if err != nil {
		t.Fatalf("Place error: %v", err)
	}
	second, err := engine.Place(geom.Size{W: 40, H: 20})
	if err != nil {
		t.Fatalf("Place error: %v", err)
	}

	// After compaction the second rectangle sits against the first; another
	// unit step toward the center would overlap it.
	c := second.Center()
	dx := float64(center.X - c.X)
	dy := float64(center.Y - c.Y)
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		t.Fatal("second rectangle ended exactly on the center")
	}
	stepped := second.Translate(
		int(math.Round(dx/dist)),
		int(math.Round(dy/dist)),
	)
	if stepped == second {
		return // already flush against the center axis
	}
	if !stepped.Intersects(first) {
		t.Errorf("second rectangle %+v not compacted against first %+v", second, first)
	}
}

func TestManyPlacementsWithinBudget(t *testing.T) {
	center := geom.Point{X: 2000, Y: 2000}
	engine := New(center)
	size := geom.Size{W: 10, H: 10}

	start := time.Now()
	for i := 0; i < 5000; i++ {
		if _, err := engine.Place(size); err != nil {
			t.Fatalf("Place %d error: %v", i, err)
		}
	}
	elapsed := time.Since(start)

	if elapsed > time.Second {
		t.Errorf("5000 placements took %v, want under 1s", elapsed)
	}

	// Tightness must not degrade with cloud size.
	rects := engine.Rects()
	radius := cloudRadius(center, rects)
	area := totalArea(rects)
	if circle := math.Pi * radius * radius; circle >= 3*area {
		t.Errorf("enclosing circle area %.0f >= 3x total rectangle area %.0f (radius %.1f)",
			circle, area, radius)
	}
	assertNoOverlaps(t, rects)
}

func TestRectsReturnsCopy(t *testing.T) {
	engine := New(geom.Point{})
	if _, err := engine.Place(geom.Size{W: 10, H: 10}); err != nil {
		t.Fatalf("Place error: %v", err)
	}

	rects := engine.Rects()
	rects[0] = geom.Rect{Min: geom.Point{X: 999, Y: 999}, Size: geom.Size{W: 1, H: 1}}

	if got := engine.Rects()[0]; got.Min.X == 999 {
		t.Error("mutating the snapshot changed engine state")
	}
}

func TestOptionsOverrideTuning(t *testing.T) {
	engine := New(geom.Point{},
		WithAngleStep(0.2),
		WithRadiusGrowth(1.0),
		WithCompactionStep(2.0),
	)
	if engine.angleStep != 0.2 || engine.radiusGrowth != 1.0 || engine.compactionStep != 2.0 {
		t.Errorf("options not applied: %+v", engine)
	}

	// Non-positive values keep the defaults.
	engine = New(geom.Point{}, WithAngleStep(0), WithRadiusGrowth(-1), WithCompactionStep(0))
	if engine.angleStep != DefaultAngleStep || engine.radiusGrowth != DefaultRadiusGrowth ||
		engine.compactionStep != DefaultCompactionStep {
		t.Errorf("invalid options replaced defaults: %+v", engine)
	}
}

func TestConstructionWithAnyCenter(t *testing.T) {
	centers := []geom.Point{
		{X: 0, Y: 0},
		{X: -1000000, Y: 1000000},
		{X: 7, Y: -3},
	}
	for _, c := range centers {
		engine := New(c)
		if engine.Center() != c {
			t.Errorf("Center() = %+v, want %+v", engine.Center(), c)
		}
		r, err := engine.Place(geom.Size{W: 4, H: 4})
		if err != nil {
			t.Fatalf("Place at center %+v error: %v", c, err)
		}
		if r.Center() != c {
			t.Errorf("first placement at %+v centered at %+v", c, r.Center())
		}
	}
}
