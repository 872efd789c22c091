package geom

import "testing"

func TestSizeClassification(t *testing.T) {
	tests := []struct {
		name       string
		size       Size
		negative   bool
		degenerate bool
	}{
		{name: "positive", size: Size{W: 10, H: 20}, negative: false, degenerate: false},
		{name: "zero width", size: Size{W: 0, H: 20}, negative: false, degenerate: true},
		{name: "zero height", size: Size{W: 10, H: 0}, negative: false, degenerate: true},
		{name: "zero both", size: Size{W: 0, H: 0}, negative: false, degenerate: true},
		{name: "negative width", size: Size{W: -10, H: 20}, negative: true, degenerate: false},
		{name: "negative height", size: Size{W: 10, H: -20}, negative: true, degenerate: false},
		{name: "negative both", size: Size{W: -10, H: -20}, negative: true, degenerate: false},
		{name: "negative and zero", size: Size{W: -1, H: 0}, negative: true, degenerate: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.size.IsNegative(); got != tt.negative {
				t.Errorf("IsNegative() = %v, want %v", got, tt.negative)
			}
			if got := tt.size.IsDegenerate(); got != tt.degenerate {
				t.Errorf("IsDegenerate() = %v, want %v", got, tt.degenerate)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	base := Rect{Min: Point{X: 0, Y: 0}, Size: Size{W: 10, H: 10}}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{
			name:  "identical",
			other: base,
			want:  true,
		},
		{
			name:  "partial overlap",
			other: Rect{Min: Point{X: 5, Y: 5}, Size: Size{W: 10, H: 10}},
			want:  true,
		},
		{
			name:  "contained",
			other: Rect{Min: Point{X: 2, Y: 2}, Size: Size{W: 3, H: 3}},
			want:  true,
		},
		{
			name:  "edge touching right",
			other: Rect{Min: Point{X: 10, Y: 0}, Size: Size{W: 10, H: 10}},
			want:  false,
		},
		{
			name:  "edge touching below",
			other: Rect{Min: Point{X: 0, Y: 10}, Size: Size{W: 10, H: 10}},
			want:  false,
		},
		{
			name:  "corner touching",
			other: Rect{Min: Point{X: 10, Y: 10}, Size: Size{W: 10, H: 10}},
			want:  false,
		},
		{
			name:  "one unit overlap",
			other: Rect{Min: Point{X: 9, Y: 9}, Size: Size{W: 10, H: 10}},
			want:  true,
		},
		{
			name:  "disjoint",
			other: Rect{Min: Point{X: 100, Y: 100}, Size: Size{W: 10, H: 10}},
			want:  false,
		},
		{
			name:  "negative coordinates overlap",
			other: Rect{Min: Point{X: -5, Y: -5}, Size: Size{W: 6, H: 6}},
			want:  true,
		},
		{
			name:  "negative coordinates touching",
			other: Rect{Min: Point{X: -10, Y: -10}, Size: Size{W: 10, H: 10}},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("reverse Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectAround(t *testing.T) {
	tests := []struct {
		name   string
		center Point
		size   Size
		want   Rect
	}{
		{
			name:   "even dimensions",
			center: Point{X: 0, Y: 0},
			size:   Size{W: 10, H: 20},
			want:   Rect{Min: Point{X: -5, Y: -10}, Size: Size{W: 10, H: 20}},
		},
		{
			name:   "odd dimensions round toward top left",
			center: Point{X: 0, Y: 0},
			size:   Size{W: 5, H: 7},
			want:   Rect{Min: Point{X: -2, Y: -3}, Size: Size{W: 5, H: 7}},
		},
		{
			name:   "negative center",
			center: Point{X: -100, Y: -50},
			size:   Size{W: 10, H: 10},
			want:   Rect{Min: Point{X: -105, Y: -55}, Size: Size{W: 10, H: 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RectAround(tt.center, tt.size)
			if got != tt.want {
				t.Errorf("RectAround() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectCenterRoundTrip(t *testing.T) {
	c := Point{X: 17, Y: -4}
	r := RectAround(c, Size{W: 10, H: 20})
	if got := r.Center(); got != c {
		t.Errorf("Center() = %+v, want %+v", got, c)
	}
}

func TestRectIsEmpty(t *testing.T) {
	if !(Rect{}).IsEmpty() {
		t.Error("zero rectangle should be empty")
	}
	if (Rect{Size: Size{W: 1, H: 1}}).IsEmpty() {
		t.Error("1x1 rectangle should not be empty")
	}
}

func TestBounds(t *testing.T) {
	rects := []Rect{
		{Min: Point{X: -10, Y: 0}, Size: Size{W: 5, H: 5}},
		{Min: Point{X: 0, Y: -20}, Size: Size{W: 10, H: 10}},
		{Min: Point{X: 20, Y: 20}, Size: Size{W: 1, H: 1}},
	}
	got := Bounds(rects)
	want := Rect{Min: Point{X: -10, Y: -20}, Size: Size{W: 31, H: 41}}
	if got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}

	if !Bounds(nil).IsEmpty() {
		t.Error("Bounds(nil) should be empty")
	}
}
