// Package geom provides the integer geometry primitives used by the cloud
// layouter: points, sizes, and axis-aligned rectangles.
//
// All coordinates are integers with the top-left corner convention: X grows
// to the right, Y grows downward, and a rectangle is identified by its
// top-left corner and its size. Intersection is strict: two rectangles
// intersect only if their interiors overlap with positive area, so rectangles
// that merely share an edge do not intersect. All tests are exact integer
// comparisons with no floating-point tolerance.
package geom

import "math"

// Point is an integer coordinate pair.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DistanceTo returns the Euclidean distance between two points.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(float64(p.X-q.X), float64(p.Y-q.Y))
}

// Size describes the dimensions of a requested rectangle.
type Size struct {
	W int `json:"w"`
	H int `json:"h"`
}

// IsNegative reports whether either side has a strictly negative extent.
// Such sizes are invalid and can never be placed.
func (s Size) IsNegative() bool { return s.W < 0 || s.H < 0 }

// IsDegenerate reports whether the size spans zero area without being
// negative. Degenerate sizes are legal no-ops for placement.
func (s Size) IsDegenerate() bool { return !s.IsNegative() && (s.W == 0 || s.H == 0) }

// Area returns the area covered by the size.
func (s Size) Area() int { return s.W * s.H }

// Rect is an axis-aligned rectangle described by its top-left corner and
// size. The zero value is the empty rectangle sentinel returned for
// degenerate placement requests.
type Rect struct {
	Min  Point `json:"min"`
	Size Size  `json:"size"`
}

// RectAround returns the rectangle of the given size whose geometric center
// is c. Odd dimensions cannot be bisected exactly in integer coordinates;
// the corner is rounded toward the top-left (floor division).
func RectAround(c Point, s Size) Rect {
	return Rect{
		Min:  Point{X: c.X - s.W/2, Y: c.Y - s.H/2},
		Size: s,
	}
}

// IsEmpty reports whether r is the empty rectangle sentinel or otherwise
// covers no area.
func (r Rect) IsEmpty() bool { return r.Size.W <= 0 || r.Size.H <= 0 }

// MaxX returns the exclusive right edge coordinate.
func (r Rect) MaxX() int { return r.Min.X + r.Size.W }

// MaxY returns the exclusive bottom edge coordinate.
func (r Rect) MaxY() int { return r.Min.Y + r.Size.H }

// Area returns the area covered by the rectangle.
func (r Rect) Area() int { return r.Size.Area() }

// Center returns the geometric center, rounded toward the top-left for odd
// dimensions. RectAround(r.Center(), r.Size) reproduces r exactly for even
// dimensions and within one unit otherwise.
func (r Rect) Center() Point {
	return Point{X: r.Min.X + r.Size.W/2, Y: r.Min.Y + r.Size.H/2}
}

// Corners returns the four corner points of the rectangle.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.MaxX(), Y: r.Min.Y},
		{X: r.Min.X, Y: r.MaxY()},
		{X: r.MaxX(), Y: r.MaxY()},
	}
}

// Intersects reports whether r and o overlap with positive area. Rectangles
// that only touch along an edge or at a corner do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X < o.MaxX() && o.Min.X < r.MaxX() &&
		r.Min.Y < o.MaxY() && o.Min.Y < r.MaxY()
}

// Translate returns the rectangle shifted by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{Min: Point{X: r.Min.X + dx, Y: r.Min.Y + dy}, Size: r.Size}
}

// Union returns the smallest rectangle covering both r and o. An empty
// operand does not contribute to the result.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	minX := min(r.Min.X, o.Min.X)
	minY := min(r.Min.Y, o.Min.Y)
	maxX := max(r.MaxX(), o.MaxX())
	maxY := max(r.MaxY(), o.MaxY())
	return Rect{Min: Point{X: minX, Y: minY}, Size: Size{W: maxX - minX, H: maxY - minY}}
}

// Bounds returns the smallest rectangle covering every rectangle in rs, or
// the empty rectangle when rs is empty.
func Bounds(rs []Rect) Rect {
	var b Rect
	for _, r := range rs {
		b = b.Union(r)
	}
	return b
}
