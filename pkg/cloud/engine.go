package cloud

import (
	"math"

	"github.com/mkessel/cumulus/pkg/errors"
	"github.com/mkessel/cumulus/pkg/geom"
)

// Default spiral tuning. The angle step bounds how far the spiral advances
// per candidate; the growth rate controls how quickly the spiral moves
// outward per radian swept. Smaller values nestle rectangles tighter at the
// cost of more candidates per placement.
const (
	// DefaultAngleStep is the maximum spiral angle increment per candidate,
	// in radians. Away from the center the effective increment shrinks so
	// that consecutive candidates stay within the rectangle's smaller side
	// of each other; see search.
	DefaultAngleStep = 0.35

	// DefaultRadiusGrowth is the spiral radius gain per radian swept, in pixels.
	DefaultRadiusGrowth = 1.6

	// DefaultCompactionStep is the distance a provisionally placed rectangle
	// is moved toward the center per compaction iteration, in pixels.
	DefaultCompactionStep = 1.0
)

// Option configures an Engine.
type Option func(*Engine)

// WithAngleStep sets the maximum spiral angle increment in radians.
// Values smaller than the default try more candidate positions per turn.
func WithAngleStep(step float64) Option {
	return func(e *Engine) {
		if step > 0 {
			e.angleStep = step
		}
	}
}

// WithRadiusGrowth sets the spiral radius gain in pixels per radian.
func WithRadiusGrowth(growth float64) Option {
	return func(e *Engine) {
		if growth > 0 {
			e.radiusGrowth = growth
		}
	}
}

// WithCompactionStep sets the per-iteration compaction distance in pixels.
func WithCompactionStep(step float64) Option {
	return func(e *Engine) {
		if step > 0 {
			e.compactionStep = step
		}
	}
}

// Engine places rectangles around a fixed center point, keeping every pair
// of placed rectangles disjoint. The zero value is not usable; construct
// with New. Not safe for concurrent use.
type Engine struct {
	center geom.Point
	placed []geom.Rect
	index  *grid

	angleStep      float64
	radiusGrowth   float64
	compactionStep float64

	// Index of the rectangle that blocked the previous candidate, or -1.
	// Consecutive spiral candidates almost always collide with the same
	// rectangle, so checking it first makes rejected candidates cheap.
	lastHit int

	// Spiral angle at which the previous search for each size found a free
	// candidate. Rectangles are only ever added, so a candidate that
	// collided once collides forever; the next search for the same size can
	// resume here instead of rescanning the packed interior.
	resume map[geom.Size]float64
}

// New creates an engine centered on the given point. Any integer center is
// valid, including the origin and negative coordinates.
func New(center geom.Point, opts ...Option) *Engine {
	e := &Engine{
		center:         center,
		index:          newGrid(),
		angleStep:      DefaultAngleStep,
		radiusGrowth:   DefaultRadiusGrowth,
		compactionStep: DefaultCompactionStep,
		lastHit:        -1,
		resume:         make(map[geom.Size]float64),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Center returns the fixed layout center.
func (e *Engine) Center() geom.Point { return e.center }

// Place computes a position for a rectangle of the given size, records it,
// and returns it.
//
// A size with a strictly negative side fails with an INVALID_SIZE error and
// leaves the engine unchanged. A size with a zero side (and no negative
// side) is a legal no-op: the empty rectangle is returned and nothing is
// recorded. For strictly positive sizes the returned rectangle intersects
// none of the previously placed rectangles; the first rectangle placed into
// a fresh engine is centered exactly on the engine's center.
func (e *Engine) Place(s geom.Size) (geom.Rect, error) {
	if s.IsNegative() {
		return geom.Rect{}, errors.New(errors.ErrCodeInvalidSize,
			"rectangle cannot have a negative extent: %dx%d", s.W, s.H)
	}
	if s.IsDegenerate() {
		return geom.Rect{}, nil
	}

	r := e.search(s)
	r = e.compact(r)
	e.index.insert(len(e.placed), r)
	e.placed = append(e.placed, r)
	return r, nil
}

// Rects returns a copy of all placed rectangles in placement order.
// Degenerate requests never appear in the result.
func (e *Engine) Rects() []geom.Rect {
	out := make([]geom.Rect, len(e.placed))
	copy(out, e.placed)
	return out
}

// Len returns the number of placed rectangles.
func (e *Engine) Len() int { return len(e.placed) }

// search walks the spiral outward from the center and returns the first
// candidate rectangle that collides with nothing. The candidate space is
// unbounded, so the walk always terminates for positive sizes.
//
// The angle increment is capped so that consecutive candidates are at most
// the rectangle's smaller side apart along the arc. With a fixed increment
// the arc spacing grows linearly with the radius, and far from the center
// the spiral skips over gaps a small rectangle would fit into; the cloud
// then balloons past the tightness bound.
//
// Each search resumes at the angle where the previous search for the same
// size left off. The candidate sequence from a given angle is deterministic,
// and every earlier candidate collided when it was last visited, so the skip
// changes nothing in the result.
func (e *Engine) search(s geom.Size) geom.Rect {
	arc := float64(min(s.W, s.H))
	angle := e.resume[s]
	for {
		radius := e.radiusGrowth * angle
		c := geom.Point{
			X: e.center.X + int(math.Round(radius*math.Cos(angle))),
			Y: e.center.Y + int(math.Round(radius*math.Sin(angle))),
		}
		r := geom.RectAround(c, s)
		if !e.collides(r) {
			e.resume[s] = angle
			return r
		}

		step := e.angleStep
		if radius > 0 {
			if a := arc / radius; a < step {
				step = a
			}
		}
		angle += step
	}
}

// compact slides r toward the center in compactionStep increments, stopping
// at the last collision-free position. Movement also stops once the
// rectangle's center reaches the layout center or when a step no longer
// reduces the remaining distance (integer rounding near the center).
func (e *Engine) compact(r geom.Rect) geom.Rect {
	for {
		c := r.Center()
		dx := float64(e.center.X - c.X)
		dy := float64(e.center.Y - c.Y)
		dist := math.Hypot(dx, dy)
		if dist < 1 {
			return r
		}

		step := e.compactionStep
		if step > dist {
			step = dist
		}
		moved := r.Translate(
			int(math.Round(dx/dist*step)),
			int(math.Round(dy/dist*step)),
		)
		if moved == r {
			return r
		}
		if moved.Center().DistanceTo(e.center) >= dist {
			return r
		}
		if e.collides(moved) {
			return r
		}
		r = moved
	}
}

// collides reports whether r intersects any placed rectangle, remembering
// the blocking rectangle for the next call. The cell index bounds the number
// of rectangles examined regardless of how many have been placed.
func (e *Engine) collides(r geom.Rect) bool {
	if e.lastHit >= 0 && e.placed[e.lastHit].Intersects(r) {
		return true
	}
	return e.index.visit(r, func(id int) bool {
		if e.placed[id].Intersects(r) {
			e.lastHit = id
			return true
		}
		return false
	})
}
