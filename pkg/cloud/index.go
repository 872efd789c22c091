package cloud

import "github.com/mkessel/cumulus/pkg/geom"

// cellSize is the edge length of one index cell in pixels. Chosen so that
// typical word rectangles cover only a handful of cells while each cell
// holds few rectangles even in dense clouds.
const cellSize = 32

type cell struct{ x, y int }

// grid is a uniform bucket index over placed rectangles. Each rectangle is
// registered in every cell it overlaps; collision queries only examine
// rectangles sharing a cell with the probe. Rectangles are identified by
// their index in the engine's placement sequence and are never removed.
type grid struct {
	buckets map[cell][]int
}

func newGrid() *grid {
	return &grid{buckets: make(map[cell][]int)}
}

// insert registers rectangle id for every cell r overlaps.
func (g *grid) insert(id int, r geom.Rect) {
	x0, y0, x1, y1 := cellRange(r)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			k := cell{x: cx, y: cy}
			g.buckets[k] = append(g.buckets[k], id)
		}
	}
}

// visit calls fn for each rectangle id sharing a cell with r, until fn
// returns true. Ids spanning multiple cells are reported once per cell; fn
// must tolerate duplicates.
func (g *grid) visit(r geom.Rect, fn func(id int) bool) bool {
	x0, y0, x1, y1 := cellRange(r)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			for _, id := range g.buckets[cell{x: cx, y: cy}] {
				if fn(id) {
					return true
				}
			}
		}
	}
	return false
}

// cellRange returns the inclusive cell coordinates overlapped by r.
// The right and bottom edges are exclusive, matching strict intersection.
func cellRange(r geom.Rect) (x0, y0, x1, y1 int) {
	x0 = floorDiv(r.Min.X, cellSize)
	y0 = floorDiv(r.Min.Y, cellSize)
	x1 = floorDiv(r.MaxX()-1, cellSize)
	y1 = floorDiv(r.MaxY()-1, cellSize)
	return x0, y0, x1, y1
}

// floorDiv divides rounding toward negative infinity, so cell coordinates
// stay consistent across the origin.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
