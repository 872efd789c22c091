package cloud

import (
	"testing"

	"github.com/mkessel/cumulus/pkg/geom"
)

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{0, 32, 0},
		{31, 32, 0},
		{32, 32, 1},
		{-1, 32, -1},
		{-32, 32, -1},
		{-33, 32, -2},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCellRangeExclusiveEdges(t *testing.T) {
	// A rectangle ending exactly on a cell boundary must not claim the next
	// cell; edge-touching rectangles do not intersect.
	r := geom.Rect{Min: geom.Point{X: 0, Y: 0}, Size: geom.Size{W: cellSize, H: cellSize}}
	x0, y0, x1, y1 := cellRange(r)
	if x0 != 0 || y0 != 0 || x1 != 0 || y1 != 0 {
		t.Errorf("cellRange = (%d,%d)-(%d,%d), want (0,0)-(0,0)", x0, y0, x1, y1)
	}
}

func TestGridFindsNeighbours(t *testing.T) {
	g := newGrid()
	a := geom.Rect{Min: geom.Point{X: -40, Y: -40}, Size: geom.Size{W: 80, H: 80}}
	b := geom.Rect{Min: geom.Point{X: 200, Y: 200}, Size: geom.Size{W: 10, H: 10}}
	g.insert(0, a)
	g.insert(1, b)

	seen := map[int]bool{}
	probe := geom.Rect{Min: geom.Point{X: -10, Y: -10}, Size: geom.Size{W: 20, H: 20}}
	g.visit(probe, func(id int) bool {
		seen[id] = true
		return false
	})

	if !seen[0] {
		t.Error("overlapping rectangle not reported")
	}
	if seen[1] {
		t.Error("distant rectangle reported")
	}
}

func TestGridVisitStopsEarly(t *testing.T) {
	g := newGrid()
	r := geom.Rect{Min: geom.Point{X: 0, Y: 0}, Size: geom.Size{W: 10, H: 10}}
	g.insert(0, r)
	g.insert(1, r)

	calls := 0
	hit := g.visit(r, func(id int) bool {
		calls++
		return true
	})
	if !hit {
		t.Error("visit did not report a hit")
	}
	if calls != 1 {
		t.Errorf("visit made %d calls after hit, want 1", calls)
	}
}
