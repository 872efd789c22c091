// Package cloud implements the tag cloud layout engine.
//
// The engine places axis-aligned rectangles one at a time around a fixed
// center point so that no two placed rectangles overlap and the arrangement
// stays compact and disk-shaped. Placement is an online greedy heuristic:
// rectangles are placed in the order requested, with no lookahead and no
// repositioning of earlier rectangles.
//
// # Algorithm
//
// Each placement walks an Archimedean spiral outward from the center,
// centering the candidate rectangle on successive spiral points. The first
// candidate that intersects no placed rectangle is accepted, then slid in a
// straight line back toward the center until any further movement would
// cause an intersection. The spiral step sizes trade placement precision
// against running time and are exposed as Options.
//
// # Usage
//
//	engine := cloud.New(geom.Point{X: 400, Y: 300})
//	for _, s := range sizes {
//	    r, err := engine.Place(s)
//	    if err != nil {
//	        return err
//	    }
//	    if r.IsEmpty() {
//	        continue // zero-area request, nothing placed
//	    }
//	}
//	rects := engine.Rects()
//
// An Engine is owned by a single goroutine. Place and Rects do no locking;
// callers sharing an engine across goroutines must serialize access.
package cloud
