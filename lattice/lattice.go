// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/hexwarp/geom"
)

// key is a construction-time (x, y) position.
type key struct{ x, y int }

// Lattice owns a fixed set of Points and their hexagonal adjacency.
//
// Points are created only by Build and never removed. The position index
// maps each construction position to exactly one Point; it is not updated
// when points move.
type Lattice struct {
	mu sync.RWMutex // guards point positions during Drag and Shift

	width   int
	height  int
	density int
	layout  Layout

	points []*Point       // insertion order; points[i].id == i
	index  map[key]*Point // construction position → point
	cells  []*Cell        // LayoutCells only

	log *slog.Logger
}

// Width returns the nominal region width.
func (l *Lattice) Width() int { return l.width }

// Height returns the nominal region height.
func (l *Lattice) Height() int { return l.height }

// Density returns the point spacing (cell radius in LayoutCells).
func (l *Lattice) Density() int { return l.density }

// Layout returns the construction strategy used by Build.
func (l *Lattice) Layout() Layout { return l.layout }

// Len returns the number of points.
func (l *Lattice) Len() int { return len(l.points) }

// Points returns all points in insertion order. The slice is a copy; the
// points are shared.
func (l *Lattice) Points() []*Point {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*Point, len(l.points))
	copy(out, l.points)
	return out
}

// Cells returns the hexagonal cells of a LayoutCells lattice, nil otherwise.
func (l *Lattice) Cells() []*Cell {
	if l.cells == nil {
		return nil
	}
	out := make([]*Cell, len(l.cells))
	copy(out, l.cells)
	return out
}

// Anchors returns the natural drag targets: cell centers in LayoutCells,
// every point in LayoutGraph.
func (l *Lattice) Anchors() []*Point {
	if l.layout != LayoutCells {
		return l.Points()
	}
	out := make([]*Point, 0, len(l.cells))
	for _, c := range l.cells {
		out = append(out, c.center)
	}
	return out
}

// At returns the point created at construction position (x, y).
func (l *Lattice) At(x, y int) (*Point, bool) {
	p, ok := l.index[key{x, y}]
	return p, ok
}

// Contains reports whether p is owned by l.
func (l *Lattice) Contains(p *Point) bool {
	return p != nil && p.id >= 0 && p.id < len(l.points) && l.points[p.id] == p
}

// Nearest returns the point whose current (x, y) is closest to (x, y) in
// Euclidean distance; ties go to the earlier point. It returns nil only for
// an empty lattice, which Build never produces.
func (l *Lattice) Nearest(x, y int) *Point {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var (
		best     *Point
		bestDist int
	)
	for _, p := range l.points {
		dx, dy := p.x-x, p.y-y
		d := dx*dx + dy*dy
		if best == nil || d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// Shift displaces a single point by v without propagation. Locked points
// ignore it. It panics if p does not belong to l.
func (l *Lattice) Shift(p *Point, v geom.Vector) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.mustOwn(p)
	p.move(v)
}

// String summarizes the lattice.
func (l *Lattice) String() string {
	return fmt.Sprintf("<Lattice %s %dx%d d=%d points=%d cells=%d>",
		l.layout, l.width, l.height, l.density, len(l.points), len(l.cells))
}

// addPoint returns the point at (x, y), creating and registering it when
// the position is new.
func (l *Lattice) addPoint(x, y int) (p *Point, created bool) {
	k := key{x, y}
	if p, ok := l.index[k]; ok {
		return p, false
	}
	p = &Point{id: len(l.points), x: x, y: y}
	l.points = append(l.points, p)
	l.index[k] = p
	return p, true
}

// onBoundary reports whether (x, y) lies on or outside the nominal rectangle.
func (l *Lattice) onBoundary(x, y int) bool {
	return x <= 0 || x >= l.width || y <= 0 || y >= l.height
}

// inMargin reports whether (x, y) lies inside the construction box, which
// extends one density unit beyond the nominal rectangle on every side.
func (l *Lattice) inMargin(x, y int) bool {
	d := l.density
	return x >= -d && x <= l.width+d && y >= -d && y <= l.height+d
}

// mustOwn panics when p is not one of l's points.
func (l *Lattice) mustOwn(p *Point) {
	if !l.Contains(p) {
		panic(fmt.Sprintf("lattice: %v does not belong to %v", p, l))
	}
}
