// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
)

// Build constructs a hexagonal lattice covering width × height with point
// spacing density.
//
// Implementation:
//   - Stage 1: validate dimensions and options.
//   - Stage 2: run the layout's populator (graph growth or cell tiling).
//   - Stage 3: lock the frame (always for LayoutCells, on request otherwise).
//   - Stage 4: assert the structural invariants.
//
// Errors:
//   - ErrBadDimension if width or height ≤ 0.
//   - ErrBadDensity if density ≤ 0.
//   - ErrOptionViolation for an invalid Option.
//
// Complexity: O(V) time and memory.
func Build(width, height, density int, opts ...Option) (*Lattice, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%s: width=%d height=%d: %w", methodBuild, width, height, ErrBadDimension)
	}
	if density <= 0 {
		return nil, fmt.Errorf("%s: density=%d: %w", methodBuild, density, ErrBadDensity)
	}

	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, o.err)
	}

	l := &Lattice{
		width:   width,
		height:  height,
		density: density,
		layout:  o.layout,
		index:   make(map[key]*Point),
		log:     o.logger,
	}

	populators[o.layout](l)

	locked := 0
	if o.layout == LayoutCells || o.lockBoundary {
		locked = l.lockBoundary()
	}

	l.verify()

	l.log.Debug("lattice built",
		"layout", l.layout.String(),
		"width", width,
		"height", height,
		"density", density,
		"points", len(l.points),
		"cells", len(l.cells),
		"locked", locked,
	)
	return l, nil
}

// lockBoundary locks every point on or outside the nominal rectangle and
// returns how many were locked.
func (l *Lattice) lockBoundary() int {
	n := 0
	for _, p := range l.points {
		if l.onBoundary(p.x, p.y) {
			p.lock()
			n++
		}
	}
	return n
}

// verify panics on any structural invariant violation: index/storage
// mismatch, duplicate positions, foreign neighbors or excess degree.
func (l *Lattice) verify() {
	if len(l.index) != len(l.points) {
		panic(fmt.Sprintf("lattice: index holds %d positions for %d points", len(l.index), len(l.points)))
	}
	for i, p := range l.points {
		if p.id != i {
			panic(fmt.Sprintf("lattice: %v stored at %d carries id %d", p, i, p.id))
		}
		if l.index[key{p.x, p.y}] != p {
			panic(fmt.Sprintf("lattice: %v is not indexed by its position", p))
		}
		if len(p.neighbors) > maxDegree {
			panic(fmt.Sprintf("lattice: %v has degree %d", p, len(p.neighbors)))
		}
		for _, n := range p.neighbors {
			if !l.Contains(n) {
				panic(fmt.Sprintf("lattice: %v links to foreign %v", p, n))
			}
		}
	}
}
