// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math"
	"strings"
)

// Layout selects the construction strategy of a Lattice.
type Layout int

const (
	// LayoutGraph grows the lattice breadth-first from the center point.
	LayoutGraph Layout = iota
	// LayoutCells tiles hexagonal cells row by row and locks the frame.
	LayoutCells
)

// populators maps each layout to its construction routine.
var populators = map[Layout]func(*Lattice){
	LayoutGraph: populateGraph,
	LayoutCells: populateCells,
}

// layoutNames is the stable text form used by String and ParseLayout.
var layoutNames = map[Layout]string{
	LayoutGraph: "graph",
	LayoutCells: "cells",
}

// String returns "graph", "cells" or "Layout(n)".
func (l Layout) String() string {
	if name, ok := layoutNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// ParseLayout resolves a case-insensitive layout name. The empty string
// selects LayoutGraph.
func ParseLayout(s string) (Layout, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return LayoutGraph, nil
	}
	for l, n := range layoutNames {
		if n == name {
			return l, nil
		}
	}
	return LayoutGraph, fmt.Errorf("%s: %q: %w", methodParseLayout, s, ErrUnknownLayout)
}

// offset is an integer displacement between two lattice positions.
type offset struct{ dx, dy int }

// hexSpan returns the rounded horizontal and half-vertical extents of a
// hexagon of radius d: a = round(d·sin 60°), h = round(d/2) half-up.
func hexSpan(d int) (a, h int) {
	a = int(math.Round(float64(d) * math.Sqrt(3) / 2))
	h = (d + 1) / 2
	return a, h
}

// graphOffsets returns the six neighbor offsets at angles i·60°, i = 0..5,
// measured from +y toward +x.
//
// The two "lower" diagonals use d-h instead of h so that every offset is
// the sum of its two angular neighbors; with an odd d a mirrored rounding
// would not close and breadth-first growth would fill the box with
// off-lattice points.
func graphOffsets(d int) [6]offset {
	a, h := hexSpan(d)
	return [6]offset{
		{0, d},
		{a, h},
		{a, h - d},
		{0, -d},
		{-a, -h},
		{-a, d - h},
	}
}

// cellOffsets returns the six vertex offsets of a cell of radius r in ring
// order. Unlike graphOffsets they are mirror-symmetric, which is what lets
// horizontally adjacent cells share vertices.
func cellOffsets(r int) [6]offset {
	a, h := hexSpan(r)
	return [6]offset{
		{0, r},
		{a, h},
		{a, -h},
		{0, -r},
		{-a, -h},
		{-a, h},
	}
}
