// SPDX-License-Identifier: MIT

package lattice

// Cell is one hexagon of a LayoutCells lattice: a center point and the six
// vertices around it, some of which are shared with adjacent cells.
type Cell struct {
	center    *Point
	vertices  [6]*Point
	neighbors []*Cell
}

// Center returns the cell's center point.
func (c *Cell) Center() *Point { return c.center }

// Vertices returns the six vertex points in ring order, starting with the
// vertex straight below the center (+y) and turning toward +x.
func (c *Cell) Vertices() []*Point {
	out := make([]*Point, len(c.vertices))
	copy(out, c.vertices[:])
	return out
}

// Neighbors returns the adjacent cells found at the six tiling offsets.
func (c *Cell) Neighbors() []*Cell {
	out := make([]*Cell, len(c.neighbors))
	copy(out, c.neighbors)
	return out
}
