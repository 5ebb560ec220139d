// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"github.com/katalvlaran/hexwarp/geom"
)

// maxDegree is the neighbor bound of a hexagonal lattice.
const maxDegree = 6

// Point is a mutable lattice vertex.
//
// A Point belongs to exactly one Lattice and is addressed by id, its index in
// the Lattice's point storage. Neighbors are non-owning references into the
// same storage. Positions change only through Lattice.Drag and Lattice.Shift.
type Point struct {
	id        int
	x, y, z   int
	locked    bool
	neighbors []*Point
}

// Position returns the current (x, y, z) coordinates.
func (p *Point) Position() (x, y, z int) {
	return p.x, p.y, p.z
}

// X returns the current x coordinate.
func (p *Point) X() int { return p.x }

// Y returns the current y coordinate.
func (p *Point) Y() int { return p.y }

// Z returns the current z coordinate.
func (p *Point) Z() int { return p.z }

// ID returns the insertion index of p inside its Lattice.
func (p *Point) ID() int { return p.id }

// IsLocked reports whether p ignores displacement.
func (p *Point) IsLocked() bool { return p.locked }

// Neighbors returns a copy of the adjacency list in connection order.
func (p *Point) Neighbors() []*Point {
	out := make([]*Point, len(p.neighbors))
	copy(out, p.neighbors)
	return out
}

// Degree returns the number of neighbors.
func (p *Point) Degree() int { return len(p.neighbors) }

// Equal reports whether p and o sit at the same (x, y, z). Two distinct
// Points may compare equal after deformation; identity is the pointer.
func (p *Point) Equal(o *Point) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.x == o.x && p.y == o.y && p.z == o.z
}

// String renders the point as "<Point: x,y,z>".
func (p *Point) String() string {
	return fmt.Sprintf("<Point: %d,%d,%d>", p.x, p.y, p.z)
}

// move displaces p by v unless p is locked.
func (p *Point) move(v geom.Vector) {
	if p.locked {
		return
	}
	p.x += v.X
	p.y += v.Y
	p.z += v.Z
}

// lock freezes p permanently.
func (p *Point) lock() { p.locked = true }

// connect appends q to p's adjacency once. It panics when the hexagonal
// degree bound would be exceeded.
func (p *Point) connect(q *Point) {
	if p == q {
		return
	}
	for _, n := range p.neighbors {
		if n == q {
			return
		}
	}
	if len(p.neighbors) == maxDegree {
		panic(fmt.Sprintf("lattice: %v already has %d neighbors, cannot connect %v", p, maxDegree, q))
	}
	p.neighbors = append(p.neighbors, q)
}

// link connects p and q in both directions.
func link(p, q *Point) {
	p.connect(q)
	q.connect(p)
}
