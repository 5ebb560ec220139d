// SPDX-License-Identifier: MIT

package geom

import "fmt"

// Vector is a displacement in lattice units.
// Methods take value receivers and return new values; a Vector is never
// mutated in place.
type Vector struct {
	X int
	Y int
	Z int
}

// Vec is shorthand for Vector{X: x, Y: y, Z: z}.
func Vec(x, y, z int) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Magnitude returns the Manhattan norm |X|+|Y|+|Z|.
func (v Vector) Magnitude() int {
	return Abs(v.X) + Abs(v.Y) + Abs(v.Z)
}

// Div floor-divides every component by n. It panics when n == 0,
// exactly like the built-in integer division.
func (v Vector) Div(n int) Vector {
	return Vector{
		X: FloorDiv(v.X, n),
		Y: FloorDiv(v.Y, n),
		Z: FloorDiv(v.Z, n),
	}
}

// Add returns the componentwise sum v+o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// IsZero reports whether all three components are zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// String renders the vector as "(x,y,z)".
func (v Vector) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}
