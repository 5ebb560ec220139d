// SPDX-License-Identifier: MIT

// Package geom holds the integer primitives shared by the lattice and its
// collaborators: the displacement Vector and a few sign-aware helpers.
//
// What:
//
//   - Vector is an immutable (dx, dy, dz) triple of signed integers.
//   - Magnitude is the Manhattan norm |dx|+|dy|+|dz|.
//   - Div divides componentwise with floor semantics (toward negative infinity).
//
// Floor division:
//
//	Go's integer division truncates toward zero (-7/2 == -3). Decay in the
//	lattice relies on flooring (-7 div 2 == -4, -1 div 2 == -1), so every
//	division in this module goes through FloorDiv.
//
// Complexity: every operation is O(1) and allocation-free.
package geom
