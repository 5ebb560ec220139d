// SPDX-License-Identifier: MIT

// Package lattice builds a hexagonal lattice of connected points and deforms
// it with a decaying, breadth-first "drag".
//
// What
//
//   - Build(width, height, density, ...) constructs the point graph once.
//     Two layouts share one Lattice type:
//   - LayoutGraph (default): breadth-first expansion from the center point,
//     six hexagonal offsets per point, positions deduplicated through a
//     (x, y) → *Point map owned by the Lattice.
//   - LayoutCells: row-tiled hexagonal cells whose vertices are shared by
//     position; every point on or outside the nominal rectangle is locked.
//   - Drag(starts, v) moves the start points by v, then spreads the halved
//     vector outward wave by wave. Neighbors of each wave receive a "peak"
//     vector: the same z, with x/y biased back toward the wave point so the
//     surface bulges instead of shifting in parallel.
//   - Each point is displaced at most once per Drag call; locked points
//     absorb their share silently.
//
// Why
//
//   - Halving per wave bounds the depth to O(log |v|) waves.
//   - The affected set stops oscillation on a cyclic graph where a point is
//     reachable along several equal-length paths.
//
// Determinism
//
//	Points are stored in insertion order and neighbor lists keep the order
//	in which they were connected. When two wave points target the same
//	neighbor, the later one in iteration order wins. The same inputs always
//	produce the same output.
//
// Floor division
//
//	Every halving rounds toward negative infinity (geom.FloorDiv). A
//	component of -1 therefore never decays to zero; Drag stops after the
//	wave whose halved vector equals its input vector.
//
// Complexity (V = |points|, W = number of waves ≤ ⌈log2 |v|⌉ + 1)
//
//   - Build: O(V) time and memory (at most six candidates per point).
//   - Drag:  O(W·V) time worst case, O(V) memory for the affected bitset.
//
// Options
//
//   - WithLayout(l):       choose LayoutGraph or LayoutCells.
//   - WithBoundaryLock():  lock boundary points in LayoutGraph as well.
//   - WithLogger(lg):      debug-log construction statistics.
//   - WithOnWave / WithOnMove / WithMaxWaves for Drag.
//
// Errors
//
//   - ErrBadDimension     width or height ≤ 0.
//   - ErrBadDensity       density ≤ 0.
//   - ErrOptionViolation  invalid Option (unknown layout, nil logger).
//
// Broken internal invariants (duplicate positions, foreign neighbors,
// degree above six, foreign start points) panic: they signal a bug in the
// caller or in construction, not bad input.
//
// Concurrency
//
//	A Lattice carries one RWMutex. Drag and Shift take the write lock for
//	the whole call; Points, Nearest and the other bulk readers take the read
//	lock. Adjacency never changes after Build.
package lattice
