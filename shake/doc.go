// SPDX-License-Identifier: MIT

// Package shake perturbs a whole lattice at once.
//
// Two families are provided:
//   - Noise shifts every point by a small (x, y) offset without
//     propagation, roughening the mesh.
//   - Drag runs a full lattice.Drag from every anchor, producing
//     overlapping bulges.
//
// Strengths come either from a *rand.Rand (RandomNoise, RandomDrag) or from
// a cycling decimal digit stream (SeedNoise, SeedDrag), which makes a
// deformation reproducible from a short string.
package shake
