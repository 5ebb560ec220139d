// SPDX-License-Identifier: MIT

package lattice

import (
	"math"

	"github.com/katalvlaran/hexwarp/geom"
)

// peakReference is the spacing at which peak offsets are applied unscaled
// (after the halving in the normalization factor): offsets are multiplied
// by peakReference/density/2.
const peakReference = 100

// peak derives the vector a neighbor p of center receives from the wave
// vector v (already halved by the caller).
//
// The z component is carried unchanged. x and y are biased back toward the
// center by |z|: a neighbor straight above or below gets a pure y pull and
// keeps v.X as its x offset; a diagonal neighbor gets a full x pull and a
// half y pull. Offsets are normalized by peakReference/density/2 and
// clamped to ±density, so the bulge looks the same at every spacing.
func peak(v geom.Vector, p, center *Point, density int) geom.Vector {
	var ox, oy int
	if p.x == center.x {
		ox = v.X
		oy = geom.Abs(v.Z) * geom.Toward(p.y > center.y)
	} else {
		ox = geom.Abs(v.Z) * geom.Toward(p.x > center.x)
		oy = geom.Abs(geom.FloorDiv(v.Z, 2)) * geom.Toward(p.y > center.y)
	}

	ox = geom.Clamp(normalizePeak(ox, density), density)
	oy = geom.Clamp(normalizePeak(oy, density), density)

	return geom.Vector{X: v.X + ox, Y: v.Y + oy, Z: v.Z}
}

// normalizePeak scales o by peakReference/density/2, rounding half away
// from zero.
func normalizePeak(o, density int) int {
	return int(math.Round(float64(o) * peakReference / float64(density) / 2))
}
