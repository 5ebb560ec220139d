// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/katalvlaran/hexwarp/geom"
)

// line draws a 1px Bresenham segment including both endpoints.
func (c *Canvas) line(a, b image.Point, col color.RGBA) {
	dx := geom.Abs(b.X - a.X)
	dy := -geom.Abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	err := dx + dy
	x, y := a.X, a.Y
	for {
		c.set(x, y, col)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// outline closes the polygon with line segments.
func (c *Canvas) outline(pts []image.Point, col color.RGBA) {
	for i := range pts {
		c.line(pts[i], pts[(i+1)%len(pts)], col)
	}
}

// fillPolygon paints every pixel whose center lies inside pts (even-odd
// rule). Works for the non-convex shapes a heavy drag can produce.
func (c *Canvas) fillPolygon(pts []image.Point, col color.RGBA) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	b := c.img.Bounds()
	minY = max(minY, b.Min.Y)
	maxY = min(maxY, b.Max.Y-1)

	xs := make([]float64, 0, len(pts))
	for y := minY; y <= maxY; y++ {
		sy := float64(y) + 0.5
		xs = xs[:0]
		for i := range pts {
			p, q := pts[i], pts[(i+1)%len(pts)]
			py, qy := float64(p.Y), float64(q.Y)
			if (py <= sy) == (qy <= sy) {
				continue
			}
			t := (sy - py) / (qy - py)
			xs = append(xs, float64(p.X)+t*float64(q.X-p.X))
		}
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(math.Ceil(xs[i] - 0.5))
			x1 := int(math.Floor(xs[i+1] - 0.5))
			for x := max(x0, b.Min.X); x <= min(x1, b.Max.X-1); x++ {
				c.set(x, y, col)
			}
		}
	}
}
