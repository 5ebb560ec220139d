// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*Canvas)(nil)

// MaxSide is the largest canvas side drivers.Displayer can address.
const MaxSide = math.MaxInt16

// ErrCanvasTooLarge is returned by NewCanvasFor when a lattice does not fit
// within MaxSide×MaxSide pixels.
var ErrCanvasTooLarge = errors.New("render: canvas too large")

// Canvas is an in-memory RGBA surface.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas allocates a transparent width×height canvas. Sides are clamped
// to [0, MaxSide].
func NewCanvas(width, height int) *Canvas {
	w := min(max(width, 0), MaxSide)
	h := min(max(height, 0), MaxSide)
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image exposes the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Size reports the canvas dimensions, as drivers.Displayer requires.
func (c *Canvas) Size() (x, y int16) {
	b := c.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

// SetPixel paints one pixel; out-of-range coordinates are ignored.
func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.set(int(x), int(y), col)
}

// Display is a no-op: the canvas has no device to flush to.
func (c *Canvas) Display() error { return nil }

// At returns the color at (x, y).
func (c *Canvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// Fill paints the whole canvas.
func (c *Canvas) Fill(col color.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

func (c *Canvas) set(x, y int, col color.RGBA) {
	c.img.SetRGBA(x, y, col)
}
