// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"

	"github.com/katalvlaran/hexwarp/lattice"
)

// CanvasSize returns the canvas dimensions that hold l with a margin of
// one density on every side.
func CanvasSize(l *lattice.Lattice) (width, height int) {
	m := l.Density()
	return l.Width() + 2*m, l.Height() + 2*m
}

// NewCanvasFor allocates a canvas of CanvasSize(l). It fails with
// ErrCanvasTooLarge when either side exceeds MaxSide.
func NewCanvasFor(l *lattice.Lattice) (*Canvas, error) {
	w, h := CanvasSize(l)
	if w > MaxSide || h > MaxSide {
		return nil, fmt.Errorf("NewCanvasFor: %dx%d: %w", w, h, ErrCanvasTooLarge)
	}
	return NewCanvas(w, h), nil
}

// Draw clears c and paints l with style.
//
// LayoutCells: each cell is a polygon filled by its center's z, outlined,
// with a center dot and lines to the centers of adjacent cells.
// LayoutGraph: every edge is a line and every point a dot tinted by z.
func Draw(c *Canvas, l *lattice.Lattice, style Style) {
	c.Fill(style.Background)
	origin := image.Pt(l.Density(), l.Density())

	if l.Layout() == lattice.LayoutCells {
		drawCells(c, l, style, origin)
		return
	}
	drawGraph(c, l, style, origin)
}

func drawCells(c *Canvas, l *lattice.Lattice, style Style, origin image.Point) {
	cells := l.Cells()
	ring := make([]image.Point, 0, 6)
	for _, cell := range cells {
		ring = ring[:0]
		for _, v := range cell.Vertices() {
			ring = append(ring, pixel(v, origin))
		}
		c.fillPolygon(ring, tint(style.Fill, cell.Center().Z(), style.ZGain))
		c.outline(ring, style.Outline)
	}

	// centers go on top of every polygon so later fills cannot hide them
	for _, cell := range cells {
		from := pixel(cell.Center(), origin)
		for _, nbr := range cell.Neighbors() {
			c.line(from, pixel(nbr.Center(), origin), style.Center)
		}
		c.set(from.X, from.Y, style.Center)
	}
}

func drawGraph(c *Canvas, l *lattice.Lattice, style Style, origin image.Point) {
	points := l.Points()
	for _, p := range points {
		from := pixel(p, origin)
		for _, n := range p.Neighbors() {
			// each undirected edge once
			if n.ID() < p.ID() {
				continue
			}
			c.line(from, pixel(n, origin), style.Outline)
		}
	}
	for _, p := range points {
		at := pixel(p, origin)
		c.set(at.X, at.Y, tint(style.Point, p.Z(), style.ZGain))
	}
}

func pixel(p *lattice.Point, origin image.Point) image.Point {
	return image.Pt(p.X(), p.Y()).Add(origin)
}
