// SPDX-License-Identifier: MIT

package lattice

// populateCells tiles hexagonal cells of radius density row by row.
//
// Rows advance by r+h and every odd row is shifted right by a (half a cell
// width), giving the brick-like honeycomb where each vertex is shared by up
// to three cells. Vertices are deduplicated through the position index.
// Each center links to its six vertices and consecutive vertices link to
// each other, so every point keeps at most six neighbors. Cells are then
// connected to the cells whose centers sit at the six tiling offsets.
//
// The tiling overshoots the nominal rectangle by at least one cell on the
// right and bottom; Build locks everything on or beyond the frame.
//
// Complexity: O(rows·cols) time and memory.
func populateCells(l *Lattice) {
	r := l.density
	a, h := hexSpan(r)
	ring := cellOffsets(r)

	colStep := 2 * a
	rowStep := r + h
	cols := l.width/colStep + 2
	rows := l.height/rowStep + 2

	byCenter := make(map[key]*Cell, rows*cols)

	for j := 0; j < rows; j++ {
		x0 := 0
		if j%2 == 1 {
			x0 = a
		}
		y := j * rowStep
		for i := 0; i < cols; i++ {
			x := x0 + i*colStep

			center, _ := l.addPoint(x, y)
			c := &Cell{center: center}
			for k, o := range ring {
				c.vertices[k], _ = l.addPoint(x+o.dx, y+o.dy)
			}
			for k, v := range c.vertices {
				link(center, v)
				link(v, c.vertices[(k+1)%len(c.vertices)])
			}

			l.cells = append(l.cells, c)
			byCenter[key{x, y}] = c
		}
	}

	steps := [6]offset{
		{-colStep, 0},
		{colStep, 0},
		{-a, -rowStep},
		{-a, rowStep},
		{a, -rowStep},
		{a, rowStep},
	}
	for _, c := range l.cells {
		for _, s := range steps {
			if nbr, ok := byCenter[key{c.center.x + s.dx, c.center.y + s.dy}]; ok {
				c.neighbors = append(c.neighbors, nbr)
			}
		}
	}
}
