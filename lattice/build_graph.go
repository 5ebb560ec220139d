// SPDX-License-Identifier: MIT

package lattice

// populateGraph grows the lattice breadth-first from the center point.
//
// Each dequeued point tries its six hexagonal offsets. A candidate inside
// the construction box reuses the point already registered at that
// position or creates and enqueues a new one; either way the current point
// gets a directed edge to it. Every point is dequeued exactly once, so each
// ends up linked to all of its in-box neighbors and adjacency is symmetric.
//
// Complexity: O(V) time, O(V) queue memory.
func populateGraph(l *Lattice) {
	offsets := graphOffsets(l.density)

	seed, _ := l.addPoint(l.width/2, l.height/2)
	queue := []*Point{seed}

	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		for _, o := range offsets {
			x, y := cur.x+o.dx, cur.y+o.dy
			if !l.inMargin(x, y) {
				continue
			}
			nbr, created := l.addPoint(x, y)
			if nbr == cur {
				// zero step: nothing new can come out of this offset
				continue
			}
			if created {
				queue = append(queue, nbr)
			}
			cur.connect(nbr)
		}
	}
}
