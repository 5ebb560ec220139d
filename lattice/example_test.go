// SPDX-License-Identifier: MIT

package lattice_test

import (
	"fmt"

	"github.com/katalvlaran/hexwarp/geom"
	"github.com/katalvlaran/hexwarp/lattice"
)

// ExampleLattice_DragSingle builds the smallest interesting lattice (the
// seed and its six neighbors) and lifts the center by 50.
//
// The center takes the full vector. Each neighbor takes z = 25 and is
// pulled back toward the center: straight along y when it sits directly
// above or below, along x (and half along y) when diagonal.
func ExampleLattice_DragSingle() {
	l, err := lattice.Build(5, 5, 40)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	center := l.Nearest(l.Width()/2, l.Height()/2)
	res := l.DragSingle(center, geom.Vec(0, 0, 50))

	fmt.Printf("waves=%d moved=%d peaked=%d\n", res.Waves, res.Moved, res.Peaked)
	for _, p := range l.Points() {
		fmt.Println(p)
	}
	// Output:
	// waves=5 moved=1 peaked=6
	// <Point: 2,2,50>
	// <Point: 2,11,25>
	// <Point: 6,7,25>
	// <Point: 6,-3,25>
	// <Point: 2,-7,25>
	// <Point: -2,-3,25>
	// <Point: -2,7,25>
}

// ExampleBuild_cells shows the cell layout and its locked frame.
func ExampleBuild_cells() {
	l, err := lattice.Build(100, 80, 10, lattice.WithLayout(lattice.LayoutCells))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	locked := 0
	for _, p := range l.Points() {
		if p.IsLocked() {
			locked++
		}
	}
	fmt.Println(l.Layout(), len(l.Cells()), locked > 0)
	// Output:
	// cells 49 true
}
