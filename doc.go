// SPDX-License-Identifier: MIT

// Package hexwarp builds hexagonal point lattices and deforms them with
// decaying drags: pull one point and the pull spreads outward in waves,
// halving each step, with neighbors bulging back toward the source.
//
// 🚀 What is in the box?
//
//	• Lattice construction: breadth-first graph growth or a honeycomb of cells
//	• Drag propagation: wave walker with peak bias, at-most-once moves, hooks
//	• Shakes: random or digit-seeded noise and drags over the whole lattice
//	• Rendering: PNG output with cell tinting by depth and TomThumb captions
//	• CLI: YAML scene files rendered in parallel
//
// Under the hood the module is organized as:
//
//	geom/          integer Vector, floor division, clamp helpers
//	lattice/       Point, Cell, Lattice, Build, Drag
//	shake/         whole-lattice perturbations
//	render/        Canvas, Draw, Caption, PNG
//	config/        YAML scene configuration
//	cmd/hexwarp/   command-line driver
//
// Quick start:
//
//	l, _ := lattice.Build(400, 300, 20)
//	l.DragSingle(l.Nearest(200, 150), geom.Vec(0, 0, 50))
//	c, _ := render.NewCanvasFor(l)
//	render.Draw(c, l, render.DefaultStyle())
//	_ = render.SavePNG("ripple.png", c)
package hexwarp
