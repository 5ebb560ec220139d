// SPDX-License-Identifier: MIT

// Package render rasterizes a lattice into an RGBA image and writes it as
// PNG.
//
// A Canvas is a plain *image.RGBA that also satisfies drivers.Displayer,
// so tinyfont can draw captions straight onto it. Lattice coordinates map
// 1:1 to pixels, shifted by one density so points that sit in the
// construction margin (or were dragged past the frame) stay visible.
package render
