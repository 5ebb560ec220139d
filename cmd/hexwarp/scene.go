// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/katalvlaran/hexwarp/config"
	"github.com/katalvlaran/hexwarp/geom"
	"github.com/katalvlaran/hexwarp/lattice"
	"github.com/katalvlaran/hexwarp/render"
)

// renderScene builds, shakes and drags one lattice and saves its picture.
func renderScene(ctx context.Context, scene config.Scene, outDir string, log *slog.Logger) error {
	log = log.With("scene", scene.Name)

	opts, err := scene.BuildOptions()
	if err != nil {
		return err
	}
	opts = append(opts, lattice.WithLogger(log))

	l, err := lattice.Build(scene.Width, scene.Height, scene.Density, opts...)
	if err != nil {
		return fmt.Errorf("building lattice: %w", err)
	}
	log.Info("lattice built", "layout", l.Layout(), "points", l.Len(), "cells", len(l.Cells()))

	sh, err := scene.NewShake()
	if err != nil {
		return fmt.Errorf("creating shake: %w", err)
	}
	sh.Apply(l)
	log.Debug("shake applied", "kind", scene.Shake.Kind)

	for i, d := range scene.Drags {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := l.Nearest(d.X, d.Y)
		res := l.DragSingle(start, geom.Vec(d.DX, d.DY, d.DZ), lattice.WithOnWave(func(wave, size int) {
			log.Debug("wave", "drag", i, "wave", wave, "size", size)
		}))
		log.Info("drag applied",
			"drag", i,
			"start", start,
			"waves", res.Waves,
			"moved", res.Moved,
			"peaked", res.Peaked,
		)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	c, err := render.NewCanvasFor(l)
	if err != nil {
		return err
	}
	style := render.DefaultStyle()
	render.Draw(c, l, style)
	render.Caption(c, scene.Caption, style.Text)

	path := filepath.Join(outDir, scene.Output)
	if err := render.SavePNG(path, c); err != nil {
		return err
	}
	log.Info("image saved", "path", path)
	return nil
}
