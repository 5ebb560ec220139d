// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"io"
	"log/slog"
)

// Option configures Build. An invalid Option is recorded and surfaced as
// ErrOptionViolation when Build runs; options never panic.
type Option func(*buildOptions)

// buildOptions aggregates the knobs read by Build.
type buildOptions struct {
	layout       Layout
	lockBoundary bool
	logger       *slog.Logger

	// first invalid option, reported by Build
	err error
}

// defaultBuildOptions returns LayoutGraph, no boundary lock in graph mode,
// and a logger that discards everything.
func defaultBuildOptions() buildOptions {
	return buildOptions{
		layout: LayoutGraph,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLayout selects the construction strategy.
func WithLayout(layout Layout) Option {
	return func(o *buildOptions) {
		if _, ok := populators[layout]; !ok {
			o.fail(fmt.Errorf("WithLayout(%v): %w", layout, ErrOptionViolation))
			return
		}
		o.layout = layout
	}
}

// WithBoundaryLock locks every point on or outside the nominal rectangle.
// LayoutCells always locks its frame; this option extends the behavior to
// LayoutGraph.
func WithBoundaryLock() Option {
	return func(o *buildOptions) { o.lockBoundary = true }
}

// WithLogger routes construction diagnostics to lg at debug level.
func WithLogger(lg *slog.Logger) Option {
	return func(o *buildOptions) {
		if lg == nil {
			o.fail(fmt.Errorf("WithLogger(nil): %w", ErrOptionViolation))
			return
		}
		o.logger = lg
	}
}

// fail keeps the first recorded option error.
func (o *buildOptions) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}
