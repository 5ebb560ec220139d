// SPDX-License-Identifier: MIT

package lattice

import (
	"github.com/katalvlaran/hexwarp/geom"
)

// Request is one start point with its own initial vector.
type Request struct {
	Point  *Point
	Vector geom.Vector
}

// DragResult summarizes one Drag call.
type DragResult struct {
	// Waves is the number of wave steps taken, including trailing steps
	// whose targets were all already affected.
	Waves int
	// Moved counts points that received a wave vector directly.
	// Locked points are counted: they absorb the vector without moving.
	Moved int
	// Peaked counts points that received a peak vector.
	Peaked int
}

// Touched returns Moved + Peaked, the size of the affected set.
func (r DragResult) Touched() int { return r.Moved + r.Peaked }

// DragOption customizes a single Drag call.
type DragOption func(*dragOptions)

// dragOptions holds hooks and limits for the propagator.
type dragOptions struct {
	// onWave receives every wave step with the number of
	// live wave entries.
	onWave func(wave, size int)

	// OnMove fires for every point entering the affected set, with the
	// vector it received and whether that vector was a peak.
	onMove func(p *Point, v geom.Vector, wave int, peak bool)

	// maxWaves > 0 caps the number of waves; 0 means no cap.
	maxWaves int
}

func defaultDragOptions() dragOptions {
	return dragOptions{
		onWave: func(int, int) {},
		onMove: func(*Point, geom.Vector, int, bool) {},
	}
}

// WithOnWave registers a hook called once per wave step.
//
// Hooks fire in wave order after propagation finishes and the lattice lock
// is released, so they may read or shift the Lattice.
func WithOnWave(fn func(wave, size int)) DragOption {
	return func(o *dragOptions) {
		if fn != nil {
			o.onWave = fn
		}
	}
}

// WithOnMove registers a hook called for every point entering the
// affected set. Like WithOnWave it fires after propagation, so p already
// holds its final position for this call.
func WithOnMove(fn func(p *Point, v geom.Vector, wave int, peak bool)) DragOption {
	return func(o *dragOptions) {
		if fn != nil {
			o.onMove = fn
		}
	}
}

// WithMaxWaves caps propagation depth. Non-positive values keep the
// natural, decay-bounded depth.
func WithMaxWaves(n int) DragOption {
	return func(o *dragOptions) {
		if n > 0 {
			o.maxWaves = n
		}
	}
}

// Drag moves every start point by v and propagates the halved vector
// outward. No point is displaced more than once per call.
//
// Implementation:
//   - Stage 1: wave 0 is the start points, each carrying v.
//   - Stage 2: per wave, apply the vector to unaffected wave points, then
//     apply peak vectors (from the halved vector) to unaffected neighbors.
//   - Stage 3: the next wave is the deduplicated neighbor union, carrying
//     the halved vector. Stop when the magnitude drops to ≤ 1 or floor
//     division stops changing the vector.
//
// Dragging a locked point or dragging by a zero vector is legal. It panics
// when a start point belongs to another Lattice.
//
// Complexity: O(W·V) time, O(V) memory.
func (l *Lattice) Drag(starts []*Point, v geom.Vector, opts ...DragOption) DragResult {
	reqs := make([]Request, len(starts))
	for i, p := range starts {
		reqs[i] = Request{Point: p, Vector: v}
	}
	return l.DragEach(reqs, opts...)
}

// DragSingle is Drag with one start point.
func (l *Lattice) DragSingle(p *Point, v geom.Vector, opts ...DragOption) DragResult {
	return l.DragEach([]Request{{Point: p, Vector: v}}, opts...)
}

// DragEach runs one propagation where every start point carries its own
// vector. Fronts advance together; each neighbor inherits the vector of the
// first wave entry that reaches it. When two fronts target the same
// neighbor in the same wave, the later entry's peak wins.
func (l *Lattice) DragEach(reqs []Request, opts ...DragOption) DragResult {
	o := defaultDragOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pr := l.propagate(reqs, o)
	pr.fire()
	return pr.res
}

// propagate runs the wave loop under the write lock; hooks are only
// recorded here.
func (l *Lattice) propagate(reqs []Request, o dragOptions) *propagator {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, r := range reqs {
		l.mustOwn(r.Point)
	}

	pr := newPropagator(l, o)
	pr.run(reqs)
	return pr
}
