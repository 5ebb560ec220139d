// SPDX-License-Identifier: MIT

package lattice

import (
	"github.com/katalvlaran/hexwarp/geom"
)

// front is one wave entry: a point and the vector that reached it.
type front struct {
	p *Point
	v geom.Vector
}

// peakMap collects the peak vectors of one wave. Targets keep the order of
// their first insertion; a later write replaces the vector in place.
type peakMap struct {
	order []*Point
	vec   map[int]geom.Vector
}

func (m *peakMap) set(p *Point, v geom.Vector) {
	if _, ok := m.vec[p.id]; !ok {
		m.order = append(m.order, p)
	}
	m.vec[p.id] = v
}

// hookEvent is one deferred hook call. p == nil marks a wave event.
type hookEvent struct {
	p    *Point
	v    geom.Vector
	wave int
	size int
	peak bool
}

// propagator holds the mutable state of one Drag call.
type propagator struct {
	l        *Lattice
	opts     dragOptions
	affected []bool // indexed by Point.id
	seen     []int  // wave stamp for next-wave dedup, indexed by Point.id
	events   []hookEvent
	res      DragResult
}

func newPropagator(l *Lattice, o dragOptions) *propagator {
	return &propagator{
		l:        l,
		opts:     o,
		affected: make([]bool, len(l.points)),
		seen:     make([]int, len(l.points)),
	}
}

// run drives the wave loop until no entry carries a vector of magnitude > 1.
func (pr *propagator) run(reqs []Request) {
	current := make([]front, 0, len(reqs))
	for _, r := range reqs {
		current = append(current, front{p: r.Point, v: r.Vector})
	}

	for wave := 0; ; wave++ {
		current = live(current)
		if len(current) == 0 {
			return
		}
		if pr.opts.maxWaves > 0 && wave >= pr.opts.maxWaves {
			return
		}

		pr.events = append(pr.events, hookEvent{wave: wave, size: len(current)})
		pr.applyDirect(current, wave)
		pr.applyPeaks(current, wave)
		pr.res.Waves++

		current = pr.advance(current, wave)
	}
}

// live drops entries whose vector has decayed to magnitude ≤ 1.
func live(wave []front) []front {
	out := wave[:0]
	for _, f := range wave {
		if f.v.Magnitude() > 1 {
			out = append(out, f)
		}
	}
	return out
}

// applyDirect moves each unaffected wave point by its own vector.
func (pr *propagator) applyDirect(wave []front, n int) {
	for _, f := range wave {
		if pr.affected[f.p.id] {
			continue
		}
		f.p.move(f.v)
		pr.affected[f.p.id] = true
		pr.res.Moved++
		pr.events = append(pr.events, hookEvent{p: f.p, v: f.v, wave: n})
	}
}

// applyPeaks computes the peak vector of every unaffected neighbor of the
// wave from the halved wave vectors, last write winning, then applies them.
func (pr *propagator) applyPeaks(wave []front, n int) {
	m := peakMap{vec: make(map[int]geom.Vector)}
	for _, f := range wave {
		half := f.v.Div(2)
		for _, nbr := range f.p.neighbors {
			if pr.affected[nbr.id] {
				continue
			}
			m.set(nbr, peak(half, nbr, f.p, pr.l.density))
		}
	}

	for _, p := range m.order {
		v := m.vec[p.id]
		p.move(v)
		pr.affected[p.id] = true
		pr.res.Peaked++
		pr.events = append(pr.events, hookEvent{p: p, v: v, wave: n, peak: true})
	}
}

// advance builds the next wave: neighbors of every entry in order, each
// point once, carrying the halved vector of the entry that reached it
// first. Entries whose halved vector equals their vector (components stuck
// at 0 or -1 under floor division) do not spread further.
func (pr *propagator) advance(wave []front, n int) []front {
	stamp := n + 1
	next := make([]front, 0, len(wave)*maxDegree)
	for _, f := range wave {
		half := f.v.Div(2)
		if half == f.v {
			continue
		}
		for _, nbr := range f.p.neighbors {
			if pr.seen[nbr.id] == stamp {
				continue
			}
			pr.seen[nbr.id] = stamp
			next = append(next, front{p: nbr, v: half})
		}
	}
	return next
}

// fire replays the recorded events in order. It runs after the lattice
// lock is released so hooks may call back into the Lattice.
func (pr *propagator) fire() {
	for _, e := range pr.events {
		if e.p == nil {
			pr.opts.onWave(e.wave, e.size)
			continue
		}
		pr.opts.onMove(e.p, e.v, e.wave, e.peak)
	}
}
