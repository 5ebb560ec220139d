// SPDX-License-Identifier: MIT

package shake

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/katalvlaran/hexwarp/geom"
	"github.com/katalvlaran/hexwarp/lattice"
)

// Shake deforms every point or anchor of a lattice.
type Shake interface {
	Apply(l *lattice.Lattice)
}

// Kind names a Shake implementation in configuration.
type Kind string

const (
	KindNone        Kind = "none"
	KindRandomNoise Kind = "random_noise"
	KindRandomDrag  Kind = "random_drag"
	KindSeedNoise   Kind = "seed_noise"
	KindSeedDrag    Kind = "seed_drag"
)

// ParseKind accepts the Kind constants case-insensitively; "" means none.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case "":
		return KindNone, nil
	case KindNone, KindRandomNoise, KindRandomDrag, KindSeedNoise, KindSeedDrag:
		return k, nil
	}
	return KindNone, fmt.Errorf("%s: %q: %w", methodParseKind, s, ErrUnknownKind)
}

// Params carries everything New may need. Unused fields are ignored.
type Params struct {
	MaxStrength int
	Seed        string
	RandSeed    uint64
}

// New returns the Shake for kind. KindNone yields a no-op.
func New(kind Kind, p Params) (Shake, error) {
	switch kind {
	case KindNone, "":
		return Nop{}, nil
	case KindRandomNoise, KindRandomDrag:
		if p.MaxStrength < 0 {
			return nil, fmt.Errorf("%s: %d: %w", methodNew, p.MaxStrength, ErrBadStrength)
		}
		rng := rand.New(rand.NewPCG(p.RandSeed, p.RandSeed))
		if kind == KindRandomNoise {
			return NewRandomNoise(p.MaxStrength, rng), nil
		}
		return NewRandomDrag(p.MaxStrength, rng), nil
	case KindSeedNoise, KindSeedDrag:
		s, err := NewSeed(p.Seed)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodNew, err)
		}
		if kind == KindSeedNoise {
			return &SeedNoise{Seed: s}, nil
		}
		return &SeedDrag{Seed: s}, nil
	}
	return nil, fmt.Errorf("%s: %q: %w", methodNew, kind, ErrUnknownKind)
}

// Nop leaves the lattice untouched.
type Nop struct{}

// Apply does nothing.
func (Nop) Apply(*lattice.Lattice) {}

// RandomNoise shifts every point by (rx, ry, 0), components uniform in
// [-MaxStrength, MaxStrength].
type RandomNoise struct {
	MaxStrength int
	rng         *rand.Rand
}

// NewRandomNoise binds a noise shake to rng.
func NewRandomNoise(maxStrength int, rng *rand.Rand) *RandomNoise {
	return &RandomNoise{MaxStrength: maxStrength, rng: rng}
}

// Apply shifts every point once.
func (n *RandomNoise) Apply(l *lattice.Lattice) {
	for _, p := range l.Points() {
		l.Shift(p, geom.Vec(uniform(n.rng, n.MaxStrength), uniform(n.rng, n.MaxStrength), 0))
	}
}

// RandomDrag drags every anchor by (rx, ry, rz), components uniform in
// [-MaxStrength, MaxStrength].
type RandomDrag struct {
	MaxStrength int
	rng         *rand.Rand
}

// NewRandomDrag binds a drag shake to rng.
func NewRandomDrag(maxStrength int, rng *rand.Rand) *RandomDrag {
	return &RandomDrag{MaxStrength: maxStrength, rng: rng}
}

// Apply runs one DragSingle per anchor, in anchor order.
func (d *RandomDrag) Apply(l *lattice.Lattice) {
	for _, p := range l.Anchors() {
		v := geom.Vec(
			uniform(d.rng, d.MaxStrength),
			uniform(d.rng, d.MaxStrength),
			uniform(d.rng, d.MaxStrength),
		)
		l.DragSingle(p, v)
	}
}

// SeedNoise is RandomNoise with strengths drawn from a Seed.
type SeedNoise struct {
	Seed *Seed
}

// Apply shifts every point once by (Signed, Signed, 0).
func (n *SeedNoise) Apply(l *lattice.Lattice) {
	for _, p := range l.Points() {
		x := n.Seed.Signed()
		y := n.Seed.Signed()
		l.Shift(p, geom.Vec(x, y, 0))
	}
}

// SeedDrag is RandomDrag with strengths drawn from a Seed.
type SeedDrag struct {
	Seed *Seed
}

// Apply drags every anchor by (Signed, Signed, Signed).
func (d *SeedDrag) Apply(l *lattice.Lattice) {
	for _, p := range l.Anchors() {
		x := d.Seed.Signed()
		y := d.Seed.Signed()
		z := d.Seed.Signed()
		l.DragSingle(p, geom.Vec(x, y, z))
	}
}

// uniform returns an int in [-limit, limit].
func uniform(rng *rand.Rand, limit int) int {
	if limit <= 0 {
		return 0
	}
	return rng.IntN(2*limit+1) - limit
}
