// SPDX-License-Identifier: MIT

package shake_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexwarp/geom"
	"github.com/katalvlaran/hexwarp/lattice"
	"github.com/katalvlaran/hexwarp/shake"
)

type pos struct{ x, y, z int }

func snapshot(l *lattice.Lattice) []pos {
	out := make([]pos, 0, l.Len())
	for _, p := range l.Points() {
		x, y, z := p.Position()
		out = append(out, pos{x, y, z})
	}
	return out
}

func mustBuild(t *testing.T, layout lattice.Layout) *lattice.Lattice {
	t.Helper()
	l, err := lattice.Build(120, 100, 12, lattice.WithLayout(layout))
	require.NoError(t, err)
	return l
}

func TestParseKind(t *testing.T) {
	k, err := shake.ParseKind(" Seed_Drag ")
	require.NoError(t, err)
	assert.Equal(t, shake.KindSeedDrag, k)

	k, err = shake.ParseKind("")
	require.NoError(t, err)
	assert.Equal(t, shake.KindNone, k)

	_, err = shake.ParseKind("tremor")
	assert.ErrorIs(t, err, shake.ErrUnknownKind)
}

func TestNew(t *testing.T) {
	s, err := shake.New(shake.KindNone, shake.Params{})
	require.NoError(t, err)
	assert.IsType(t, shake.Nop{}, s)

	s, err = shake.New(shake.KindSeedNoise, shake.Params{Seed: "123"})
	require.NoError(t, err)
	assert.IsType(t, &shake.SeedNoise{}, s)

	s, err = shake.New(shake.KindRandomDrag, shake.Params{MaxStrength: 3})
	require.NoError(t, err)
	assert.IsType(t, &shake.RandomDrag{}, s)

	_, err = shake.New(shake.KindSeedDrag, shake.Params{})
	assert.ErrorIs(t, err, shake.ErrEmptySeed)

	_, err = shake.New(shake.KindRandomNoise, shake.Params{MaxStrength: -1})
	assert.ErrorIs(t, err, shake.ErrBadStrength)

	_, err = shake.New("quake", shake.Params{})
	assert.ErrorIs(t, err, shake.ErrUnknownKind)
}

func TestNop(t *testing.T) {
	l := mustBuild(t, lattice.LayoutGraph)
	before := snapshot(l)
	shake.Nop{}.Apply(l)
	assert.Equal(t, before, snapshot(l))
}

func TestRandomNoise_Bounded(t *testing.T) {
	const limit = 3
	l := mustBuild(t, lattice.LayoutCells)
	before := snapshot(l)

	shake.NewRandomNoise(limit, rand.New(rand.NewPCG(1, 2))).Apply(l)

	changed := false
	for i, p := range l.Points() {
		x, y, z := p.Position()
		b := before[i]
		if p.IsLocked() {
			assert.Equal(t, b, pos{x, y, z})
			continue
		}
		assert.LessOrEqual(t, geom.Abs(x-b.x), limit)
		assert.LessOrEqual(t, geom.Abs(y-b.y), limit)
		assert.Equal(t, b.z, z)
		if x != b.x || y != b.y {
			changed = true
		}
	}
	assert.True(t, changed)
}

func TestRandomShakes_Reproducible(t *testing.T) {
	for _, kind := range []shake.Kind{shake.KindRandomNoise, shake.KindRandomDrag} {
		t.Run(string(kind), func(t *testing.T) {
			run := func() []pos {
				l := mustBuild(t, lattice.LayoutGraph)
				s, err := shake.New(kind, shake.Params{MaxStrength: 8, RandSeed: 42})
				require.NoError(t, err)
				s.Apply(l)
				return snapshot(l)
			}
			assert.Equal(t, run(), run())
		})
	}
}

func TestSeedNoise_Offsets(t *testing.T) {
	l, err := lattice.Build(5, 5, 40)
	require.NoError(t, err)
	require.Equal(t, 7, l.Len())
	before := snapshot(l)

	// every point takes (+4, -3): pairs (9,2) and (7,1)
	s, err := shake.NewSeed("9271")
	require.NoError(t, err)
	(&shake.SeedNoise{Seed: s}).Apply(l)

	for i, p := range l.Points() {
		x, y, z := p.Position()
		assert.Equal(t, pos{before[i].x + 4, before[i].y - 3, 0}, pos{x, y, z})
	}
}

func TestSeedDrag_MatchesManualDrags(t *testing.T) {
	const seed = "1357943016922984648920275620"

	got := mustBuild(t, lattice.LayoutCells)
	s, err := shake.NewSeed(seed)
	require.NoError(t, err)
	(&shake.SeedDrag{Seed: s}).Apply(got)

	want := mustBuild(t, lattice.LayoutCells)
	ref, err := shake.NewSeed(seed)
	require.NoError(t, err)
	for _, p := range want.Anchors() {
		x, y, z := ref.Signed(), ref.Signed(), ref.Signed()
		want.DragSingle(p, geom.Vec(x, y, z))
	}

	assert.Equal(t, snapshot(want), snapshot(got))
}
