// SPDX-License-Identifier: MIT

package lattice_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexwarp/lattice"
)

// TestBuild_Validation verifies that degenerate parameters and bad options
// are rejected with the matching sentinel.
func TestBuild_Validation(t *testing.T) {
	cases := []struct {
		name                   string
		width, height, density int
		opts                   []lattice.Option
		want                   error
	}{
		{"zero width", 0, 10, 5, nil, lattice.ErrBadDimension},
		{"negative height", 10, -1, 5, nil, lattice.ErrBadDimension},
		{"zero density", 10, 10, 0, nil, lattice.ErrBadDensity},
		{"negative density", 10, 10, -3, nil, lattice.ErrBadDensity},
		{"unknown layout", 10, 10, 5, []lattice.Option{lattice.WithLayout(lattice.Layout(42))}, lattice.ErrOptionViolation},
		{"nil logger", 10, 10, 5, []lattice.Option{lattice.WithLogger(nil)}, lattice.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := lattice.Build(tc.width, tc.height, tc.density, tc.opts...)
			assert.Nil(t, l)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestBuild_GraphSmall covers the 5×5 lattice with spacing 40: the seed and
// its six neighbors are the only points inside the construction box.
func TestBuild_GraphSmall(t *testing.T) {
	l, err := lattice.Build(5, 5, 40)
	require.NoError(t, err)

	assert.Equal(t, 5, l.Width())
	assert.Equal(t, 5, l.Height())
	assert.Equal(t, 40, l.Density())
	assert.Equal(t, lattice.LayoutGraph, l.Layout())
	require.Equal(t, 7, l.Len())

	pts := l.Points()
	seed := pts[0]
	x, y, z := seed.Position()
	assert.Equal(t, [3]int{2, 2, 0}, [3]int{x, y, z})
	assert.Equal(t, 6, seed.Degree())
	for _, p := range pts[1:] {
		assert.Equal(t, 3, p.Degree(), "ring point %v", p)
		assert.False(t, p.IsLocked())
	}
	assert.Nil(t, l.Cells())
	assert.Len(t, l.Anchors(), 7)
}

// TestBuild_GraphInvariants checks deduplication, the degree bound and
// symmetric adjacency on several sizes, odd spacings included.
func TestBuild_GraphInvariants(t *testing.T) {
	sizes := []struct{ w, h, d int }{
		{100, 100, 10},
		{120, 80, 7},
		{64, 200, 9},
		{30, 30, 1},
		{300, 150, 25},
	}
	for _, s := range sizes {
		l, err := lattice.Build(s.w, s.h, s.d)
		require.NoError(t, err)
		assertInvariants(t, l)

		// every point is reachable from the seed
		reach := distances(l, l.Points()[0])
		assert.Len(t, reach, l.Len())
	}
}

// TestBuild_GraphInteriorDegree verifies that points far from the margin
// have all six neighbors.
func TestBuild_GraphInteriorDegree(t *testing.T) {
	const d = 11
	l, err := lattice.Build(300, 300, d)
	require.NoError(t, err)

	interior := 0
	for _, p := range l.Points() {
		x, y, _ := p.Position()
		if x > 2*d && x < 300-2*d && y > 2*d && y < 300-2*d {
			interior++
			assert.Equal(t, 6, p.Degree(), "interior %v", p)
		}
	}
	assert.Positive(t, interior)
}

// TestBuild_GraphBoundaryLock locks the frame in graph layout on request.
func TestBuild_GraphBoundaryLock(t *testing.T) {
	l, err := lattice.Build(200, 160, 20, lattice.WithBoundaryLock())
	require.NoError(t, err)

	locked := 0
	for _, p := range l.Points() {
		x, y, _ := p.Position()
		edge := x <= 0 || x >= 200 || y <= 0 || y >= 160
		assert.Equal(t, edge, p.IsLocked(), "%v", p)
		if edge {
			locked++
		}
	}
	assert.Positive(t, locked)
}

// TestBuild_Cells checks tiling, vertex sharing, boundary locking and cell
// connections of the cell layout.
func TestBuild_Cells(t *testing.T) {
	// radius 10: a=9, h=5, column step 18, row step 15 → 7×7 cells
	l, err := lattice.Build(100, 80, 10, lattice.WithLayout(lattice.LayoutCells))
	require.NoError(t, err)
	assertInvariants(t, l)

	cells := l.Cells()
	require.Len(t, cells, 49)
	assert.Len(t, l.Anchors(), 49)

	// vertex (9,5) is shared by cell (0,0), cell (18,0) and cell (9,15)
	shared, ok := l.At(9, 5)
	require.True(t, ok)
	owners := 0
	for _, c := range cells {
		for _, v := range c.Vertices() {
			if v == shared {
				owners++
			}
		}
	}
	assert.Equal(t, 3, owners)
	assert.Equal(t, 6, shared.Degree())

	for _, c := range cells {
		center := c.Center()
		assert.Equal(t, 6, center.Degree())
		assert.LessOrEqual(t, len(c.Neighbors()), 6)

		x, y, _ := center.Position()
		assert.Equal(t, x <= 0 || x >= 100 || y <= 0 || y >= 80, center.IsLocked(), "%v", center)
	}

	// an interior cell sees six adjacent cells
	inner, ok := l.At(36, 30)
	require.True(t, ok)
	for _, c := range cells {
		if c.Center() == inner {
			assert.Len(t, c.Neighbors(), 6)
			assert.False(t, inner.IsLocked())
		}
	}
}

// TestBuild_Logger checks that construction statistics reach the logger.
func TestBuild_Logger(t *testing.T) {
	var buf bytes.Buffer
	lg := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := lattice.Build(50, 50, 10, lattice.WithLogger(lg))
	require.NoError(t, err)
	out := buf.String()
	assert.True(t, strings.Contains(out, "lattice built"), out)
	assert.Contains(t, out, "layout=graph")
}

// TestParseLayout covers names, case folding and the empty default.
func TestParseLayout(t *testing.T) {
	got, err := lattice.ParseLayout("Cells")
	require.NoError(t, err)
	assert.Equal(t, lattice.LayoutCells, got)

	got, err = lattice.ParseLayout("")
	require.NoError(t, err)
	assert.Equal(t, lattice.LayoutGraph, got)

	_, err = lattice.ParseLayout("triangles")
	assert.ErrorIs(t, err, lattice.ErrUnknownLayout)

	assert.Equal(t, "graph", lattice.LayoutGraph.String())
	assert.Equal(t, "Layout(7)", lattice.Layout(7).String())
}

// TestLattice_Lookup covers At, Contains and Nearest.
func TestLattice_Lookup(t *testing.T) {
	l, err := lattice.Build(5, 5, 40)
	require.NoError(t, err)
	other, err := lattice.Build(5, 5, 40)
	require.NoError(t, err)

	p, ok := l.At(37, 22)
	require.True(t, ok)
	assert.True(t, l.Contains(p))
	assert.False(t, other.Contains(p))
	assert.False(t, l.Contains(nil))

	_, ok = l.At(0, 0)
	assert.False(t, ok)

	assert.Equal(t, l.Points()[0], l.Nearest(3, 3))
	assert.Equal(t, p, l.Nearest(30, 20))
}

// assertInvariants checks the structural guarantees every lattice keeps.
func assertInvariants(t *testing.T, l *lattice.Lattice) {
	t.Helper()

	seen := make(map[[2]int]*lattice.Point, l.Len())
	for i, p := range l.Points() {
		assert.Equal(t, i, p.ID())
		x, y, _ := p.Position()
		k := [2]int{x, y}
		if prev, dup := seen[k]; dup {
			t.Fatalf("duplicate position %v: %v and %v", k, prev, p)
		}
		seen[k] = p

		nbrs := p.Neighbors()
		assert.LessOrEqual(t, len(nbrs), 6, "%v", p)
		for _, n := range nbrs {
			assert.True(t, l.Contains(n))
			assert.NotSame(t, p, n)
			assert.Contains(t, n.Neighbors(), p, "asymmetric edge %v→%v", p, n)
		}
	}
}

// distances runs a plain BFS over the adjacency and returns hop counts.
func distances(l *lattice.Lattice, from *lattice.Point) map[*lattice.Point]int {
	dist := map[*lattice.Point]int{from: 0}
	queue := []*lattice.Point{from}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range u.Neighbors() {
			if _, ok := dist[v]; !ok {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return dist
}

func TestLattice_CellsNilInGraphLayout(t *testing.T) {
	l, err := lattice.Build(50, 50, 10)
	require.NoError(t, err)
	assert.Nil(t, l.Cells())

	c, err := lattice.Build(50, 50, 10, lattice.WithLayout(lattice.LayoutCells))
	require.NoError(t, err)
	assert.NotNil(t, c.Cells())
}
