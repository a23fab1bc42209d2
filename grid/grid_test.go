// SPDX-License-Identifier: MIT
// Package grid_test contains unit tests for Grid construction and access.
package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spatial/grid"
)

func TestNew_InvalidShape(t *testing.T) {
	t.Parallel()

	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		_, err := grid.New(dims[0], dims[1])
		require.ErrorIs(t, err, grid.ErrInvalidShape, "dims=%v", dims)
	}
}

func TestFrom2D_MixedRepresentations(t *testing.T) {
	t.Parallel()

	u8 := grid.MustFrom2D([][]uint8{{0, 1}, {2, 3}})
	f32 := grid.MustFrom2D([][]float32{{0, 1}, {2, 3}})
	i64 := grid.MustFrom2D([][]int64{{0, 1}, {2, 3}})

	assert.Equal(t, u8.Raw(), f32.Raw())
	assert.Equal(t, u8.Raw(), i64.Raw())
	assert.Equal(t, 3.0, u8.At(1, 1))
}

func TestFrom2D_RejectsEmptyAndJagged(t *testing.T) {
	t.Parallel()

	_, err := grid.From2D[float64](nil)
	require.ErrorIs(t, err, grid.ErrInvalidShape)

	_, err = grid.From2D([][]float64{{}})
	require.ErrorIs(t, err, grid.ErrInvalidShape)

	_, err = grid.From2D([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, grid.ErrInvalidShape)
}

func TestFrom2D_DeepCopies(t *testing.T) {
	t.Parallel()

	src := [][]float64{{1, 2}, {3, 4}}
	g := grid.MustFrom2D(src)
	src[0][0] = 99

	assert.Equal(t, 1.0, g.At(0, 0))
}

func TestGrid_IndexCoordinateRoundTrip(t *testing.T) {
	t.Parallel()

	g, err := grid.New(3, 5)
	require.NoError(t, err)
	for r := 0; r < 3; r++ {
		for c := 0; c < 5; c++ {
			assert.Equal(t, grid.Cell{Row: r, Col: c}, g.Coordinate(g.Index(r, c)))
		}
	}
}

func TestGrid_SetLookupAndBounds(t *testing.T) {
	t.Parallel()

	g, err := grid.New(2, 2)
	require.NoError(t, err)

	require.NoError(t, g.Set(1, 0, 7))
	v, ok := g.Lookup(1, 0)
	assert.True(t, ok)
	assert.Equal(t, 7.0, v)

	_, ok = g.Lookup(2, 0)
	assert.False(t, ok)
	require.ErrorIs(t, g.Set(0, -1, 1), grid.ErrOutOfBounds)
	assert.Panics(t, func() { g.At(-1, 0) })
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	g, err := grid.Filled(2, 3, math.Inf(1))
	require.NoError(t, err)
	cp := g.Clone()
	require.NoError(t, cp.Set(0, 0, 1))

	assert.True(t, math.IsInf(g.At(0, 0), 1))
	assert.Equal(t, 1.0, cp.At(0, 0))
	assert.Equal(t, [][]float64{{1, math.Inf(1), math.Inf(1)}, {math.Inf(1), math.Inf(1), math.Inf(1)}}, cp.ToSlices())
}

func TestGrid_String(t *testing.T) {
	t.Parallel()

	g := grid.MustFrom2D([][]float64{{1, math.Inf(1)}, {0.5, 2}})
	assert.Equal(t, "[1, inf]\n[0.5, 2]\n", g.String())
}

func TestPoint_FloorAndCellsOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, grid.Cell{Row: 0, Col: 2}, grid.Pt(0.1, 2).Floor())
	assert.Equal(t, grid.Cell{Row: -1, Col: 3}, grid.Pt(-0.5, 3.99).Floor())
	assert.Equal(t,
		[]grid.Cell{{Row: 1, Col: 4}, {Row: 0, Col: 0}},
		grid.CellsOf([][2]float64{{1.7, 4.2}, {0, 0}}))
}

func TestNeighbors8_Order(t *testing.T) {
	t.Parallel()

	got := grid.Neighbors8(grid.Cell{Row: 5, Col: 5})
	want := []grid.Cell{
		{Row: 4, Col: 5}, {Row: 4, Col: 6}, {Row: 5, Col: 6}, {Row: 6, Col: 6},
		{Row: 6, Col: 5}, {Row: 6, Col: 4}, {Row: 5, Col: 4}, {Row: 4, Col: 4},
	}
	assert.Equal(t, want, got)
}
