package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/spatial/grid"
	"github.com/katalvlaran/spatial/gridgraph"
)

func TestBoundingBox(t *testing.T) {
	cells := []grid.Cell{{Row: 1, Col: 2}, {Row: 3, Col: 4}, {Row: 2, Col: 3}}

	lo, hi, err := gridgraph.BoundingBox(cells)
	require.NoError(t, err)
	assert.Equal(t, grid.Cell{Row: 1, Col: 2}, lo)
	assert.Equal(t, grid.Cell{Row: 3, Col: 4}, hi)

	set := mapset.New[grid.Cell]()
	for _, c := range cells {
		set.Put(c)
	}
	sLo, sHi, err := gridgraph.BoundingBoxSet(set)
	require.NoError(t, err)
	assert.Equal(t, lo, sLo)
	assert.Equal(t, hi, sHi)
}

func TestBoundingBox_AxesIndependent(t *testing.T) {
	lo, hi, err := gridgraph.BoundingBox([]grid.Cell{{Row: 0, Col: 9}, {Row: 5, Col: 1}})
	require.NoError(t, err)
	assert.Equal(t, grid.Cell{Row: 0, Col: 1}, lo)
	assert.Equal(t, grid.Cell{Row: 5, Col: 9}, hi)
}

func TestBoundingBox_PointAxes(t *testing.T) {
	// x spans 2.5..7.9 and y spans 0.2..4.1
	pts := []grid.Point{grid.Pt(2.5, 4.1), grid.Pt(7.9, 0.2), grid.Pt(4, 3)}
	cells := make([]grid.Cell, 0, len(pts))
	for _, p := range pts {
		cells = append(cells, p.Floor())
	}

	lo, hi, err := gridgraph.BoundingBox(cells)
	require.NoError(t, err)
	assert.Equal(t, [2]int{2, 7}, [2]int{lo.Row, hi.Row}, "x range")
	assert.Equal(t, [2]int{0, 4}, [2]int{lo.Col, hi.Col}, "y range")
}

func TestBoundingBox_Empty(t *testing.T) {
	_, _, err := gridgraph.BoundingBox(nil)
	require.ErrorIs(t, err, gridgraph.ErrEmptyInput)

	_, _, err = gridgraph.BoundingBoxSet(mapset.New[grid.Cell]())
	require.ErrorIs(t, err, gridgraph.ErrEmptyInput)
}
