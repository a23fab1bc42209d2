package gridgraph

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/spatial/grid"
)

// FloodFill returns the region grown from start over cells that
//   - have the same terrain value as start;
//   - are pathable (pathing value non-zero);
//   - lie within Euclidean maxDistance (in cells) of start;
//   - are not members of cutoff.
//
// The start cell is subject to the same rule, so an unpathable or cut-off
// start yields an empty set. cutoff may be the zero Set.
//
// Behavior:
//  1. Validate grids, start and radius.
//  2. Breadth-first expansion using the configured connectivity.
//
// Returns ErrInvalidShape for nil or mismatched grids, ErrOutOfBounds for a
// start off the grid, ErrInvalidArgument for a negative or NaN radius.
//
// Complexity: O(R×d) time, O(R) memory for R cells in the region.
func FloodFill(
	start grid.Cell,
	terrain, pathing *grid.Grid,
	maxDistance float64,
	cutoff mapset.Set[grid.Cell],
	opts ...Option,
) (mapset.Set[grid.Cell], error) {
	if err := grid.ValidateSameShape([]string{"terrain_grid", "pathing_grid"}, terrain, pathing); err != nil {
		return mapset.Set[grid.Cell]{}, fmt.Errorf("gridgraph: %w", err)
	}
	if !terrain.Contains(start) {
		return mapset.Set[grid.Cell]{}, fmt.Errorf("gridgraph: start %v outside %dx%d: %w",
			start, terrain.Rows(), terrain.Cols(), ErrOutOfBounds)
	}
	if math.IsNaN(maxDistance) || maxDistance < 0 {
		return mapset.Set[grid.Cell]{}, fmt.Errorf("gridgraph: max distance %v: %w", maxDistance, ErrInvalidArgument)
	}

	offsets := gatherOptions(opts).neighborOffsets()
	height := terrain.At(start.Row, start.Col)
	limit2 := maxDistance * maxDistance
	accept := func(c grid.Cell) bool {
		if !terrain.Contains(c) || cutoff.Has(c) {
			return false
		}
		if terrain.At(c.Row, c.Col) != height || pathing.At(c.Row, c.Col) == 0 {
			return false
		}
		dr, dc := float64(c.Row-start.Row), float64(c.Col-start.Col)

		return dr*dr+dc*dc <= limit2
	}

	filled := mapset.New[grid.Cell]()
	if !accept(start) {
		return filled, nil
	}
	filled.Put(start)
	queue := []grid.Cell{start}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range offsets {
			v := u.Add(d[0], d[1])
			if filled.Has(v) || !accept(v) {
				continue
			}
			filled.Put(v)
			queue = append(queue, v)
		}
	}

	return filled, nil
}
