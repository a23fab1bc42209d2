package gridgraph

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/spatial/grid"
)

// BoundingBox returns the smallest and largest row and column over cells,
// packed as lo=(minRow, minCol) and hi=(maxRow, maxCol). Both are inclusive.
// Returns ErrEmptyInput when cells is empty.
//
// A point (x, y) lives in cell Row=floor(x), Col=floor(y), so in point
// terms lo.Row..hi.Row is the x range (xmin, xmax) and lo.Col..hi.Col is the
// y range (ymin, ymax).
func BoundingBox(cells []grid.Cell) (lo, hi grid.Cell, err error) {
	if len(cells) == 0 {
		return grid.Cell{}, grid.Cell{}, ErrEmptyInput
	}
	lo, hi = cells[0], cells[0]
	for _, c := range cells[1:] {
		lo, hi = extend(lo, hi, c)
	}

	return lo, hi, nil
}

// BoundingBoxSet is BoundingBox over a set, as returned by FloodFill.
func BoundingBoxSet(cells mapset.Set[grid.Cell]) (lo, hi grid.Cell, err error) {
	if cells.Size() == 0 {
		return grid.Cell{}, grid.Cell{}, ErrEmptyInput
	}
	first := true
	cells.Each(func(c grid.Cell) {
		if first {
			lo, hi, first = c, c, false
			return
		}
		lo, hi = extend(lo, hi, c)
	})

	return lo, hi, nil
}

func extend(lo, hi, c grid.Cell) (grid.Cell, grid.Cell) {
	lo.Row, lo.Col = min(lo.Row, c.Row), min(lo.Col, c.Col)
	hi.Row, hi.Col = max(hi.Row, c.Row), max(hi.Col, c.Col)

	return lo, hi
}
