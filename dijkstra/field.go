package dijkstra

import (
	"math"

	"github.com/katalvlaran/spatial/grid"
)

// Field is the output of Build: the distance from every cell to its nearest
// target, plus the predecessor each cell was reached from. It is immutable
// and safe for concurrent reads.
type Field struct {
	rows, cols int
	dist       []float64
	prev       []int
}

// Rows returns the number of rows of the source cost grid.
func (f *Field) Rows() int { return f.rows }

// Cols returns the number of columns of the source cost grid.
func (f *Field) Cols() int { return f.cols }

// Distance returns the distance at (r, c), or +Inf outside the grid.
func (f *Field) Distance(r, c int) float64 {
	if r < 0 || r >= f.rows || c < 0 || c >= f.cols {
		return math.Inf(1)
	}

	return f.dist[r*f.cols+c]
}

// DistanceAt returns the distance of the cell containing p.
func (f *Field) DistanceAt(p grid.Point) float64 {
	c := p.Floor()

	return f.Distance(c.Row, c.Col)
}

// Reachable reports whether (r, c) has a finite distance.
func (f *Field) Reachable(r, c int) bool {
	return !math.IsInf(f.Distance(r, c), 1)
}

// Predecessor returns the neighbour (r, c) was reached from. ok is false for
// targets, unreachable cells and cells outside the grid.
func (f *Field) Predecessor(r, c int) (grid.Cell, bool) {
	if r < 0 || r >= f.rows || c < 0 || c >= f.cols {
		return grid.Cell{}, false
	}
	p := f.prev[r*f.cols+c]
	if p == noPred {
		return grid.Cell{}, false
	}

	return grid.Cell{Row: p / f.cols, Col: p % f.cols}, true
}

// Grid returns a copy of the distances. The caller owns it.
func (f *Field) Grid() *grid.Grid {
	g, err := grid.FromFlat(f.rows, f.cols, f.dist)
	if err != nil {
		// rows, cols and dist come from a valid cost grid.
		panic(err)
	}

	return g
}
