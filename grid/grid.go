// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"
	"strings"
)

// Grid is a row-major rows×cols array of float64 values.
// data holds rows*cols elements; cell (r, c) lives at data[r*cols+c].
type Grid struct {
	rows, cols int
	data       []float64
}

// New creates a rows×cols Grid initialised to zeros.
// Returns ErrInvalidShape if either dimension is not positive.
// Complexity: O(rows*cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidShape)
	}

	return &Grid{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// Filled creates a rows×cols Grid with every cell set to v.
func Filled(rows, cols int, v float64) (*Grid, error) {
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range g.data {
		g.data[i] = v
	}

	return g, nil
}

// From2D builds a Grid from a non-empty rectangular 2D slice of any numeric
// kind. The input is deep-copied; later changes to values do not leak in.
// Returns ErrInvalidShape for an empty or jagged input.
// Complexity: O(rows*cols).
func From2D[T Number](values [][]T) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("From2D: empty grid: %w", ErrInvalidShape)
	}
	rows, cols := len(values), len(values[0])
	g := &Grid{rows: rows, cols: cols, data: make([]float64, rows*cols)}
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("From2D: row %d has %d columns, want %d: %w", r, len(row), cols, ErrInvalidShape)
		}
		for c, v := range row {
			g.data[r*cols+c] = float64(v)
		}
	}

	return g, nil
}

// FromFlat builds a rows×cols Grid from a row-major slice, copying data.
// Returns ErrInvalidShape if len(data) != rows*cols or a dimension is not positive.
func FromFlat(rows, cols int, data []float64) (*Grid, error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return nil, fmt.Errorf("FromFlat(%d,%d) with %d values: %w", rows, cols, len(data), ErrInvalidShape)
	}
	cp := make([]float64, len(data))
	copy(cp, data)

	return &Grid{rows: rows, cols: cols, data: cp}, nil
}

// MustFrom2D is From2D that panics on error. Intended for literals in
// tests and examples.
func MustFrom2D[T Number](values [][]T) *Grid {
	g, err := From2D(values)
	if err != nil {
		panic(err)
	}

	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Shape returns (rows, cols).
func (g *Grid) Shape() (int, int) { return g.rows, g.cols }

// Len returns rows*cols.
func (g *Grid) Len() int { return len(g.data) }

// InBounds reports whether (r, c) lies inside the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// Contains reports whether cell lies inside the grid.
func (g *Grid) Contains(cell Cell) bool {
	return g.InBounds(cell.Row, cell.Col)
}

// Index maps (r, c) to its row-major offset. No bounds check.
func (g *Grid) Index(r, c int) int {
	return r*g.cols + c
}

// Coordinate converts a row-major offset back to a Cell.
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}

// At returns the value at (r, c). Calling At outside the grid is a
// programmer error and panics; use Lookup for total access.
func (g *Grid) At(r, c int) float64 {
	if !g.InBounds(r, c) {
		panic(fmt.Sprintf("grid: At(%d,%d) outside %dx%d", r, c, g.rows, g.cols))
	}

	return g.data[r*g.cols+c]
}

// Lookup returns the value at (r, c) and whether the cell exists.
func (g *Grid) Lookup(r, c int) (float64, bool) {
	if !g.InBounds(r, c) {
		return 0, false
	}

	return g.data[r*g.cols+c], true
}

// Set assigns v at (r, c). Returns ErrOutOfBounds outside the grid.
func (g *Grid) Set(r, c int, v float64) error {
	if !g.InBounds(r, c) {
		return fmt.Errorf("Set(%d,%d): %w", r, c, ErrOutOfBounds)
	}
	g.data[r*g.cols+c] = v

	return nil
}

// Fill sets every cell to v.
func (g *Grid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Raw exposes the flat backing slice. Engines use it for hot loops; callers
// must treat it as read-only for grids they hand to an engine.
func (g *Grid) Raw() []float64 { return g.data }

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	data := make([]float64, len(g.data))
	copy(data, g.data)

	return &Grid{rows: g.rows, cols: g.cols, data: data}
}

// ToSlices returns the grid as a freshly allocated [][]float64.
func (g *Grid) ToSlices() [][]float64 {
	out := make([][]float64, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = make([]float64, g.cols)
		copy(out[r], g.data[r*g.cols:(r+1)*g.cols])
	}

	return out
}

// String implements fmt.Stringer; +Inf prints as "inf".
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.rows; r++ {
		b.WriteByte('[')
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				b.WriteString(", ")
			}
			v := g.data[r*g.cols+c]
			if math.IsInf(v, 1) {
				b.WriteString("inf")
			} else {
				fmt.Fprintf(&b, "%g", v)
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
