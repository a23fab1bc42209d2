// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"
)

// Number is any value a grid can be built from.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Cell is an integer grid index.
type Cell struct {
	Row, Col int
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns the cell offset by (dr, dc).
func (c Cell) Add(dr, dc int) Cell {
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Point returns the continuous coordinate of the cell's corner.
func (c Cell) Point() Point {
	return Point{X: float64(c.Row), Y: float64(c.Col)}
}

// Point is a continuous coordinate. X is the first axis (row for grid
// lookups), Y the second.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Floor maps the point onto the cell containing it.
func (p Point) Floor() Cell {
	return Cell{Row: int(math.Floor(p.X)), Col: int(math.Floor(p.Y))}
}

// CellOf floors an arbitrary numeric pair into a Cell.
func CellOf[T Number](row, col T) Cell {
	return Cell{Row: int(math.Floor(float64(row))), Col: int(math.Floor(float64(col)))}
}

// CellsOf converts a list of numeric pairs into cells, flooring floats.
func CellsOf[T Number](pairs [][2]T) []Cell {
	out := make([]Cell, len(pairs))
	for i, p := range pairs {
		out[i] = CellOf(p[0], p[1])
	}

	return out
}

// neighborOffsets enumerates the 8-neighbourhood in a fixed order:
// N, NE, E, SE, S, SW, W, NW as (dRow, dCol).
var neighborOffsets = [8][2]int{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
	{1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

// NeighborOffsets8 returns the fixed 8-neighbour enumeration order
// N, NE, E, SE, S, SW, W, NW. Diagonals sit at odd indices.
func NeighborOffsets8() [8][2]int { return neighborOffsets }

// Neighbors8 returns the eight cells around c, unclipped, in the
// NeighborOffsets8 order.
func Neighbors8(c Cell) []Cell {
	out := make([]Cell, 0, 8)
	for _, d := range neighborOffsets {
		out = append(out, c.Add(d[0], d[1]))
	}

	return out
}
