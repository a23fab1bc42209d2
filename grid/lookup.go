// SPDX-License-Identifier: MIT

// Single-point lookups. A Point (x, y) floors to the cell (row x, col y).
// Points outside the grid never match and never panic.

package grid

import "math"

// DefaultWeightSafetyLimit is the threshold PointBelowValue uses when the
// caller has no better one.
const DefaultWeightSafetyLimit = 1.0

// value returns the grid value under p and whether p is inside the grid.
func (g *Grid) value(p Point) (float64, bool) {
	c := p.Floor()

	return g.Lookup(c.Row, c.Col)
}

// ValueAt returns the value under p, or (0, false) outside the grid.
func (g *Grid) ValueAt(p Point) (float64, bool) { return g.value(p) }

// HasValueAt reports whether the cell under p is non-zero. It backs the
// "has creep" and "is pathable" checks.
func HasValueAt(g *Grid, p Point) bool {
	v, ok := g.value(p)

	return ok && v != 0
}

// PointBelowValue reports whether the value under p is at most limit.
// +Inf always reports true: an influence grid marks unreachable cells with
// +Inf and callers treat them as below any threshold.
func PointBelowValue(g *Grid, p Point, limit float64) bool {
	v, ok := g.value(p)
	if !ok {
		return false
	}

	return math.IsInf(v, 1) || v <= limit
}

// AllPointsBelowMaxValue reports whether every point's value is ≤ maxValue.
// An empty list is vacuously true.
func AllPointsBelowMaxValue(g *Grid, maxValue float64, points []Point) bool {
	for _, p := range points {
		v, ok := g.value(p)
		if !ok || v > maxValue {
			return false
		}
	}

	return true
}

// AllPointsHaveValue reports whether every point's value equals value.
func AllPointsHaveValue(g *Grid, value float64, points []Point) bool {
	for _, p := range points {
		v, ok := g.value(p)
		if !ok || v != value {
			return false
		}
	}

	return true
}

// PointsWithValue returns the points whose value equals value, in input order.
func PointsWithValue(g *Grid, value float64, points []Point) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if v, ok := g.value(p); ok && v == value {
			out = append(out, p)
		}
	}

	return out
}

// LastIndexWithValue walks points in order and returns the index of the
// last point in the leading run whose value equals value. Returns -1 when
// the first point already differs or points is empty.
func LastIndexWithValue(g *Grid, value float64, points []Point) int {
	last := -1
	for i, p := range points {
		v, ok := g.value(p)
		if !ok || v != value {
			break
		}
		last = i
	}

	return last
}
