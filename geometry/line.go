package geometry

import (
	"math"

	"github.com/katalvlaran/spatial/grid"
)

// FindCorrectLine picks the two points whose line faces base: base lies
// strictly on one side of it and every other point lies on the other side or
// on the line. Among several such lines the one closest to base wins, then
// the first pair in input order. ok is false with fewer than two distinct
// points or when no pair separates base from the rest.
//
// Complexity: O(n³).
func FindCorrectLine(points []grid.Point, base grid.Point) (a, b grid.Point, ok bool) {
	best := -1.0
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			p, q := points[i], points[j]
			if p == q {
				continue
			}
			side := cross(p, q, base)
			if side == 0 || !separates(points, p, q, side) {
				continue
			}
			d := math.Abs(side) / Distance(p, q)
			if best < 0 || d < best {
				a, b, best = p, q, d
			}
		}
	}

	return a, b, best >= 0
}

// separates reports whether no point lies on the side of line pq given by
// the sign of side.
func separates(points []grid.Point, p, q grid.Point, side float64) bool {
	for _, r := range points {
		if cross(p, q, r)*side > 0 {
			return false
		}
	}

	return true
}

// cross is the z component of (q-p)×(r-p): positive when r is left of p→q.
func cross(p, q, r grid.Point) float64 {
	return (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
}
