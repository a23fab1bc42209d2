package geometry

import (
	"math"

	"github.com/katalvlaran/spatial/grid"
)

// AngleTo returns the heading from `from` to `to`, atan2 in (-π, π].
// Coincident points yield 0.
func AngleTo(from, to grid.Point) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// AngleDiff returns the smallest absolute difference between two angles,
// in [0, π].
func AngleDiff(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 2*math.Pi)
	if d > math.Pi {
		d = 2*math.Pi - d
	}

	return d
}

// AngleBetweenPoints returns the angle in [0, π] between vectors a and b,
// each taken from the origin. A zero-length vector yields 0.
func AngleBetweenPoints(a, b grid.Point) float64 {
	na, nb := math.Hypot(a.X, a.Y), math.Hypot(b.X, b.Y)
	if na == 0 || nb == 0 {
		return 0
	}
	cos := (a.X*b.X + a.Y*b.Y) / (na * nb)
	// rounding can push |cos| a hair past 1
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos)
}

// AverageAngle returns the mean angle between the ray start→ref and each
// ray start→p. An empty points slice yields 0.
func AverageAngle(start, ref grid.Point, points []grid.Point) float64 {
	if len(points) == 0 {
		return 0
	}
	base := grid.Point{X: ref.X - start.X, Y: ref.Y - start.Y}
	var sum float64
	for _, p := range points {
		sum += AngleBetweenPoints(base, grid.Point{X: p.X - start.X, Y: p.Y - start.Y})
	}

	return sum / float64(len(points))
}
