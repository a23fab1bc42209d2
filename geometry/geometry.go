package geometry

import (
	"math"

	"github.com/katalvlaran/spatial/grid"
)

// Distance returns the Euclidean distance between a and b.
func Distance(a, b grid.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// DistanceSquared returns the squared Euclidean distance between a and b.
func DistanceSquared(a, b grid.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y

	return dx*dx + dy*dy
}

// Towards returns the point d units from start in the direction of target.
// A negative d moves away from target. If start equals target, start is
// returned.
func Towards(start, target grid.Point, d float64) grid.Point {
	dist := Distance(start, target)
	if dist == 0 {
		return start
	}
	k := d / dist

	return grid.Point{X: start.X + (target.X-start.X)*k, Y: start.Y + (target.Y-start.Y)*k}
}

// TranslateAlongLine moves p by d along the line y = slope·x + c through p,
// in the direction of increasing x for positive d.
func TranslateAlongLine(p grid.Point, slope, d float64) grid.Point {
	dx := d / math.Sqrt(1+slope*slope)

	return grid.Point{X: p.X + dx, Y: p.Y + slope*dx}
}
