package units

import (
	"sort"

	"github.com/katalvlaran/spatial/geometry"
	"github.com/katalvlaran/spatial/grid"
)

// Center returns the mean position of units.
func Center(units []Unit) (grid.Point, error) {
	if len(units) == 0 {
		return grid.Point{}, ErrNoUnits
	}
	var sx, sy float64
	for _, u := range units {
		sx += u.Position.X
		sy += u.Position.Y
	}
	n := float64(len(units))

	return grid.Point{X: sx / n, Y: sy / n}, nil
}

// ClosestTo returns the unit nearest to pos; the first one wins ties.
func ClosestTo(pos grid.Point, units []Unit) (Unit, error) {
	if len(units) == 0 {
		return Unit{}, ErrNoUnits
	}
	best, bestD := 0, geometry.DistanceSquared(units[0].Position, pos)
	for i := 1; i < len(units); i++ {
		if d := geometry.DistanceSquared(units[i].Position, pos); d < bestD {
			best, bestD = i, d
		}
	}

	return units[best], nil
}

// CloserThan returns the units strictly closer than maxDistance to pos.
func CloserThan(units []Unit, maxDistance float64, pos grid.Point) []Unit {
	limit := maxDistance * maxDistance
	var out []Unit
	for _, u := range units {
		if geometry.DistanceSquared(u.Position, pos) < limit {
			out = append(out, u)
		}
	}

	return out
}

// FurtherThan returns the units strictly further than minDistance from pos.
func FurtherThan(units []Unit, minDistance float64, pos grid.Point) []Unit {
	limit := minDistance * minDistance
	var out []Unit
	for _, u := range units {
		if geometry.DistanceSquared(u.Position, pos) > limit {
			out = append(out, u)
		}
	}

	return out
}

// SortedByDistanceTo returns a copy of units ordered by distance to pos,
// nearest first, or furthest first when reverse is set. Equal distances keep
// their input order.
func SortedByDistanceTo(units []Unit, pos grid.Point, reverse bool) []Unit {
	out := make([]Unit, len(units))
	copy(out, units)
	sort.SliceStable(out, func(i, j int) bool {
		di := geometry.DistanceSquared(out[i].Position, pos)
		dj := geometry.DistanceSquared(out[j].Position, pos)
		if reverse {
			return di > dj
		}

		return di < dj
	})

	return out
}

// FindUnitsCenterMass returns the position of the unit with the most units
// (itself included) within distance, and that count. The first such unit
// wins ties. The count never decreases as distance grows.
//
// Complexity: O(n²).
func FindUnitsCenterMass(units []Unit, distance float64) (grid.Point, int, error) {
	if len(units) == 0 {
		return grid.Point{}, 0, ErrNoUnits
	}
	limit := distance * distance
	best, bestCount := 0, 0
	for i, u := range units {
		count := 0
		for _, v := range units {
			if geometry.DistanceSquared(u.Position, v.Position) <= limit {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = i, count
		}
	}

	return units[best].Position, bestCount, nil
}
