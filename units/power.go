package units

import (
	"github.com/katalvlaran/spatial/geometry"
	"github.com/katalvlaran/spatial/grid"
)

// PylonPowerRadius is the radius of a pylon's power field.
const PylonPowerRadius = 6.5

// DefaultPylonBuildProgress only counts finished pylons.
const DefaultPylonBuildProgress = 1.0

// PylonCovers reports whether any pylon powers pos. A pylon counts when its
// BuildProgress is at least minProgress, it is within PylonPowerRadius of
// pos, and its terrain height is not below the height at pos: power does not
// reach up a cliff.
//
// Heights are read from height at the floored point. A pos outside height is
// never covered; pylons outside height are skipped.
func PylonCovers(pos grid.Point, pylons []Unit, height *grid.Grid, minProgress float64) bool {
	if height == nil {
		return false
	}
	h, ok := height.ValueAt(pos)
	if !ok {
		return false
	}
	const r2 = PylonPowerRadius * PylonPowerRadius
	for _, p := range pylons {
		if p.BuildProgress < minProgress {
			continue
		}
		if geometry.DistanceSquared(pos, p.Position) > r2 {
			continue
		}
		if ph, ok := height.ValueAt(p.Position); ok && ph >= h {
			return true
		}
	}

	return false
}
