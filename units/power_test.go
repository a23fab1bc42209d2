package units_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spatial/grid"
	"github.com/katalvlaran/spatial/units"
)

// terrain returns a 12×12 height grid whose rows 8..11 form a raised plateau.
func terrain(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.Filled(12, 12, 0)
	require.NoError(t, err)
	for r := 8; r < 12; r++ {
		for c := 0; c < 12; c++ {
			require.NoError(t, g.Set(r, c, 1))
		}
	}
	return g
}

func pylon(x, y, progress float64) units.Unit {
	u := at(1, x, y)
	u.BuildProgress = progress
	return u
}

func TestPylonCovers(t *testing.T) {
	height := terrain(t)
	pylons := []units.Unit{pylon(2, 2, 1)}
	full := units.DefaultPylonBuildProgress

	assert.True(t, units.PylonCovers(grid.Pt(2, 2), pylons, height, full), "pylon's own position")
	assert.True(t, units.PylonCovers(grid.Pt(2, 8.5), pylons, height, full), "edge of the field")
	assert.False(t, units.PylonCovers(grid.Pt(7, 7), pylons, height, full), "outside the radius")
	assert.False(t, units.PylonCovers(grid.Pt(8.5, 2), pylons, height, full), "plateau above the pylon")

	high := []units.Unit{pylon(9, 2, 1)}
	assert.True(t, units.PylonCovers(grid.Pt(4, 2), high, height, full), "power reaches down a cliff")
}

func TestPylonCovers_BuildProgress(t *testing.T) {
	height := terrain(t)
	warping := []units.Unit{pylon(2, 2, 0.5)}

	assert.False(t, units.PylonCovers(grid.Pt(3, 3), warping, height, units.DefaultPylonBuildProgress))
	assert.True(t, units.PylonCovers(grid.Pt(3, 3), warping, height, 0.5))
	assert.True(t, units.PylonCovers(grid.Pt(3, 3), warping, height, 0))
}

func TestPylonCovers_Degenerate(t *testing.T) {
	height := terrain(t)
	pylons := []units.Unit{pylon(2, 2, 1)}

	assert.False(t, units.PylonCovers(grid.Pt(2, 2), nil, height, 1))
	assert.False(t, units.PylonCovers(grid.Pt(2, 2), pylons, nil, 1))
	assert.False(t, units.PylonCovers(grid.Pt(-1, 2), pylons, height, 1), "off the height grid")
	assert.False(t, units.PylonCovers(grid.Pt(2, 2), []units.Unit{pylon(-3, 2, 1)}, height, 1),
		"pylon off the height grid")
}

func TestTurnSpeed(t *testing.T) {
	const marine, siegeTank, colossus = 48, 33, 4
	toRad := 1.4 * math.Pi / 180

	assert.InDelta(t, units.InstantTurnRate*toRad, units.TurnSpeed(marine), 1e-9)
	assert.InDelta(t, units.InstantTurnRate*toRad, units.TurnSpeed(-1), 1e-9, "unknown type")
	assert.InDelta(t, 360*toRad, units.TurnSpeed(siegeTank), 1e-9)
	assert.Less(t, units.TurnSpeed(siegeTank), units.TurnSpeed(colossus))
	assert.Less(t, units.TurnSpeed(colossus), units.TurnSpeed(marine))
}
