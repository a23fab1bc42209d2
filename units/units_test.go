package units_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spatial/geometry"
	"github.com/katalvlaran/spatial/grid"
	"github.com/katalvlaran/spatial/units"
)

func at(tag uint64, x, y float64) units.Unit {
	return units.Unit{Tag: tag, Position: grid.Pt(x, y), Radius: 0.5}
}

func TestEmptyInput(t *testing.T) {
	_, err := units.Center(nil)
	require.ErrorIs(t, err, units.ErrNoUnits)

	_, err = units.ClosestTo(grid.Pt(0, 0), nil)
	require.ErrorIs(t, err, units.ErrNoUnits)

	_, _, err = units.FindUnitsCenterMass(nil, 3)
	require.ErrorIs(t, err, units.ErrNoUnits)

	_, err = units.PickEnemyTarget(nil)
	require.ErrorIs(t, err, units.ErrNoUnits)

	assert.Empty(t, units.CloserThan(nil, 5, grid.Pt(0, 0)))
}

func TestCenter(t *testing.T) {
	c, err := units.Center([]units.Unit{at(1, 0, 0), at(2, 4, 0), at(3, 2, 6)})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, c.X, 1e-12)
	assert.InDelta(t, 2.0, c.Y, 1e-12)

	single, err := units.Center([]units.Unit{at(1, 3.5, -1)})
	require.NoError(t, err)
	assert.Equal(t, grid.Pt(3.5, -1), single)
}

func TestClosestTo(t *testing.T) {
	us := []units.Unit{at(1, 10, 10), at(2, 1, 1), at(3, -1, -1), at(4, 5, 0)}

	got, err := units.ClosestTo(grid.Pt(0, 0), us)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), got.Tag, "first of two equidistant units")
}

func TestCloserFurther(t *testing.T) {
	us := []units.Unit{at(1, 1, 0), at(2, 3, 0), at(3, 5, 0), at(4, 10, 0)}
	origin := grid.Pt(0, 0)

	near := units.CloserThan(us, 5, origin)
	assert.Equal(t, []uint64{1, 2}, tags(near))

	far := units.FurtherThan(us, 3, origin)
	assert.Equal(t, []uint64{3, 4}, tags(far))

	assert.GreaterOrEqual(t, len(units.CloserThan(us, 50, origin)), len(units.CloserThan(us, 5, origin)))
	assert.LessOrEqual(t, len(units.FurtherThan(us, 50, origin)), len(units.FurtherThan(us, 5, origin)))
}

func TestSortedByDistanceTo(t *testing.T) {
	us := []units.Unit{at(1, 4, 0), at(2, 1, 0), at(3, 0, 1), at(4, 3, 0)}
	pos := grid.Pt(0, 0)

	asc := units.SortedByDistanceTo(us, pos, false)
	assert.Equal(t, []uint64{2, 3, 4, 1}, tags(asc))
	for i := 0; i+1 < len(asc); i++ {
		assert.LessOrEqual(t, geometry.Distance(asc[i].Position, pos), geometry.Distance(asc[i+1].Position, pos))
	}

	desc := units.SortedByDistanceTo(us, pos, true)
	assert.Equal(t, []uint64{1, 4, 2, 3}, tags(desc))
	assert.Equal(t, uint64(1), us[0].Tag, "input is not reordered")
}

func TestFindUnitsCenterMass(t *testing.T) {
	us := []units.Unit{at(1, 0, 0), at(2, 10, 10), at(3, 10.5, 10), at(4, 10, 11), at(5, 30, 30)}

	pos, n, err := units.FindUnitsCenterMass(us, 1.5)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, grid.Pt(10, 10), pos)

	_, n, err = units.FindUnitsCenterMass(us, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "a unit always counts itself")
}

// TestMonotoneReach checks that growing the distance never shrinks the
// center-of-mass count or the in-range count.
func TestMonotoneReach(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	us := make([]units.Unit, 40)
	for i := range us {
		us[i] = at(uint64(i+1), rng.Float64()*30, rng.Float64()*30)
	}
	attacker := units.Unit{Position: grid.Pt(15, 15), Radius: 0.5, GroundRange: 4, CanAttackGround: true}

	prevMass, prevRange := 0, 0
	for d := 0.0; d <= 45; d += 0.5 {
		_, n, err := units.FindUnitsCenterMass(us, d)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, prevMass, "distance %v", d)
		prevMass = n

		r := len(units.InAttackRange(attacker, us, d))
		assert.GreaterOrEqual(t, r, prevRange, "bonus %v", d)
		prevRange = r
	}
	assert.Equal(t, len(us), prevMass)
	assert.Equal(t, len(us), prevRange)
}

func tags(us []units.Unit) []uint64 {
	out := make([]uint64, len(us))
	for i, u := range us {
		out[i] = u.Tag
	}
	return out
}

func TestIsFacing(t *testing.T) {
	u := units.Unit{Position: grid.Pt(0, 0), Facing: math.Pi / 2}

	assert.True(t, units.IsFacing(u, at(1, 0, 5), units.DefaultFacingError))
	assert.True(t, units.IsFacing(u, at(1, 0.5, 5), units.DefaultFacingError))
	assert.False(t, units.IsFacing(u, at(1, 5, 0), units.DefaultFacingError))

	// facing east stored as 2π-ε still faces a target just below the x axis
	east := units.Unit{Facing: 2*math.Pi - 0.05}
	assert.True(t, units.IsFacing(east, at(1, 10, -0.1), units.DefaultFacingError))
}
