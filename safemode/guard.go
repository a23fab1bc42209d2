package safemode

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/spatial/dijkstra"
	"github.com/katalvlaran/spatial/grid"
	"github.com/katalvlaran/spatial/gridgraph"
	"github.com/katalvlaran/spatial/placement"
	"github.com/katalvlaran/spatial/units"
)

// Guard wraps the core operations with validation controlled by a Config.
type Guard struct {
	cfg *Config
}

// New returns a Guard reading cfg. A nil cfg behaves as always enabled.
func New(cfg *Config) *Guard {
	if cfg == nil {
		cfg = NewConfig(true)
	}

	return &Guard{cfg: cfg}
}

// Config returns the switch the Guard reads.
func (g *Guard) Config() *Config { return g.cfg }

func wrap(fn string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", fn, err)
}

// Dijkstra builds a distance field. Enabled, it forces dijkstra.WithChecks(true);
// disabled, dijkstra.WithChecks(false).
func (g *Guard) Dijkstra(cost *grid.Grid, targets []grid.Cell, opts ...dijkstra.Option) (*dijkstra.Field, error) {
	opts = append(opts[:len(opts):len(opts)], dijkstra.WithChecks(g.cfg.Enabled()))
	f, err := dijkstra.Build(cost, targets, opts...)

	return f, wrap("Dijkstra", err)
}

// CanPlace runs placement.ValidateFootprint first when enabled.
func (g *Guard) CanPlace(
	origin placement.Origin,
	size placement.Size,
	creep, placementGrid, pathing *grid.Grid,
	opts ...placement.Option,
) (bool, error) {
	if g.cfg.Enabled() {
		if err := placement.ValidateFootprint(origin, size, creep, placementGrid, pathing); err != nil {
			return false, wrap("CanPlace", err)
		}
	}

	return placement.CanPlace(origin, size, creep, placementGrid, pathing, opts...), nil
}

// FindLocations runs placement.ValidateQuery first when enabled.
func (g *Guard) FindLocations(q placement.Query, opts ...placement.Option) ([]placement.Origin, error) {
	if g.cfg.Enabled() {
		if err := placement.ValidateQuery(q); err != nil {
			return nil, wrap("FindLocations", err)
		}
	}

	return placement.FindLocations(q, opts...), nil
}

// FloodFill delegates to gridgraph.FloodFill, which always validates; the
// Guard adds the function prefix.
func (g *Guard) FloodFill(
	start grid.Cell,
	terrain, pathing *grid.Grid,
	maxDistance float64,
	cutoff mapset.Set[grid.Cell],
	opts ...gridgraph.Option,
) (mapset.Set[grid.Cell], error) {
	s, err := gridgraph.FloodFill(start, terrain, pathing, maxDistance, cutoff, opts...)

	return s, wrap("FloodFill", err)
}

// PointBelowValue checks the grid and limit first when enabled.
func (g *Guard) PointBelowValue(gr *grid.Grid, p grid.Point, limit float64) (bool, error) {
	if g.cfg.Enabled() {
		if err := grid.ValidateNotNil("grid", gr); err != nil {
			return false, wrap("PointBelowValue", err)
		}
		if math.IsNaN(limit) {
			return false, wrap("PointBelowValue", fmt.Errorf("limit is NaN: %w", grid.ErrInvalidArgument))
		}
	}

	return grid.PointBelowValue(gr, p, limit), nil
}

// PylonCovers checks the height grid and build-progress threshold first when
// enabled.
func (g *Guard) PylonCovers(pos grid.Point, pylons []units.Unit, height *grid.Grid, minProgress float64) (bool, error) {
	if g.cfg.Enabled() {
		if err := grid.ValidateNotNil("height_grid", height); err != nil {
			return false, wrap("PylonCovers", err)
		}
		if minProgress < 0 || math.IsNaN(minProgress) {
			return false, wrap("PylonCovers",
				fmt.Errorf("pylon_build_progress %v: %w", minProgress, grid.ErrInvalidArgument))
		}
	}

	return units.PylonCovers(pos, pylons, height, minProgress), nil
}
