package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spatial/dijkstra"
	"github.com/katalvlaran/spatial/grid"
	"github.com/katalvlaran/spatial/placement"
	"github.com/katalvlaran/spatial/safemode"
)

// Scenario is the YAML input of spatialctl. Walls in cost are written .inf.
type Scenario struct {
	Cost       [][]float64  `yaml:"cost"`
	Targets    [][2]int     `yaml:"targets"`
	Starts     [][2]float64 `yaml:"starts"`
	StepLimit  int          `yaml:"step_limit"`
	SnapRadius *float64     `yaml:"snap_radius"`
	Greedy     bool         `yaml:"greedy_descent"`

	Placement *PlacementScenario `yaml:"placement"`
}

// PlacementScenario describes an optional building scan.
type PlacementScenario struct {
	Placement [][]float64 `yaml:"placement"`
	Pathing   [][]float64 `yaml:"pathing"`
	Creep     [][]float64 `yaml:"creep"`
	Avoid     [][]float64 `yaml:"avoid"`
	Kernel    [][]float64 `yaml:"kernel"`

	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	XStride *int    `yaml:"x_stride"`
	YStride *int    `yaml:"y_stride"`
	XBounds *[2]int `yaml:"x_bounds"`
	YBounds *[2]int `yaml:"y_bounds"`

	AvoidCreep   *bool `yaml:"avoid_creep"`
	IncludeAddon bool  `yaml:"include_addon"`
}

// Report is the outcome of running a Scenario.
type Report struct {
	Field *dijkstra.Field
	Paths [][]grid.Cell
	Sites []placement.Origin
	Query *placement.Query
}

// LoadScenario reads and decodes a scenario file.
func LoadScenario(path string) (Scenario, error) {
	var s Scenario
	raw, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Run builds the distance field, reconstructs a path from every start and
// runs the placement scan when one is configured.
func (s Scenario) Run(g *safemode.Guard) (Report, error) {
	var rep Report
	cost, err := grid.From2D(s.Cost)
	if err != nil {
		return rep, fmt.Errorf("cost: %w", err)
	}
	field, err := g.Dijkstra(cost, grid.CellsOf(s.Targets))
	if err != nil {
		return rep, err
	}
	rep.Field = field

	var popts []dijkstra.PathOption
	if s.SnapRadius != nil {
		if *s.SnapRadius < 0 || math.IsNaN(*s.SnapRadius) {
			return rep, fmt.Errorf("snap_radius %v: %w", *s.SnapRadius, grid.ErrInvalidArgument)
		}
		popts = append(popts, dijkstra.WithSnapRadius(*s.SnapRadius))
	}
	if s.Greedy {
		popts = append(popts, dijkstra.WithGreedyDescent())
	}
	for _, st := range s.Starts {
		rep.Paths = append(rep.Paths, field.Path(grid.Pt(st[0], st[1]), s.StepLimit, popts...))
	}

	if s.Placement == nil {
		return rep, nil
	}
	q, opts, err := s.Placement.query()
	if err != nil {
		return rep, fmt.Errorf("placement: %w", err)
	}
	rep.Query = &q
	if rep.Sites, err = g.FindLocations(q, opts...); err != nil {
		return rep, err
	}

	return rep, nil
}

func (p *PlacementScenario) query() (placement.Query, []placement.Option, error) {
	var q placement.Query
	layer := func(name string, v [][]float64, required bool) (*grid.Grid, error) {
		if len(v) == 0 && !required {
			return nil, nil
		}
		g, err := grid.From2D(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return g, nil
	}

	var err error
	if q.Layers.Placement, err = layer("placement", p.Placement, true); err != nil {
		return q, nil, err
	}
	if q.Layers.Pathing, err = layer("pathing", p.Pathing, true); err != nil {
		return q, nil, err
	}
	if q.Layers.Creep, err = layer("creep", p.Creep, false); err != nil {
		return q, nil, err
	}
	if q.Layers.Avoid, err = layer("avoid", p.Avoid, false); err != nil {
		return q, nil, err
	}

	if len(p.Kernel) == 0 {
		q.Kernel, err = placement.RectKernel(p.Width, p.Height)
	} else {
		var mask *grid.Grid
		if mask, err = grid.From2D(p.Kernel); err == nil {
			q.Kernel, err = placement.NewKernel(mask)
		}
	}
	if err != nil {
		return q, nil, err
	}

	rows, cols := q.Layers.Placement.Shape()
	q.Width, q.Height = p.Width, p.Height
	q.XStride, q.YStride = strideOr1(p.XStride), strideOr1(p.YStride)
	q.XBounds = placement.Bounds{Min: 0, Max: cols}
	if p.XBounds != nil {
		q.XBounds = placement.Bounds{Min: p.XBounds[0], Max: p.XBounds[1]}
	}
	q.YBounds = placement.Bounds{Min: 0, Max: rows}
	if p.YBounds != nil {
		q.YBounds = placement.Bounds{Min: p.YBounds[0], Max: p.YBounds[1]}
	}

	opts := []placement.Option{placement.IncludeAddon(p.IncludeAddon)}
	if p.AvoidCreep != nil {
		opts = append(opts, placement.AvoidCreep(*p.AvoidCreep))
	}

	return q, opts, nil
}

// strideOr1 defaults an omitted stride to 1. An explicit value passes through
// unchanged so the guard can reject it.
func strideOr1(v *int) int {
	if v == nil {
		return 1
	}

	return *v
}

// Write prints the report as plain text.
func (r Report) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "field %dx%d\n", r.Field.Rows(), r.Field.Cols()); err != nil {
		return err
	}
	if _, err := io.WriteString(w, r.Field.Grid().String()); err != nil {
		return err
	}
	for i, p := range r.Paths {
		if _, err := fmt.Fprintf(w, "path %d: %v distance=%.3f\n", i, p, r.Field.Distance(p[0].Row, p[0].Col)); err != nil {
			return err
		}
	}
	if r.Query != nil {
		if _, err := fmt.Fprintf(w, "sites (%dx%d): %v\n", r.Query.Width, r.Query.Height, r.Sites); err != nil {
			return err
		}
	}

	return nil
}
