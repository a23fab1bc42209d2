package placement

import (
	"fmt"

	"github.com/katalvlaran/spatial/grid"
)

// Sentinel errors returned by the validators, shared with package grid.
var (
	ErrInvalidShape    = grid.ErrInvalidShape
	ErrOutOfBounds     = grid.ErrOutOfBounds
	ErrInvalidArgument = grid.ErrInvalidArgument
)

// Addon footprint: a 2×2 block immediately right of the building, aligned
// with its top row.
const (
	AddonWidth  = 2
	AddonHeight = 2
)

// Origin is the top-left cell of a footprint: X is the column, Y the row.
type Origin struct {
	X, Y int
}

// String implements fmt.Stringer.
func (o Origin) String() string { return fmt.Sprintf("(%d,%d)", o.X, o.Y) }

// Cell returns the origin as a grid cell.
func (o Origin) Cell() grid.Cell { return grid.Cell{Row: o.Y, Col: o.X} }

// Size is a footprint's width (columns) and height (rows).
type Size struct {
	W, H int
}

// Bounds is a half-open scan interval [Min, Max).
type Bounds struct {
	Min, Max int
}

// Options controls which checks a footprint must pass.
//
// AvoidCreep     – reject cells with creep (default true).
// IncludeAddon   – also require the addon block to pass (default false).
// SkipCreepCheck – ignore creep even when AvoidCreep is set (default false).
type Options struct {
	AvoidCreep     bool
	IncludeAddon   bool
	SkipCreepCheck bool
}

// Option represents a functional option for CanPlace and FindLocations.
type Option func(*Options)

// DefaultOptions returns AvoidCreep=true, IncludeAddon=false, SkipCreepCheck=false.
func DefaultOptions() Options {
	return Options{AvoidCreep: true}
}

// AvoidCreep sets whether creep cells are rejected.
func AvoidCreep(avoid bool) Option {
	return func(o *Options) { o.AvoidCreep = avoid }
}

// IncludeAddon sets whether the addon block must also be free.
func IncludeAddon(include bool) Option {
	return func(o *Options) { o.IncludeAddon = include }
}

// SkipCreepCheck disables the creep check regardless of AvoidCreep.
func SkipCreepCheck(skip bool) Option {
	return func(o *Options) { o.SkipCreepCheck = skip }
}

func gatherOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// checksCreep reports whether the creep grid takes part.
func (o Options) checksCreep() bool { return o.AvoidCreep && !o.SkipCreepCheck }

// Kernel is a footprint shape: the set of non-zero offsets of a mask.
// The zero Kernel has no offsets; FindLocations then checks the whole
// Width×Height rectangle.
type Kernel struct {
	rows, cols int
	offsets    []grid.Cell // (row, col) offsets of occupied cells, row-major
}

// NewKernel builds a Kernel from a mask; every non-zero entry is occupied.
// Returns ErrInvalidShape for a nil mask and ErrInvalidArgument for a mask
// with no occupied cell.
func NewKernel(mask *grid.Grid) (Kernel, error) {
	if mask == nil {
		return Kernel{}, fmt.Errorf("placement: kernel mask is nil: %w", ErrInvalidShape)
	}
	k := Kernel{rows: mask.Rows(), cols: mask.Cols()}
	for i, v := range mask.Raw() {
		if v != 0 {
			k.offsets = append(k.offsets, mask.Coordinate(i))
		}
	}
	if len(k.offsets) == 0 {
		return Kernel{}, fmt.Errorf("placement: kernel has no occupied cell: %w", ErrInvalidArgument)
	}

	return k, nil
}

// RectKernel builds a fully occupied width×height Kernel.
func RectKernel(width, height int) (Kernel, error) {
	mask, err := grid.Filled(height, width, 1)
	if err != nil {
		return Kernel{}, fmt.Errorf("placement: kernel %dx%d: %w", width, height, ErrInvalidArgument)
	}

	return NewKernel(mask)
}

// Width returns the number of mask columns.
func (k Kernel) Width() int { return k.cols }

// Height returns the number of mask rows.
func (k Kernel) Height() int { return k.rows }

// Offsets returns a copy of the occupied (row, col) offsets in row-major order.
func (k Kernel) Offsets() []grid.Cell {
	out := make([]grid.Cell, len(k.offsets))
	copy(out, k.offsets)

	return out
}

// Layers groups the constraint grids a scan reads. Creep and Avoid may be nil.
type Layers struct {
	Creep     *grid.Grid
	Placement *grid.Grid
	Pathing   *grid.Grid
	Avoid     *grid.Grid
}

// Query describes a placement scan.
//
// Kernel           – footprint shape; must be Height×Width.
// XStride, YStride – step between candidates; values ≤ 0 scan every cell.
// XBounds, YBounds – half-open column and row ranges for the origin.
// Width, Height    – footprint extent; the whole extent must fit on the grid.
type Query struct {
	Kernel           Kernel
	XStride, YStride int
	XBounds, YBounds Bounds
	Layers           Layers
	Width, Height    int
}
