package placement

import "github.com/katalvlaran/spatial/grid"

// CanPlace reports whether a size-shaped footprint anchored at origin passes
// every active check on the given grids. creep may be nil.
//
// Behavior:
//  1. Walk the W×H rectangle, then the addon block when IncludeAddon is set.
//  2. Fail on the first cell that is off-grid, not placeable, not pathable,
//     or (with creep checking active) covered in creep.
//
// Complexity: O(W×H).
func CanPlace(origin Origin, size Size, creep, placementGrid, pathing *grid.Grid, opts ...Option) bool {
	cfg := gatherOptions(opts)
	l := Layers{Creep: creep, Placement: placementGrid, Pathing: pathing}
	if !l.rectPasses(origin.Y, origin.X, size.H, size.W, cfg) {
		return false
	}
	if cfg.IncludeAddon {
		return l.rectPasses(origin.Y, origin.X+size.W, AddonHeight, AddonWidth, cfg)
	}

	return true
}

// Footprint lists the cells CanPlace would inspect for origin and size, in
// row-major order, addon block last.
func Footprint(origin Origin, size Size, includeAddon bool) []grid.Cell {
	out := make([]grid.Cell, 0, size.W*size.H+AddonWidth*AddonHeight)
	for r := origin.Y; r < origin.Y+size.H; r++ {
		for c := origin.X; c < origin.X+size.W; c++ {
			out = append(out, grid.Cell{Row: r, Col: c})
		}
	}
	if includeAddon {
		for r := origin.Y; r < origin.Y+AddonHeight; r++ {
			for c := origin.X + size.W; c < origin.X+size.W+AddonWidth; c++ {
				out = append(out, grid.Cell{Row: r, Col: c})
			}
		}
	}

	return out
}

// rectPasses checks rows [row, row+h) × columns [col, col+w).
func (l Layers) rectPasses(row, col, h, w int, cfg Options) bool {
	for r := row; r < row+h; r++ {
		for c := col; c < col+w; c++ {
			if !l.cellPasses(r, c, cfg) {
				return false
			}
		}
	}

	return true
}

// cellPasses applies the per-cell rule shared by CanPlace and FindLocations.
func (l Layers) cellPasses(r, c int, cfg Options) bool {
	v, ok := l.Placement.Lookup(r, c)
	if !ok || v == 0 {
		return false
	}
	if v, ok = l.Pathing.Lookup(r, c); !ok || v == 0 {
		return false
	}
	if cfg.checksCreep() && l.Creep != nil {
		if v, ok = l.Creep.Lookup(r, c); ok && v != 0 {
			return false
		}
	}

	return true
}

// avoided reports whether (r, c) is flagged in the avoid grid.
func (l Layers) avoided(r, c int) bool {
	if l.Avoid == nil {
		return false
	}
	v, ok := l.Avoid.Lookup(r, c)

	return ok && v != 0
}
