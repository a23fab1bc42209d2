// Package spatial is a toolkit of grid-based spatial queries for real-time
// strategy agents: multi-source distance fields with path extraction,
// building placement legality and scanning, and the map, geometry and unit
// helpers around them.
//
// Packages:
//
//	grid/       shared Grid and Cell types, point lookups, argument validators
//	dijkstra/   8-connected distance fields over cost grids and path reconstruction
//	placement/  footprint legality (CanPlace) and kernel scans (FindLocations)
//	gridgraph/  flood fill, connected components, bounding boxes
//	geometry/   distances, headings and translations of points
//	units/      unit collections and combat heuristics
//	safemode/   switchable argument validation for the core calls
//
// Working with grids:
//
//	cost := grid.MustFrom2D([][]float64{
//		{1, 1, 1},
//		{1, math.Inf(1), 1},
//		{1, 1, 1},
//	})
//	field, err := dijkstra.Build(cost, []grid.Cell{{Row: 0, Col: 2}})
//	if err != nil {
//		// errors.Is(err, dijkstra.ErrInvalidCost), ...
//	}
//	path := field.Path(grid.Pt(2, 0), 0)
//
// All packages are pure Go, never log, and return errors matched with
// errors.Is against the sentinels in package grid.
package spatial
