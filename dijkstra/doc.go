// Package dijkstra builds multi-source distance fields over 2D movement-cost
// grids and reconstructs shortest paths from them.
//
// Build runs Dijkstra's algorithm seeded from every target at once: all
// targets start at distance 0, and the result holds, for every cell, the
// minimum accumulated cost to the nearest target. Moves follow 8-connectivity;
// entering a cell costs cost[cell] × step, where step is 1 for cardinal and
// √2 for diagonal moves. +Inf cells are walls and keep distance +Inf.
//
// The work is split in two phases:
//
//   - Build once per tick: O(N log N) for N = rows×cols; flat arrays indexed
//     by linearised coordinate, a binary heap with lazy decrease-key.
//   - Query many times: Field.Path walks the recorded predecessors from any
//     start toward the nearest target in O(len(path)).
//
// The Field is immutable after Build and carries no reference to the cost
// grid, so queries never observe later changes the caller makes to it.
//
// Complexity:
//
//   - Build: Time O(N log N), Space O(N) plus up to 8N stale heap entries.
//   - Path:  Time O(len(path) + snapRadius²), Space O(len(path)).
//
// Options:
//
//   - WithChecks(bool):        validate costs and targets before running (default true).
//   - WithMaxDistance(float64): stop expanding past this distance (default +Inf).
//   - WithSnapRadius(float64): Path search radius for an unreachable start (default 5).
//   - WithGreedyDescent():     Path follows the neighbour with the smallest distance
//     instead of the recorded predecessor.
//
// Errors (sentinel, shared with package grid):
//
//   - ErrInvalidShape if the cost grid is nil.
//   - ErrInvalidCost  if a finite cost is ≤ 0, or a cost is NaN or -Inf.
//   - ErrOutOfBounds  if a target row or column lies outside the grid.
//
// Example usage:
//
//	cost := grid.MustFrom2D([][]float64{{1, 1}, {1, 1}})
//	field, err := dijkstra.Build(cost, []grid.Cell{{Row: 1, Col: 1}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path := field.Path(grid.Pt(0, 0), 32)
package dijkstra
