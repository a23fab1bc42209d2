package dijkstra

import (
	"math"

	"github.com/katalvlaran/spatial/grid"
)

// Path returns the cells from start toward the nearest target, inclusive of
// both ends.
//
// Behavior:
//  1. start is floored to a cell.
//  2. If that cell is outside the grid or has distance +Inf, the closest
//     reachable cell within the snap radius becomes the start: smallest
//     Euclidean distance first, then lowest row, then lowest column. With
//     no such cell the result is the singleton [floored start], whose
//     Distance is +Inf.
//  3. The path then descends (see Descent) until a target (distance 0) is
//     reached or it holds stepLimit cells. stepLimit ≤ 0 means no limit.
//
// WithGreedyDescent gives the literal steepest-descent walk. On grids with
// mixed costs it can take a different route from the default predecessor
// walk, whose entry costs always sum to the start's distance.
//
// Guarantees: 1 ≤ len(path) ≤ max(stepLimit, 1); distances never increase
// along the path.
//
// Complexity: O(len(path) + snapRadius²).
func (f *Field) Path(start grid.Point, stepLimit int, opts ...PathOption) []grid.Cell {
	cfg := DefaultPathOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	origin := start.Floor()
	cur, ok := f.effectiveStart(origin, cfg.SnapRadius)
	if !ok {
		return []grid.Cell{origin}
	}

	limit := stepLimit
	if limit <= 0 {
		limit = f.rows * f.cols
	}

	path := make([]grid.Cell, 0, min(limit, 64))
	path = append(path, f.cell(cur))
	for len(path) < limit && f.dist[cur] > 0 {
		next := f.next(cur, cfg.Descent)
		if next < 0 {
			break
		}
		cur = next
		path = append(path, f.cell(cur))
	}

	return path
}

// effectiveStart resolves the cell the walk begins from, snapping when the
// origin itself is unusable.
func (f *Field) effectiveStart(origin grid.Cell, radius float64) (int, bool) {
	if f.Reachable(origin.Row, origin.Col) {
		return origin.Row*f.cols + origin.Col, true
	}

	return f.snap(origin, radius)
}

// snap scans the disk of the given radius around origin in row-major order,
// keeping the first reachable cell at the smallest squared distance.
func (f *Field) snap(origin grid.Cell, radius float64) (int, bool) {
	span := f.rows + f.cols
	if radius < float64(span) {
		span = int(math.Floor(radius))
	}
	limit := radius * radius
	best, bestD2 := -1, math.MaxInt
	for r := max(0, origin.Row-span); r <= min(f.rows-1, origin.Row+span); r++ {
		dr := r - origin.Row
		for c := max(0, origin.Col-span); c <= min(f.cols-1, origin.Col+span); c++ {
			dc := c - origin.Col
			d2 := dr*dr + dc*dc
			if d2 == 0 || float64(d2) > limit || d2 >= bestD2 {
				continue
			}
			idx := r*f.cols + c
			if math.IsInf(f.dist[idx], 1) {
				continue
			}
			best, bestD2 = idx, d2
		}
	}

	return best, best >= 0
}

// next returns the cell after idx, or -1 when the walk cannot continue.
func (f *Field) next(idx int, mode Descent) int {
	if mode == DescentPredecessor {
		return f.prev[idx]
	}

	r, c := idx/f.cols, idx%f.cols
	best, bestDist := -1, f.dist[idx]
	for _, off := range grid.NeighborOffsets8() {
		nr, nc := r+off[0], c+off[1]
		if nr < 0 || nr >= f.rows || nc < 0 || nc >= f.cols {
			continue
		}
		n := nr*f.cols + nc
		if f.dist[n] < bestDist {
			best, bestDist = n, f.dist[n]
		}
	}

	return best
}

func (f *Field) cell(idx int) grid.Cell {
	return grid.Cell{Row: idx / f.cols, Col: idx % f.cols}
}
