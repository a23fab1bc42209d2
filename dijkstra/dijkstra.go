package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/spatial/grid"
)

// noPred marks a cell without a predecessor: a target, or unreachable.
const noPred = -1

// Build computes the distance from every cell of cost to its nearest target.
//
// Preconditions, checked in order when Options.Checks is true:
//  1. cost must be non-nil (ErrInvalidShape).
//  2. Every finite cost must be > 0; NaN and -Inf are rejected (ErrInvalidCost).
//  3. Every target must lie within [0, rows) × [0, cols) (ErrOutOfBounds).
//
// No partial field is returned on failure.
//
// Complexity:
//
//   - Time:  O(N log N), N = rows×cols (each cell has at most 8 edges).
//   - Space: O(N).
func Build(cost *grid.Grid, targets []grid.Cell, opts ...Option) (*Field, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cost == nil {
		return nil, fmt.Errorf("dijkstra: cost grid is nil: %w", ErrInvalidShape)
	}
	if cfg.Checks {
		if err := grid.ValidateCosts(cost); err != nil {
			return nil, fmt.Errorf("dijkstra: %w", err)
		}
		if err := grid.ValidateCells(cost, targets); err != nil {
			return nil, fmt.Errorf("dijkstra: target: %w", err)
		}
	}

	r := newRunner(cost, cfg)
	r.seed(targets)
	r.process()

	return &Field{
		rows: r.rows,
		cols: r.cols,
		dist: r.dist,
		prev: r.prev,
	}, nil
}

// BuildFrom is Build over plain nested slices. Costs and target coordinates
// may use any numeric representation; float coordinates are floored.
func BuildFrom[T, U grid.Number](cost [][]T, targets [][2]U, opts ...Option) (*Field, error) {
	g, err := grid.From2D(cost)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}

	return Build(g, grid.CellsOf(targets), opts...)
}

// runner holds the mutable state for a single Build.
type runner struct {
	rows, cols  int
	cost        []float64 // read-only view of the caller's grid
	dist        []float64 // best-known distance per cell
	prev        []int     // predecessor index per cell, noPred if none
	settled     []bool    // distance is final
	pq          nodePQ
	maxDistance float64
}

func newRunner(cost *grid.Grid, cfg Options) *runner {
	n := cost.Len()
	r := &runner{
		rows:        cost.Rows(),
		cols:        cost.Cols(),
		cost:        cost.Raw(),
		dist:        make([]float64, n),
		prev:        make([]int, n),
		settled:     make([]bool, n),
		pq:          make(nodePQ, 0, n),
		maxDistance: cfg.MaxDistance,
	}
	inf := math.Inf(1)
	for i := range r.dist {
		r.dist[i] = inf
		r.prev[i] = noPred
	}

	return r
}

// seed places every target at distance 0. Targets outside the grid can only
// reach here with checks disabled; they are dropped.
func (r *runner) seed(targets []grid.Cell) {
	heap.Init(&r.pq)
	for _, t := range targets {
		if t.Row < 0 || t.Row >= r.rows || t.Col < 0 || t.Col >= r.cols {
			continue
		}
		idx := t.Row*r.cols + t.Col
		if r.dist[idx] == 0 {
			continue // duplicate target
		}
		r.dist[idx] = 0
		heap.Push(&r.pq, nodeItem{idx: idx, dist: 0})
	}
}

// process pops the closest unsettled cell until the heap drains.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.idx
		if r.settled[u] {
			continue // stale entry
		}
		r.settled[u] = true
		r.relax(u, item.dist)
	}
}

// relax offers each in-bounds, passable neighbour of u the distance
// d + cost[neighbour] × step, where step is 1 or √2.
func (r *runner) relax(u int, d float64) {
	ur, uc := u/r.cols, u%r.cols
	for k, off := range grid.NeighborOffsets8() {
		vr, vc := ur+off[0], uc+off[1]
		if vr < 0 || vr >= r.rows || vc < 0 || vc >= r.cols {
			continue
		}
		v := vr*r.cols + vc
		if r.settled[v] {
			continue
		}
		c := r.cost[v]
		if math.IsInf(c, 1) {
			continue
		}
		nd := d + c*stepLength(k)
		if nd > r.maxDistance || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, nodeItem{idx: v, dist: nd})
	}
}

// stepLength returns the move length for neighbour slot k of
// grid.NeighborOffsets8: diagonals sit at odd slots.
func stepLength(k int) float64 {
	if k&1 == 1 {
		return math.Sqrt2
	}

	return 1
}
