package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/spatial/grid"
)

// Sentinel errors returned by Build. They alias the grid taxonomy so callers
// can match on either package's name.
var (
	// ErrInvalidShape indicates a nil or malformed cost grid.
	ErrInvalidShape = grid.ErrInvalidShape

	// ErrInvalidCost indicates a finite cost ≤ 0, or a NaN/-Inf cost.
	ErrInvalidCost = grid.ErrInvalidCost

	// ErrOutOfBounds indicates a target outside the cost grid.
	ErrOutOfBounds = grid.ErrOutOfBounds

	// ErrBadMaxDistance indicates MaxDistance was set negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadSnapRadius indicates a negative or NaN snap radius.
	ErrBadSnapRadius = errors.New("dijkstra: snap radius must be non-negative")
)

// DefaultSnapRadius is how far, in grid units, Path looks for a reachable
// cell when the requested start is unreachable.
const DefaultSnapRadius = 5.0

// Options configures Build.
//
// Checks      – validate costs and targets before running. With checks off,
//
//	out-of-bounds targets are ignored and invalid costs give unspecified distances.
//
// MaxDistance – cells whose distance would exceed this stay +Inf.
type Options struct {
	Checks      bool
	MaxDistance float64
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// DefaultOptions returns checks enabled and no distance cap.
func DefaultOptions() Options {
	return Options{
		Checks:      true,
		MaxDistance: math.Inf(1),
	}
}

// WithChecks toggles input validation.
func WithChecks(enabled bool) Option {
	return func(o *Options) {
		o.Checks = enabled
	}
}

// WithMaxDistance caps how far the search expands. Panics on a negative or
// NaN value.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// Descent selects how Path picks the next cell.
type Descent int

const (
	// DescentPredecessor follows the neighbour that produced each cell's
	// distance during Build. Summing entry costs along the path reproduces
	// the start cell's distance exactly.
	DescentPredecessor Descent = iota

	// DescentGreedy moves to the neighbour with the strictly smallest
	// distance, first in N, NE, E, SE, S, SW, W, NW order on ties.
	DescentGreedy
)

// PathOptions configures Field.Path.
type PathOptions struct {
	SnapRadius float64
	Descent    Descent
}

// PathOption represents a functional option for configuring Field.Path.
type PathOption func(*PathOptions)

// DefaultPathOptions returns DefaultSnapRadius and predecessor descent.
func DefaultPathOptions() PathOptions {
	return PathOptions{
		SnapRadius: DefaultSnapRadius,
		Descent:    DescentPredecessor,
	}
}

// WithSnapRadius sets the start-recovery search radius. Zero disables
// snapping. Panics on a negative or NaN value.
func WithSnapRadius(r float64) PathOption {
	if r < 0 || math.IsNaN(r) {
		panic(ErrBadSnapRadius.Error())
	}

	return func(o *PathOptions) {
		o.SnapRadius = r
	}
}

// WithGreedyDescent makes Path follow the steepest neighbouring distance
// instead of the recorded predecessors.
func WithGreedyDescent() PathOption {
	return func(o *PathOptions) {
		o.Descent = DescentGreedy
	}
}
