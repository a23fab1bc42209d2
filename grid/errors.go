// SPDX-License-Identifier: MIT

package grid

import "errors"

// Every message is prefixed with "grid: ". Callers add context with
// fmt.Errorf("ctx: %w", ErrX) and match with errors.Is.
var (
	// ErrInvalidShape indicates an empty or jagged grid, or grids whose
	// shapes must match but do not.
	ErrInvalidShape = errors.New("grid: invalid shape")

	// ErrInvalidCost indicates a non-positive finite, NaN or -Inf entry
	// in a movement-cost grid.
	ErrInvalidCost = errors.New("grid: invalid cost")

	// ErrOutOfBounds indicates a cell, target or scan bound outside the grid extent.
	ErrOutOfBounds = errors.New("grid: out of bounds")

	// ErrInvalidArgument indicates a malformed size, stride or tuple.
	ErrInvalidArgument = errors.New("grid: invalid argument")
)
