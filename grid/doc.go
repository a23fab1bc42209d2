// SPDX-License-Identifier: MIT

// Package grid is the shared 2D numeric array used by every spatial engine
// in this module: movement-cost grids, distance fields, placement and
// pathing masks, creep and avoid masks.
//
// What:
//
//   - Grid is a row-major rows×cols array of float64 in one flat slice.
//   - Cell is an integer (row, col) index; Point is a continuous coordinate
//     that floors to a Cell.
//   - From2D accepts [][]T for any integer or floating T, so callers can
//     hand over uint8 masks and float costs through the same door.
//   - The error taxonomy shared by all engines lives here: ErrInvalidShape,
//     ErrInvalidCost, ErrOutOfBounds, ErrInvalidArgument.
//   - Single-point lookups (threshold and membership queries) in lookup.go.
//
// Ownership:
//
//   - Engines never mutate a Grid they receive. Everything an engine returns
//     is freshly allocated and belongs to the caller.
//
// Complexity:
//
//   - At/Set/InBounds/Index: O(1).
//   - From2D/Clone:          O(rows×cols) time and memory.
//   - Validators:            O(1) for shape checks, O(rows×cols) for value scans.
package grid
