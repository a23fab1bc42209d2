// SPDX-License-Identifier: MIT

// Shared shape, bounds and value checks. Each validator returns a wrapped
// sentinel so call sites can add their own context on top.

package grid

import (
	"fmt"
	"math"
)

// ValidatorErrorf tags err with a validator name, keeping errors.Is intact.
func ValidatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures g is non-nil. Returns wrapped ErrInvalidShape.
func ValidateNotNil(name string, g *Grid) error {
	if g == nil {
		return ValidatorErrorf(name, fmt.Errorf("nil grid: %w", ErrInvalidShape))
	}

	return nil
}

// ValidateSameShape ensures every grid is non-nil and shares the shape of
// the first one. names labels the grids for error messages and must be the
// same length as grids.
func ValidateSameShape(names []string, grids ...*Grid) error {
	for i, g := range grids {
		if err := ValidateNotNil(names[i], g); err != nil {
			return err
		}
	}
	if len(grids) < 2 {
		return nil
	}
	rows, cols := grids[0].Shape()
	for i := 1; i < len(grids); i++ {
		r, c := grids[i].Shape()
		if r != rows || c != cols {
			return ValidatorErrorf("ValidateSameShape",
				fmt.Errorf("%s is %dx%d, %s is %dx%d: %w", names[i], r, c, names[0], rows, cols, ErrInvalidShape))
		}
	}

	return nil
}

// ValidateCells ensures every cell lies within g. Row and column are
// checked independently; the first violation is reported.
func ValidateCells(g *Grid, cells []Cell) error {
	for i, cell := range cells {
		if cell.Row < 0 || cell.Row >= g.rows {
			return ValidatorErrorf("ValidateCells",
				fmt.Errorf("cell[%d]=%v row outside [0,%d): %w", i, cell, g.rows, ErrOutOfBounds))
		}
		if cell.Col < 0 || cell.Col >= g.cols {
			return ValidatorErrorf("ValidateCells",
				fmt.Errorf("cell[%d]=%v col outside [0,%d): %w", i, cell, g.cols, ErrOutOfBounds))
		}
	}

	return nil
}

// ValidateCosts ensures every finite entry is strictly positive. NaN and
// -Inf are rejected; +Inf marks an impassable cell and is accepted.
func ValidateCosts(g *Grid) error {
	for i, v := range g.data {
		if math.IsInf(v, 1) {
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, -1) || v <= 0 {
			return ValidatorErrorf("ValidateCosts",
				fmt.Errorf("cost at %v is %v: %w", g.Coordinate(i), v, ErrInvalidCost))
		}
	}

	return nil
}
