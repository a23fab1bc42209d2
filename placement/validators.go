package placement

import (
	"fmt"

	"github.com/katalvlaran/spatial/grid"
)

// ValidateFootprint checks CanPlace arguments, in order:
//  1. placement and pathing are non-nil and share a shape; creep, when
//     non-nil, shares it too (ErrInvalidShape).
//  2. size is positive on both axes (ErrInvalidArgument).
//  3. origin lies on the grid (ErrOutOfBounds).
func ValidateFootprint(origin Origin, size Size, creep, placementGrid, pathing *grid.Grid) error {
	if err := validateLayers(Layers{Creep: creep, Placement: placementGrid, Pathing: pathing}); err != nil {
		return err
	}
	if size.W <= 0 || size.H <= 0 {
		return fmt.Errorf("placement: size %dx%d: %w", size.W, size.H, ErrInvalidArgument)
	}
	if !placementGrid.InBounds(origin.Y, origin.X) {
		return fmt.Errorf("placement: origin %v outside %dx%d: %w",
			origin, placementGrid.Cols(), placementGrid.Rows(), ErrOutOfBounds)
	}

	return nil
}

// ValidateQuery checks FindLocations arguments, in order:
//  1. layers as in ValidateFootprint, plus Avoid when non-nil (ErrInvalidShape).
//  2. Width, Height and both strides are positive (ErrInvalidArgument).
//  3. the kernel is exactly Height×Width (ErrInvalidShape) and non-empty
//     (ErrInvalidArgument).
//  4. 0 ≤ Min ≤ Max ≤ extent on each axis: columns for XBounds, rows for
//     YBounds (ErrOutOfBounds).
func ValidateQuery(q Query) error {
	if err := validateLayers(q.Layers); err != nil {
		return err
	}
	if q.Width <= 0 || q.Height <= 0 {
		return fmt.Errorf("placement: building size %dx%d: %w", q.Width, q.Height, ErrInvalidArgument)
	}
	if q.XStride <= 0 || q.YStride <= 0 {
		return fmt.Errorf("placement: stride (%d,%d): %w", q.XStride, q.YStride, ErrInvalidArgument)
	}
	if len(q.Kernel.offsets) == 0 {
		return fmt.Errorf("placement: empty kernel: %w", ErrInvalidArgument)
	}
	if q.Kernel.cols != q.Width || q.Kernel.rows != q.Height {
		return fmt.Errorf("placement: kernel is %dx%d, building is %dx%d: %w",
			q.Kernel.cols, q.Kernel.rows, q.Width, q.Height, ErrInvalidShape)
	}
	rows, cols := q.Layers.Placement.Shape()
	if err := validateBounds("x_bounds", q.XBounds, cols); err != nil {
		return err
	}

	return validateBounds("y_bounds", q.YBounds, rows)
}

func validateLayers(l Layers) error {
	names := []string{"placement_grid", "pathing_grid"}
	grids := []*grid.Grid{l.Placement, l.Pathing}
	if l.Creep != nil {
		names, grids = append(names, "creep_grid"), append(grids, l.Creep)
	}
	if l.Avoid != nil {
		names, grids = append(names, "avoid_grid"), append(grids, l.Avoid)
	}
	if err := grid.ValidateSameShape(names, grids...); err != nil {
		return fmt.Errorf("placement: %w", err)
	}

	return nil
}

func validateBounds(name string, b Bounds, extent int) error {
	if b.Min < 0 || b.Max > extent || b.Min > b.Max {
		return fmt.Errorf("placement: %s [%d,%d) outside [0,%d]: %w", name, b.Min, b.Max, extent, ErrOutOfBounds)
	}

	return nil
}
