package gridgraph

import (
	"errors"

	"github.com/katalvlaran/spatial/grid"
)

var (
	// ErrInvalidShape indicates a nil grid or grids of differing shape.
	ErrInvalidShape = grid.ErrInvalidShape
	// ErrOutOfBounds indicates a start cell outside the grid.
	ErrOutOfBounds = grid.ErrOutOfBounds
	// ErrInvalidArgument indicates a malformed scalar argument.
	ErrInvalidArgument = grid.ErrInvalidArgument
	// ErrEmptyInput indicates a bounding box request over no cells.
	ErrEmptyInput = errors.New("gridgraph: empty input")
)
