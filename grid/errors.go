package grid

import "errors"

var (
	// ErrEmptyImage indicates a grid with no rows or no columns.
	ErrEmptyImage = errors.New("grid: image must have at least one row and one column")
	// ErrNonRectangular indicates input rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfRange indicates a coordinate or rectangle outside the grid.
	ErrOutOfRange = errors.New("grid: index out of range")
	// ErrShapeMismatch indicates operands with different dimensions.
	ErrShapeMismatch = errors.New("grid: shape mismatch")
	// ErrNilImage indicates a nil *Image argument.
	ErrNilImage = errors.New("grid: image is nil")
)
