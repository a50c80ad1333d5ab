package grid

import "errors"

var (
	// ErrInvalidDimension indicates a non-positive row or column count.
	ErrInvalidDimension = errors.New("grid: rows and cols must be positive")
	// ErrOutOfBounds indicates a coordinate outside the current grid extent.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)
