package grid

import "errors"

var (
	// ErrBadGrid indicates a grid with a non-positive number of columns (Px) or rows (Py).
	ErrBadGrid = errors.New("grid: grid dimensions must be > 0")
	// ErrBadShape indicates a matrix with a non-positive number of rows or columns.
	ErrBadShape = errors.New("grid: matrix dimensions must be > 0")
	// ErrOutOfRange indicates a grid cell or matrix coordinate outside the layout.
	ErrOutOfRange = errors.New("grid: index out of range")
	// ErrShapeMismatch indicates that a matrix does not match the layout it is scanned with.
	ErrShapeMismatch = errors.New("grid: matrix shape does not match layout")
)
