package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid without rows or columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// ForwardOffsets holds the right and bottom neighbor offsets {dx, dy}.
var ForwardOffsets = [2][2]int{{1, 0}, {0, 1}}

// Grid is a width×height lattice. It is immutable once built.
type Grid struct {
	Width, Height int
}
