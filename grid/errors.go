// Package grid: sentinel error set.
// Shape errors are returned by constructors; index errors are returned by
// the checked accessors (Get/Put) and carried inside the panic value of the
// unchecked ones (At/Set). Match with errors.Is.
package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates the input has no rows or its first row is empty.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrBadShape is returned when requested dimensions are non-positive.
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("grid: index out of range")
)

// indexErrorf wraps ErrOutOfRange with method and coordinate context.
func indexErrorf(method string, row, col int) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
}
