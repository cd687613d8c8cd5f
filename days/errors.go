package days

import (
	"errors"
	"fmt"
)

// Sentinel errors for puzzle solving.
var (
	// ErrParse indicates the puzzle input could not be read.
	ErrParse = errors.New("days: malformed puzzle input")

	// ErrNotImplemented indicates an unknown day or part.
	ErrNotImplemented = errors.New("days: invalid problem day or part")

	// ErrNoInput indicates that no puzzle input was supplied.
	ErrNoInput = errors.New("days: no valid input provided")
)

// errUnknownTile is wrapped by grid parsers on an unexpected character.
var errUnknownTile = errors.New("unknown tile")

// parseErrorf wraps ErrParse with a formatted description.
func parseErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(format, args...))
}
