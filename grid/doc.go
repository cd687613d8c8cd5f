// Package grid provides a dense, row-major 2D container and the small
// amount of geometry that grid puzzles walk with.
//
// What:
//
//   - Grid[T] stores rows*cols elements in one flat slice.
//   - Row/Col return snapshot copies; RowLane/ColLane write through
//     computed flat offsets, so no two mutable views alias the backing slice.
//   - Point, Direction and Connectivity (Conn4/Conn8) describe movement;
//     InBounds and Neighbors let traversals probe off the edges safely.
//   - Hash returns a canonical content hash (deephash) for cycle detection.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrBadShape: malformed shape.
//   - ErrOutOfRange: index outside [0,rows)×[0,cols).
//
// At and Set panic on out-of-range access: callers are expected to guard
// with InBounds. Get and Put are the checked variants.
//
// Complexity:
//
//   - At/Set/Get/Put/InBounds: O(1).
//   - Row/Col/Lane.Values:     O(cols) / O(rows).
//   - Clone/Transpose/Hash:    O(rows·cols).
package grid
