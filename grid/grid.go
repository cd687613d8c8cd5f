package grid

import (
	"fmt"
	"iter"
	"strings"

	"tailscale.com/util/deephash"
)

// Grid is a dense rows×cols container of T values stored in row-major order.
// The zero value is not usable; build one with New, FromRows or Parse.
type Grid[T any] struct {
	rows, cols int // number of rows and columns
	data       []T // flat backing storage, len(data) == rows*cols
}

// New creates a rows×cols grid filled with the zero value of T.
// Returns ErrBadShape if either dimension is non-positive.
// Complexity: O(rows*cols).
func New[T any](rows, cols int) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("grid.New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Grid[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// FromRows flattens a non-empty rectangular slice of rows into a new Grid.
// The input is copied; later changes to rows do not affect the grid.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs from the first.
// Complexity: O(rows*cols).
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), w, ErrNonRectangular)
		}
	}
	data := make([]T, 0, h*w)
	for _, row := range rows {
		data = append(data, row...)
	}

	return &Grid[T]{rows: h, cols: w, data: data}, nil
}

// Parse builds a grid from rectangular text, one line per row, converting
// every rune with cell. Errors from cell are wrapped with their position.
func Parse[T any](lines []string, cell func(row, col int, ch rune) (T, error)) (*Grid[T], error) {
	rows := make([][]T, 0, len(lines))
	for r, line := range lines {
		runes := []rune(line)
		row := make([]T, len(runes))
		for c, ch := range runes {
			v, err := cell(r, c, ch)
			if err != nil {
				return nil, fmt.Errorf("grid: cell (%d,%d) %q: %w", r, c, ch, err)
			}
			row[c] = v
		}
		rows = append(rows, row)
	}

	return FromRows(rows)
}

// Runes builds a grid holding the characters of lines unchanged.
func Runes(lines []string) (*Grid[rune], error) {
	return Parse(lines, func(_, _ int, ch rune) (rune, error) { return ch, nil })
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// Len returns rows*cols.
func (g *Grid[T]) Len() int { return len(g.data) }

// InBounds reports whether (row, col) addresses a cell. Negative indices
// are simply out of bounds, so callers may probe neighbours freely.
// Complexity: O(1).
func (g *Grid[T]) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Contains is InBounds for a Point.
func (g *Grid[T]) Contains(p Point) bool {
	return g.InBounds(p.Row, p.Col)
}

// offset computes the flat index of (row, col); bounds are not checked.
func (g *Grid[T]) offset(row, col int) int {
	return row*g.cols + col
}

// At returns the element at (row, col).
// It panics with an error wrapping ErrOutOfRange if the position is outside
// the grid; guard with InBounds when walking off the edges.
func (g *Grid[T]) At(row, col int) T {
	if !g.InBounds(row, col) {
		panic(indexErrorf("At", row, col))
	}

	return g.data[g.offset(row, col)]
}

// Set assigns v at (row, col). It panics like At on invalid positions.
func (g *Grid[T]) Set(row, col int, v T) {
	if !g.InBounds(row, col) {
		panic(indexErrorf("Set", row, col))
	}
	g.data[g.offset(row, col)] = v
}

// Get is the checked form of At.
func (g *Grid[T]) Get(row, col int) (T, error) {
	if !g.InBounds(row, col) {
		var zero T
		return zero, indexErrorf("Get", row, col)
	}

	return g.data[g.offset(row, col)], nil
}

// Put is the checked form of Set.
func (g *Grid[T]) Put(row, col int, v T) error {
	if !g.InBounds(row, col) {
		return indexErrorf("Put", row, col)
	}
	g.data[g.offset(row, col)] = v

	return nil
}

// Cell returns the element at p. Panics like At.
func (g *Grid[T]) Cell(p Point) T { return g.At(p.Row, p.Col) }

// SetCell assigns v at p. Panics like Set.
func (g *Grid[T]) SetCell(p Point, v T) { g.Set(p.Row, p.Col, v) }

// Row returns a copy of row r.
// Panics with ErrOutOfRange if r is not a valid row.
// Complexity: O(cols).
func (g *Grid[T]) Row(r int) []T {
	if r < 0 || r >= g.rows {
		panic(indexErrorf("Row", r, 0))
	}
	out := make([]T, g.cols)
	copy(out, g.data[r*g.cols:(r+1)*g.cols])

	return out
}

// Col returns a copy of column c, top to bottom.
// Panics with ErrOutOfRange if c is not a valid column.
// Complexity: O(rows).
func (g *Grid[T]) Col(c int) []T {
	if c < 0 || c >= g.cols {
		panic(indexErrorf("Col", 0, c))
	}
	out := make([]T, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = g.data[g.offset(r, c)]
	}

	return out
}

// AllRows returns every row as an independent slice.
func (g *Grid[T]) AllRows() [][]T {
	out := make([][]T, g.rows)
	for r := range out {
		out[r] = g.Row(r)
	}

	return out
}

// AllCols returns every column as an independent slice.
func (g *Grid[T]) AllCols() [][]T {
	out := make([][]T, g.cols)
	for c := range out {
		out[c] = g.Col(c)
	}

	return out
}

// Fill sets every element to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone returns a deep copy that shares no storage with g.
// Complexity: O(rows*cols).
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([]T, len(g.data))
	copy(data, g.data)

	return &Grid[T]{rows: g.rows, cols: g.cols, data: data}
}

// Transpose returns a new cols×rows grid with out.At(c, r) == g.At(r, c).
func (g *Grid[T]) Transpose() *Grid[T] {
	out := &Grid[T]{rows: g.cols, cols: g.rows, data: make([]T, len(g.data))}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			out.data[out.offset(c, r)] = g.data[g.offset(r, c)]
		}
	}

	return out
}

// All iterates over every cell in row-major order.
func (g *Grid[T]) All() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for i, v := range g.data {
			if !yield(Point{Row: i / g.cols, Col: i % g.cols}, v) {
				return
			}
		}
	}
}

// Find returns the first cell, in row-major order, for which match is true.
func (g *Grid[T]) Find(match func(T) bool) (Point, bool) {
	for p, v := range g.All() {
		if match(v) {
			return p, true
		}
	}

	return Point{}, false
}

// Count returns how many cells satisfy match.
func (g *Grid[T]) Count(match func(T) bool) int {
	n := 0
	for _, v := range g.data {
		if match(v) {
			n++
		}
	}

	return n
}

// String renders the grid one row per line with no separator between
// elements. Runes are written as characters, anything else via fmt.Sprint.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			switch v := any(g.data[g.offset(r, c)]).(type) {
			case rune:
				sb.WriteRune(v)
			default:
				sb.WriteString(fmt.Sprint(v))
			}
		}
	}

	return sb.String()
}

// gridKey is the hashed view of a grid: shape plus contents.
type gridKey[T any] struct {
	Rows, Cols int
	Data       []T
}

// Hash returns a canonical hash of the grid's shape and contents.
// Equal grids hash equally, so the Sum can key a map of seen states.
// Complexity: O(rows*cols).
func (g *Grid[T]) Hash() deephash.Sum {
	k := gridKey[T]{Rows: g.rows, Cols: g.cols, Data: g.data}

	return deephash.Hash(&k)
}
