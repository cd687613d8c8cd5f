package grid

// Lane is a mutable, index-based view of one row or column of a Grid.
// It stores only the grid pointer and (start, stride, n); every access
// computes a flat offset into the grid's backing slice, so any number of
// lanes over the same grid can be written one after another without
// holding overlapping references to element storage.
type Lane[T any] struct {
	g      *Grid[T]
	start  int // flat offset of element 0
	stride int // distance between consecutive elements (may be negative)
	n      int // number of elements
}

// RowLane returns a lane over row r, left to right.
// Panics with ErrOutOfRange if r is not a valid row.
func (g *Grid[T]) RowLane(r int) Lane[T] {
	if r < 0 || r >= g.rows {
		panic(indexErrorf("RowLane", r, 0))
	}

	return Lane[T]{g: g, start: r * g.cols, stride: 1, n: g.cols}
}

// ColLane returns a lane over column c, top to bottom.
// Panics with ErrOutOfRange if c is not a valid column.
func (g *Grid[T]) ColLane(c int) Lane[T] {
	if c < 0 || c >= g.cols {
		panic(indexErrorf("ColLane", 0, c))
	}

	return Lane[T]{g: g, start: c, stride: g.cols, n: g.rows}
}

// Lane returns a lane whose element 0 lies on edge d, with indices
// increasing away from that edge. index selects the column for North/South
// and the row for East/West.
func (g *Grid[T]) Lane(d Direction, index int) Lane[T] {
	switch d {
	case North:
		return g.ColLane(index)
	case South:
		return g.ColLane(index).Reverse()
	case West:
		return g.RowLane(index)
	default:
		return g.RowLane(index).Reverse()
	}
}

// Len returns the number of elements in the lane.
func (l Lane[T]) Len() int { return l.n }

// pos maps lane index i to a flat offset, panicking on invalid i.
func (l Lane[T]) pos(i int) int {
	if i < 0 || i >= l.n {
		panic(indexErrorf("Lane", i, l.n))
	}

	return l.start + i*l.stride
}

// At returns element i of the lane.
func (l Lane[T]) At(i int) T { return l.g.data[l.pos(i)] }

// Set writes element i of the lane through to the grid.
func (l Lane[T]) Set(i int, v T) { l.g.data[l.pos(i)] = v }

// Reverse returns the same lane read from the other end.
func (l Lane[T]) Reverse() Lane[T] {
	return Lane[T]{g: l.g, start: l.start + (l.n-1)*l.stride, stride: -l.stride, n: l.n}
}

// Values returns a snapshot copy of the lane's elements.
func (l Lane[T]) Values() []T {
	out := make([]T, l.n)
	for i := range out {
		out[i] = l.At(i)
	}

	return out
}
