package grid

import "fmt"

// Point addresses a cell by row and column. Points may lie outside any
// grid; use Grid.Contains before reading through one.
type Point struct {
	Row, Col int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{Row: p.Row + q.Row, Col: p.Col + q.Col} }

// Step returns the neighbour of p in direction d.
func (p Point) Step(d Direction) Point { return p.Add(d.Delta()) }

// Move returns the point n steps from p in direction d.
func (p Point) Move(d Direction, n int) Point {
	dd := d.Delta()
	return Point{Row: p.Row + n*dd.Row, Col: p.Col + n*dd.Col}
}

// Manhattan returns the L1 distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

func (p Point) String() string { return fmt.Sprintf("(r%d, c%d)", p.Row, p.Col) }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Direction is one of the four orthogonal headings.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the four headings clockwise from North.
var Directions = [4]Direction{North, East, South, West}

// Delta returns the unit step for d (rows grow southward).
func (d Direction) Delta() Point {
	switch d {
	case North:
		return Point{Row: -1}
	case East:
		return Point{Col: 1}
	case South:
		return Point{Row: 1}
	default:
		return Point{Col: -1}
	}
}

// Left returns the heading after a 90° counter-clockwise turn.
func (d Direction) Left() Direction { return (d + 3) % 4 }

// Right returns the heading after a 90° clockwise turn.
func (d Direction) Right() Direction { return (d + 1) % 4 }

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = []Point{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = []Point{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// Offsets returns the neighbour offsets for conn, clockwise from North.
func (conn Connectivity) Offsets() []Point {
	if conn == Conn8 {
		return offsets8
	}
	return offsets4
}

// Neighbors returns the in-bounds neighbours of p under conn, clockwise
// from North.
// Complexity: O(d), d = 4 or 8.
func (g *Grid[T]) Neighbors(p Point, conn Connectivity) []Point {
	offs := conn.Offsets()
	out := make([]Point, 0, len(offs))
	for _, d := range offs {
		q := p.Add(d)
		if g.Contains(q) {
			out = append(out, q)
		}
	}

	return out
}
