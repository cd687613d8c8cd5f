package days

import (
	"github.com/SBuercklin/AdventOfCode23/bfs"
	"github.com/SBuercklin/AdventOfCode23/grid"
)

var pipeEnds = map[rune][2]grid.Direction{
	'|': {grid.North, grid.South},
	'-': {grid.East, grid.West},
	'L': {grid.North, grid.East},
	'J': {grid.North, grid.West},
	'7': {grid.South, grid.West},
	'F': {grid.South, grid.East},
}

// pipeMaze is the sketch with S replaced by the pipe it stands on.
type pipeMaze struct {
	tiles *grid.Grid[rune]
	start grid.Point
}

func (m pipeMaze) opens(p grid.Point, d grid.Direction) bool {
	ends, ok := pipeEnds[m.tiles.Cell(p)]
	return ok && (ends[0] == d || ends[1] == d)
}

// next returns the tiles joined to p by pipe on both sides.
func (m pipeMaze) next(p grid.Point) []grid.Point {
	var out []grid.Point
	for _, d := range grid.Directions {
		q := p.Step(d)
		if m.tiles.Contains(q) && m.opens(p, d) && m.opens(q, d.Opposite()) {
			out = append(out, q)
		}
	}

	return out
}

func (m pipeMaze) loop() (*bfs.Result[grid.Point], error) {
	return bfs.Search([]grid.Point{m.start}, m.next)
}

// Day10Part1 returns the distance along the loop to the tile farthest from S.
func Day10Part1(lines []string) (int, error) {
	m, err := parsePipeMaze(lines)
	if err != nil {
		return 0, err
	}
	res, err := m.loop()
	if err != nil {
		return 0, err
	}

	return res.MaxDepth(), nil
}

// Day10Part2 counts tiles enclosed by the loop. Scanning each row, the
// inside flag flips on every loop tile with a northward connection.
func Day10Part2(lines []string) (int, error) {
	m, err := parsePipeMaze(lines)
	if err != nil {
		return 0, err
	}
	res, err := m.loop()
	if err != nil {
		return 0, err
	}
	enclosed := 0
	for r := 0; r < m.tiles.Rows(); r++ {
		inside := false
		for c := 0; c < m.tiles.Cols(); c++ {
			p := grid.Point{Row: r, Col: c}
			switch {
			case !res.Reached(p):
				if inside {
					enclosed++
				}
			case m.opens(p, grid.North):
				inside = !inside
			}
		}
	}

	return enclosed, nil
}

func parsePipeMaze(lines []string) (pipeMaze, error) {
	g, err := grid.Runes(lines)
	if err != nil {
		return pipeMaze{}, parseErrorf("pipe maze: %v", err)
	}
	start, ok := g.Find(func(r rune) bool { return r == 'S' })
	if !ok {
		return pipeMaze{}, parseErrorf("pipe maze has no S")
	}
	var joined []grid.Direction
	for _, d := range grid.Directions {
		q := start.Step(d)
		if !g.Contains(q) {
			continue
		}
		if ends, ok := pipeEnds[g.Cell(q)]; ok && (ends[0] == d.Opposite() || ends[1] == d.Opposite()) {
			joined = append(joined, d)
		}
	}
	if len(joined) != 2 {
		return pipeMaze{}, parseErrorf("S at %v joins %d pipes, want 2", start, len(joined))
	}
	for r, ends := range pipeEnds {
		if ends == [2]grid.Direction{joined[0], joined[1]} || ends == [2]grid.Direction{joined[1], joined[0]} {
			g.SetCell(start, r)
			break
		}
	}

	return pipeMaze{tiles: g, start: start}, nil
}
