package days

import (
	"github.com/SBuercklin/AdventOfCode23/bfs"
	"github.com/SBuercklin/AdventOfCode23/grid"
)

// beam is a light beam standing on a tile, heading in a direction.
type beam struct {
	at      grid.Point
	heading grid.Direction
}

// deflect returns the headings leaving a tile entered with heading d.
func deflect(tile rune, d grid.Direction) []grid.Direction {
	switch tile {
	case '/':
		// East<->North, West<->South
		if d == grid.East || d == grid.West {
			return []grid.Direction{d.Left()}
		}
		return []grid.Direction{d.Right()}
	case '\\':
		if d == grid.East || d == grid.West {
			return []grid.Direction{d.Right()}
		}
		return []grid.Direction{d.Left()}
	case '|':
		if d == grid.East || d == grid.West {
			return []grid.Direction{grid.North, grid.South}
		}
	case '-':
		if d == grid.North || d == grid.South {
			return []grid.Direction{grid.East, grid.West}
		}
	}

	return []grid.Direction{d}
}

func energised(g *grid.Grid[rune], start beam) (int, error) {
	next := func(b beam) []beam {
		var out []beam
		for _, d := range deflect(g.Cell(b.at), b.heading) {
			if q := b.at.Step(d); g.Contains(q) {
				out = append(out, beam{at: q, heading: d})
			}
		}
		return out
	}
	res, err := bfs.Search([]beam{start}, next)
	if err != nil {
		return 0, err
	}
	tiles := make(map[grid.Point]bool)
	for _, b := range res.Order {
		tiles[b.at] = true
	}

	return len(tiles), nil
}

// Day16Part1 counts the tiles energised by a beam entering the top-left
// tile heading east.
func Day16Part1(lines []string) (int, error) {
	g, err := parseContraption(lines)
	if err != nil {
		return 0, err
	}

	return energised(g, beam{heading: grid.East})
}

// Day16Part2 returns the most tiles any beam entering from an edge
// energises.
func Day16Part2(lines []string) (int, error) {
	g, err := parseContraption(lines)
	if err != nil {
		return 0, err
	}
	var starts []beam
	for c := 0; c < g.Cols(); c++ {
		starts = append(starts,
			beam{at: grid.Point{Row: 0, Col: c}, heading: grid.South},
			beam{at: grid.Point{Row: g.Rows() - 1, Col: c}, heading: grid.North})
	}
	for r := 0; r < g.Rows(); r++ {
		starts = append(starts,
			beam{at: grid.Point{Row: r, Col: 0}, heading: grid.East},
			beam{at: grid.Point{Row: r, Col: g.Cols() - 1}, heading: grid.West})
	}
	best := 0
	for _, s := range starts {
		n, err := energised(g, s)
		if err != nil {
			return 0, err
		}
		best = max(best, n)
	}

	return best, nil
}

func parseContraption(lines []string) (*grid.Grid[rune], error) {
	g, err := grid.Parse(lines, func(_, _ int, ch rune) (rune, error) {
		switch ch {
		case '.', '/', '\\', '|', '-':
			return ch, nil
		}
		return 0, errUnknownTile
	})
	if err != nil {
		return nil, parseErrorf("contraption: %v", err)
	}

	return g, nil
}
