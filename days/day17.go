package days

import (
	"github.com/SBuercklin/AdventOfCode23/dijkstra"
	"github.com/SBuercklin/AdventOfCode23/grid"
)

// crucible is a search state: the block reached and the heading of the
// straight run that reached it. Every move turns, then runs straight.
type crucible struct {
	at      grid.Point
	heading grid.Direction
}

// Day17Part1 returns the least heat loss from the top-left to the
// bottom-right block moving at most three blocks straight.
func Day17Part1(lines []string) (int, error) {
	return leastHeatLoss(lines, 1, 3)
}

// Day17Part2 is Day17Part1 for ultra crucibles: between four and ten
// blocks straight before turning or stopping.
func Day17Part2(lines []string) (int, error) {
	return leastHeatLoss(lines, 4, 10)
}

func leastHeatLoss(lines []string, minRun, maxRun int) (int, error) {
	g, err := grid.Parse(lines, func(_, _ int, ch rune) (int64, error) {
		if ch < '1' || ch > '9' {
			return 0, errUnknownTile
		}
		return int64(ch - '0'), nil
	})
	if err != nil {
		return 0, parseErrorf("heat map: %v", err)
	}

	next := func(s crucible) []dijkstra.Edge[crucible] {
		var out []dijkstra.Edge[crucible]
		for _, d := range []grid.Direction{s.heading.Left(), s.heading.Right()} {
			var cost int64
			p := s.at
			for k := 1; k <= maxRun; k++ {
				p = p.Step(d)
				if !g.Contains(p) {
					break
				}
				cost += g.Cell(p)
				if k >= minRun {
					out = append(out, dijkstra.Edge[crucible]{To: crucible{at: p, heading: d}, Cost: cost})
				}
			}
		}
		return out
	}
	end := grid.Point{Row: g.Rows() - 1, Col: g.Cols() - 1}
	// Turning from east or south covers both first moves.
	starts := []crucible{{heading: grid.East}, {heading: grid.South}}
	loss, _, err := dijkstra.Shortest(starts, next, func(s crucible) bool { return s.at == end })
	if err != nil {
		return 0, err
	}

	return int(loss), nil
}
