package days

import (
	"tailscale.com/util/deephash"

	"github.com/SBuercklin/AdventOfCode23/grid"
)

const spinCycles = 1_000_000_000

// Day14Part1 tilts the platform north and returns the load on the north
// support beams.
func Day14Part1(lines []string) (int, error) {
	g, err := parsePlatform(lines)
	if err != nil {
		return 0, err
	}
	tilt(g, grid.North)

	return northLoad(g), nil
}

// Day14Part2 returns the north load after a billion spin cycles. A spin
// tilts north, west, south, then east. Platform states are keyed by their
// hash until one repeats; the remaining spins are skipped by the period.
func Day14Part2(lines []string) (int, error) {
	g, err := parsePlatform(lines)
	if err != nil {
		return 0, err
	}
	seen := map[deephash.Sum]int{g.Hash(): 0}
	loads := []int{northLoad(g)}
	for i := 1; i <= spinCycles; i++ {
		for _, d := range [...]grid.Direction{grid.North, grid.West, grid.South, grid.East} {
			tilt(g, d)
		}
		h := g.Hash()
		if first, ok := seen[h]; ok {
			period := i - first
			return loads[first+(spinCycles-first)%period], nil
		}
		seen[h] = i
		loads = append(loads, northLoad(g))
	}

	return northLoad(g), nil
}

// tilt rolls every 'O' toward edge d until it meets '#', another rock or
// the edge.
func tilt(g *grid.Grid[rune], d grid.Direction) {
	n := g.Cols()
	if d == grid.East || d == grid.West {
		n = g.Rows()
	}
	for i := 0; i < n; i++ {
		lane := g.Lane(d, i)
		free := 0
		for j := 0; j < lane.Len(); j++ {
			switch lane.At(j) {
			case '#':
				free = j + 1
			case 'O':
				lane.Set(j, '.')
				lane.Set(free, 'O')
				free++
			}
		}
	}
}

func northLoad(g *grid.Grid[rune]) int {
	load := 0
	for p, v := range g.All() {
		if v == 'O' {
			load += g.Rows() - p.Row
		}
	}

	return load
}

func parsePlatform(lines []string) (*grid.Grid[rune], error) {
	g, err := grid.Parse(lines, func(_, _ int, ch rune) (rune, error) {
		switch ch {
		case 'O', '#', '.':
			return ch, nil
		}
		return 0, errUnknownTile
	})
	if err != nil {
		return nil, parseErrorf("platform: %v", err)
	}

	return g, nil
}
