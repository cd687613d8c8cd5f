package days

import (
	"github.com/SBuercklin/AdventOfCode23/grid"
	"github.com/SBuercklin/AdventOfCode23/parse"
)

// Day13Part1 summarises the mirror line of every pattern: columns left of
// a vertical line, plus 100 times the rows above a horizontal one.
func Day13Part1(lines []string) (int, error) {
	return summariseMirrors(lines, 0)
}

// Day13Part2 summarises the mirror line that appears once exactly one
// smudge is fixed.
func Day13Part2(lines []string) (int, error) {
	return summariseMirrors(lines, 1)
}

func summariseMirrors(lines []string, smudges int) (int, error) {
	total := 0
	for i, block := range parse.Blocks(lines) {
		g, err := grid.Runes(block)
		if err != nil {
			return 0, parseErrorf("pattern %d: %v", i+1, err)
		}
		if k, ok := mirrorRow(g, smudges); ok {
			total += 100 * k
			continue
		}
		if k, ok := mirrorRow(g.Transpose(), smudges); ok {
			total += k
			continue
		}
		return 0, parseErrorf("pattern %d has no mirror line", i+1)
	}

	return total, nil
}

// mirrorRow finds k such that rows [0,k) reflect onto rows [k, 2k) with
// exactly smudges differing cells.
func mirrorRow(g *grid.Grid[rune], smudges int) (int, bool) {
	for k := 1; k < g.Rows(); k++ {
		diff := 0
		for d := 0; k-1-d >= 0 && k+d < g.Rows() && diff <= smudges; d++ {
			a, b := g.Row(k-1-d), g.Row(k+d)
			for c := range a {
				if a[c] != b[c] {
					diff++
				}
			}
		}
		if diff == smudges {
			return k, true
		}
	}

	return 0, false
}
