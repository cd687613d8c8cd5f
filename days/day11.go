package days

import (
	"github.com/SBuercklin/AdventOfCode23/grid"
)

// Day11Part1 sums galaxy pair distances with every empty row and column
// doubled.
func Day11Part1(lines []string) (int, error) {
	return Expand(lines, 2)
}

// Day11Part2 sums galaxy pair distances with every empty row and column
// grown to a million.
func Day11Part2(lines []string) (int, error) {
	return Expand(lines, 1_000_000)
}

// Expand sums the Manhattan distance over all galaxy pairs after each empty
// row and column is replaced by factor copies of itself.
func Expand(lines []string, factor int) (int, error) {
	g, err := grid.Runes(lines)
	if err != nil {
		return 0, parseErrorf("image: %v", err)
	}
	if factor < 1 {
		return 0, parseErrorf("expansion factor %d", factor)
	}
	rowUsed := make([]bool, g.Rows())
	colUsed := make([]bool, g.Cols())
	var galaxies []grid.Point
	for p, v := range g.All() {
		if v == '#' {
			galaxies = append(galaxies, p)
			rowUsed[p.Row] = true
			colUsed[p.Col] = true
		}
	}
	rowAt := expandedCoords(rowUsed, factor)
	colAt := expandedCoords(colUsed, factor)

	total := 0
	for i, a := range galaxies {
		pa := grid.Point{Row: rowAt[a.Row], Col: colAt[a.Col]}
		for _, b := range galaxies[i+1:] {
			total += pa.Manhattan(grid.Point{Row: rowAt[b.Row], Col: colAt[b.Col]})
		}
	}

	return total, nil
}

// expandedCoords maps each original index to its index after expansion.
func expandedCoords(used []bool, factor int) []int {
	out := make([]int, len(used))
	at := 0
	for i, u := range used {
		out[i] = at
		if u {
			at++
		} else {
			at += factor
		}
	}

	return out
}
