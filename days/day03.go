package days

import (
	"github.com/SBuercklin/AdventOfCode23/grid"
)

// partNumber is a horizontal run of digits in the schematic.
type partNumber struct {
	value int
	cells []grid.Point
}

func isSymbol(r rune) bool { return r != '.' && (r < '0' || r > '9') }

// Day03Part1 sums the numbers adjacent, diagonals included, to a symbol.
func Day03Part1(lines []string) (int, error) {
	g, nums, err := parseSchematic(lines)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, n := range nums {
		if len(n.adjacent(g, isSymbol)) > 0 {
			total += n.value
		}
	}

	return total, nil
}

// Day03Part2 sums the gear ratios: the product of the two numbers touching
// a '*' that touches exactly two numbers. A number may serve several gears.
func Day03Part2(lines []string) (int, error) {
	g, nums, err := parseSchematic(lines)
	if err != nil {
		return 0, err
	}
	touching := make(map[grid.Point][]int)
	for _, n := range nums {
		for _, p := range n.adjacent(g, func(r rune) bool { return r == '*' }) {
			touching[p] = append(touching[p], n.value)
		}
	}
	total := 0
	for _, vs := range touching {
		if len(vs) == 2 {
			total += vs[0] * vs[1]
		}
	}

	return total, nil
}

// adjacent returns the distinct cells around n whose rune satisfies match.
func (n partNumber) adjacent(g *grid.Grid[rune], match func(rune) bool) []grid.Point {
	seen := make(map[grid.Point]bool)
	var out []grid.Point
	for _, c := range n.cells {
		for _, q := range g.Neighbors(c, grid.Conn8) {
			if !seen[q] && match(g.Cell(q)) {
				seen[q] = true
				out = append(out, q)
			}
		}
	}

	return out
}

func parseSchematic(lines []string) (*grid.Grid[rune], []partNumber, error) {
	g, err := grid.Runes(lines)
	if err != nil {
		return nil, nil, parseErrorf("schematic: %v", err)
	}
	var nums []partNumber
	for r := 0; r < g.Rows(); r++ {
		var cur *partNumber
		for c := 0; c < g.Cols(); c++ {
			ch := g.At(r, c)
			if ch < '0' || ch > '9' {
				cur = nil
				continue
			}
			if cur == nil {
				nums = append(nums, partNumber{})
				cur = &nums[len(nums)-1]
			}
			cur.value = cur.value*10 + int(ch-'0')
			cur.cells = append(cur.cells, grid.Point{Row: r, Col: c})
		}
	}

	return g, nums, nil
}
