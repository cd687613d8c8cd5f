package days

import (
	"strconv"
	"strings"

	"github.com/SBuercklin/AdventOfCode23/grid"
	"github.com/SBuercklin/AdventOfCode23/parse"
)

type digStep struct {
	dir grid.Direction
	n   int
}

var digDirs = map[byte]grid.Direction{
	'R': grid.East, 'D': grid.South, 'L': grid.West, 'U': grid.North,
	'0': grid.East, '1': grid.South, '2': grid.West, '3': grid.North,
}

// Day18Part1 returns the lagoon volume dug by the plan's direction and
// length columns.
func Day18Part1(lines []string) (int, error) {
	steps, err := parseDigPlan(lines, false)
	if err != nil {
		return 0, err
	}

	return lagoonArea(steps), nil
}

// Day18Part2 reads the plan from the hex colour instead: five hex digits
// of length, then one digit of direction (0 R, 1 D, 2 L, 3 U).
func Day18Part2(lines []string) (int, error) {
	steps, err := parseDigPlan(lines, true)
	if err != nil {
		return 0, err
	}

	return lagoonArea(steps), nil
}

// lagoonArea counts the cubes inside and on the trench. The shoelace
// formula gives the area A enclosed by the cube centres; by Pick's theorem
// the interior holds A - b/2 + 1 points for b boundary points.
func lagoonArea(steps []digStep) int {
	var p grid.Point
	twice, boundary := 0, 0
	for _, s := range steps {
		q := p.Move(s.dir, s.n)
		twice += p.Col*q.Row - q.Col*p.Row
		boundary += s.n
		p = q
	}

	return abs(twice)/2 + boundary/2 + 1
}

// parseDigPlan reads "R 6 (#70c710)".
func parseDigPlan(lines []string, fromColour bool) ([]digStep, error) {
	steps := make([]digStep, 0, len(lines))
	for _, l := range lines {
		f := parse.Fields(l)
		if len(f) != 3 || len(f[0]) != 1 {
			return nil, parseErrorf("dig step %q", l)
		}
		if !fromColour {
			d, ok := digDirs[f[0][0]]
			n, err := strconv.Atoi(f[1])
			if !ok || err != nil || n < 1 {
				return nil, parseErrorf("dig step %q", l)
			}
			steps = append(steps, digStep{dir: d, n: n})
			continue
		}
		hex := strings.TrimSuffix(strings.TrimPrefix(f[2], "(#"), ")")
		if len(hex) != 6 {
			return nil, parseErrorf("dig step %q: colour", l)
		}
		n, err := strconv.ParseInt(hex[:5], 16, 64)
		d, ok := digDirs[hex[5]]
		if err != nil || !ok || hex[5] > '3' {
			return nil, parseErrorf("dig step %q: colour", l)
		}
		steps = append(steps, digStep{dir: d, n: int(n)})
	}

	return steps, nil
}
