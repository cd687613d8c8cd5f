package days

import (
	"fmt"
	"maps"
	"slices"
)

// Solver computes one puzzle answer from the input lines.
type Solver func(lines []string) (int, error)

var solvers = map[int][2]Solver{
	1:  {Day01Part1, Day01Part2},
	2:  {Day02Part1, Day02Part2},
	3:  {Day03Part1, Day03Part2},
	4:  {Day04Part1, Day04Part2},
	5:  {Day05Part1, Day05Part2},
	6:  {Day06Part1, Day06Part2},
	7:  {Day07Part1, Day07Part2},
	8:  {Day08Part1, Day08Part2},
	9:  {Day09Part1, Day09Part2},
	10: {Day10Part1, Day10Part2},
	11: {Day11Part1, Day11Part2},
	12: {Day12Part1, Day12Part2},
	13: {Day13Part1, Day13Part2},
	14: {Day14Part1, Day14Part2},
	15: {Day15Part1, Day15Part2},
	16: {Day16Part1, Day16Part2},
	17: {Day17Part1, Day17Part2},
	18: {Day18Part1, Day18Part2},
}

// Lookup returns the solver for day and part, or ErrNotImplemented.
func Lookup(day, part int) (Solver, error) {
	parts, ok := solvers[day]
	if !ok || part < 1 || part > len(parts) {
		return nil, fmt.Errorf("day %d part %d: %w", day, part, ErrNotImplemented)
	}

	return parts[part-1], nil
}

// Available returns the implemented days in ascending order.
func Available() []int {
	return slices.Sorted(maps.Keys(solvers))
}
