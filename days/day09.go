package days

import (
	"slices"

	"github.com/SBuercklin/AdventOfCode23/parse"
)

// Day09Part1 sums the next value of every history.
func Day09Part1(lines []string) (int, error) {
	return sumExtrapolated(lines, false)
}

// Day09Part2 sums the value before the first of every history.
func Day09Part2(lines []string) (int, error) {
	return sumExtrapolated(lines, true)
}

func sumExtrapolated(lines []string, backward bool) (int, error) {
	total := 0
	for _, l := range lines {
		xs, err := parse.Ints(l)
		if err != nil {
			return 0, parseErrorf("history %q: %v", l, err)
		}
		if len(xs) == 0 {
			return 0, parseErrorf("empty history")
		}
		if backward {
			slices.Reverse(xs)
		}
		total += extrapolate(xs)
	}

	return total, nil
}

// extrapolate returns the next term: the sum of the last element of each
// difference row down to the all-zero row.
func extrapolate(xs []int) int {
	next := 0
	row := slices.Clone(xs)
	for len(row) > 0 {
		next += row[len(row)-1]
		zero := true
		for i := 0; i+1 < len(row); i++ {
			row[i] = row[i+1] - row[i]
			if row[i] != 0 {
				zero = false
			}
		}
		row = row[:len(row)-1]
		if zero {
			break
		}
	}

	return next
}
