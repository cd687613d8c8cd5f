package days

import (
	"github.com/SBuercklin/AdventOfCode23/parse"
)

// Day04Part1 scores each card 2^(n-1) for n matching numbers.
func Day04Part1(lines []string) (int, error) {
	matches, err := parseCards(lines)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, m := range matches {
		if m > 0 {
			total += 1 << (m - 1)
		}
	}

	return total, nil
}

// Day04Part2 counts cards when n matches on card i win one copy each of
// the next n cards. Copies never run past the last card.
func Day04Part2(lines []string) (int, error) {
	matches, err := parseCards(lines)
	if err != nil {
		return 0, err
	}
	copies := make([]int, len(matches))
	for i := range copies {
		copies[i] = 1
	}
	for i, m := range matches {
		for j := i + 1; j <= i+m && j < len(copies); j++ {
			copies[j] += copies[i]
		}
	}

	return sum(copies), nil
}

// parseCards returns the number of winning numbers held on each card.
func parseCards(lines []string) ([]int, error) {
	out := make([]int, 0, len(lines))
	for _, l := range lines {
		_, body, err := parse.Cut(l, ":")
		if err != nil {
			return nil, parseErrorf("card %q: %v", l, err)
		}
		w, h, err := parse.Cut(body, "|")
		if err != nil {
			return nil, parseErrorf("card %q: %v", l, err)
		}
		winning, err := parse.Ints(w)
		if err != nil {
			return nil, parseErrorf("card %q: %v", l, err)
		}
		have, err := parse.Ints(h)
		if err != nil {
			return nil, parseErrorf("card %q: %v", l, err)
		}
		set := make(map[int]bool, len(winning))
		for _, n := range winning {
			set[n] = true
		}
		n := 0
		for _, x := range have {
			if set[x] {
				n++
			}
		}
		out = append(out, n)
	}

	return out, nil
}
