package days

import (
	"math"
	"strconv"
	"strings"

	"github.com/SBuercklin/AdventOfCode23/parse"
)

// Day06Part1 multiplies together the number of ways to beat each record.
func Day06Part1(lines []string) (int, error) {
	times, dists, err := parseRaces(lines)
	if err != nil {
		return 0, err
	}
	if len(times) != len(dists) {
		return 0, parseErrorf("races: %d times but %d distances", len(times), len(dists))
	}
	prod := 1
	for i := range times {
		prod *= waysToWin(times[i], dists[i])
	}

	return prod, nil
}

// Day06Part2 ignores the spaces between numbers: there is one long race.
func Day06Part2(lines []string) (int, error) {
	if len(lines) < 2 {
		return 0, parseErrorf("races: want Time and Distance lines")
	}
	var vals [2]int
	for i := range vals {
		_, nums, err := parse.Cut(lines[i], ":")
		if err != nil {
			return 0, parseErrorf("races: %v", err)
		}
		if vals[i], err = strconv.Atoi(strings.Join(parse.Fields(nums), "")); err != nil {
			return 0, parseErrorf("races: %q", nums)
		}
	}

	return waysToWin(vals[0], vals[1]), nil
}

// waysToWin counts hold times h in [0, t] with h*(t-h) > record. The
// winning holds form the symmetric range [lo, t-lo]; lo starts from the
// float root and is corrected with exact integer arithmetic.
func waysToWin(t, record int) int {
	disc := t*t - 4*record
	if disc <= 0 {
		return 0
	}
	lo := (t - isqrt(disc)) / 2
	for 2*lo <= t && lo*(t-lo) <= record {
		lo++
	}
	for lo > 0 && (lo-1)*(t-lo+1) > record {
		lo--
	}
	if 2*lo > t {
		return 0
	}

	return t - 2*lo + 1
}

func isqrt(n int) int {
	s := int(math.Sqrt(float64(n)))
	for s*s > n {
		s--
	}
	for (s+1)*(s+1) <= n {
		s++
	}

	return s
}

func parseRaces(lines []string) (times, dists []int, err error) {
	if len(lines) < 2 {
		return nil, nil, parseErrorf("races: want Time and Distance lines")
	}
	out := make([][]int, 2)
	for i := range out {
		_, nums, err := parse.Cut(lines[i], ":")
		if err != nil {
			return nil, nil, parseErrorf("races: %v", err)
		}
		if out[i], err = parse.Ints(nums); err != nil {
			return nil, nil, parseErrorf("races: %v", err)
		}
	}

	return out[0], out[1], nil
}
