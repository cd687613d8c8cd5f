package days

import (
	"slices"
	"strings"

	"github.com/SBuercklin/AdventOfCode23/interval"
	"github.com/SBuercklin/AdventOfCode23/parse"
)

type almanac struct {
	seeds []int
	maps  []interval.Mapping[int]
}

// Day05Part1 finds the lowest location any listed seed maps to.
func Day05Part1(lines []string) (int, error) {
	a, err := parseAlmanac(lines)
	if err != nil {
		return 0, err
	}
	seeds := make([]interval.HalfInterval[int], 0, len(a.seeds))
	for _, s := range a.seeds {
		seeds = append(seeds, interval.Span(s, 1))
	}

	return lowest(interval.Chain(a.maps, seeds)), nil
}

// Day05Part2 reads the seeds as (start, length) pairs and finds the lowest
// location any seed in any range maps to. Ranges are mapped whole.
func Day05Part2(lines []string) (int, error) {
	a, err := parseAlmanac(lines)
	if err != nil {
		return 0, err
	}
	if len(a.seeds)%2 != 0 {
		return 0, parseErrorf("seed ranges: odd number of values")
	}
	var seeds []interval.HalfInterval[int]
	for i := 0; i < len(a.seeds); i += 2 {
		seeds = append(seeds, interval.Span(a.seeds[i], a.seeds[i+1]))
	}

	return lowest(interval.Chain(a.maps, seeds)), nil
}

func lowest(ivs []interval.HalfInterval[int]) int {
	los := make([]int, 0, len(ivs))
	for _, iv := range ivs {
		los = append(los, iv.Lo)
	}
	if len(los) == 0 {
		return 0
	}

	return slices.Min(los)
}

// parseAlmanac reads the "seeds:" line followed by blank-line separated
// "x-to-y map:" blocks of "dst src length" triples.
func parseAlmanac(lines []string) (almanac, error) {
	blocks := parse.Blocks(lines)
	if len(blocks) == 0 {
		return almanac{}, parseErrorf("almanac is empty")
	}
	head, nums, err := parse.Cut(blocks[0][0], ":")
	if err != nil || head != "seeds" {
		return almanac{}, parseErrorf("almanac: want seeds line, got %q", blocks[0][0])
	}
	var a almanac
	if a.seeds, err = parse.Ints(nums); err != nil {
		return almanac{}, parseErrorf("seeds: %v", err)
	}
	for _, b := range blocks[1:] {
		name := strings.TrimSuffix(b[0], " map:")
		var rules []interval.Rule[int]
		for _, l := range b[1:] {
			v, err := parse.Ints(l)
			if err != nil || len(v) != 3 {
				return almanac{}, parseErrorf("%s: rule %q", name, l)
			}
			rules = append(rules, interval.NewRule(v[0], v[1], v[2]))
		}
		a.maps = append(a.maps, interval.NewMapping(name, rules...))
	}

	return a, nil
}
