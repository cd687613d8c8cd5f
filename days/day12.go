package days

import (
	"slices"
	"strings"

	"github.com/SBuercklin/AdventOfCode23/parse"
)

type springRow struct {
	springs string
	groups  []int
}

// Day12Part1 sums, over all rows, the number of ways to fill the unknown
// springs so the damaged runs match the group list.
func Day12Part1(lines []string) (int, error) {
	return sumArrangements(lines, 1)
}

// Day12Part2 is Day12Part1 after unfolding each row five times: springs
// joined by '?', groups repeated.
func Day12Part2(lines []string) (int, error) {
	return sumArrangements(lines, 5)
}

func sumArrangements(lines []string, copies int) (int, error) {
	total := 0
	for _, l := range lines {
		row, err := parseSpringRow(l)
		if err != nil {
			return 0, err
		}
		total += row.unfold(copies).arrangements()
	}

	return total, nil
}

func (s springRow) unfold(n int) springRow {
	springs := make([]string, n)
	var groups []int
	for i := range springs {
		springs[i] = s.springs
		groups = append(groups, s.groups...)
	}

	return springRow{springs: strings.Join(springs, "?"), groups: groups}
}

// arrangements counts fillings with a memo over (spring index, group index).
// Complexity: O(len(springs) * len(groups) * max group).
func (s springRow) arrangements() int {
	n, m := len(s.springs), len(s.groups)
	memo := make([][]int, n+1)
	for i := range memo {
		memo[i] = make([]int, m+1)
		for j := range memo[i] {
			memo[i][j] = -1
		}
	}

	var count func(i, j int) int
	count = func(i, j int) int {
		if i > n {
			i = n
		}
		if memo[i][j] >= 0 {
			return memo[i][j]
		}
		var res int
		switch {
		case j == m:
			if !strings.Contains(s.springs[i:], "#") {
				res = 1
			}
		case i == n:
			res = 0
		default:
			c := s.springs[i]
			if c != '#' {
				res += count(i+1, j)
			}
			if c != '.' {
				g := s.groups[j]
				if i+g <= n && !strings.Contains(s.springs[i:i+g], ".") && (i+g == n || s.springs[i+g] != '#') {
					res += count(i+g+1, j+1)
				}
			}
		}
		memo[i][j] = res
		return res
	}

	return count(0, 0)
}

// parseSpringRow reads "???.### 1,1,3".
func parseSpringRow(l string) (springRow, error) {
	f := parse.Fields(l)
	if len(f) != 2 {
		return springRow{}, parseErrorf("spring row %q", l)
	}
	if strings.Trim(f[0], ".#?") != "" {
		return springRow{}, parseErrorf("spring row %q: unknown condition", l)
	}
	groups, err := parse.IntList(f[1])
	if err != nil {
		return springRow{}, parseErrorf("spring row %q: %v", l, err)
	}
	if slices.ContainsFunc(groups, func(g int) bool { return g < 1 }) {
		return springRow{}, parseErrorf("spring row %q: empty group", l)
	}

	return springRow{springs: f[0], groups: groups}, nil
}
