package days

import (
	"strings"

	"github.com/SBuercklin/AdventOfCode23/parse"
)

type desertMap struct {
	turns string
	left  map[string]string
	right map[string]string
}

// Day08Part1 counts the steps from AAA to ZZZ following the turn list.
func Day08Part1(lines []string) (int, error) {
	m, err := parseDesertMap(lines)
	if err != nil {
		return 0, err
	}
	if _, ok := m.left["AAA"]; !ok {
		return 0, parseErrorf("network has no AAA node")
	}

	return m.walk("AAA", func(n string) bool { return n == "ZZZ" })
}

// Day08Part2 walks every node ending in A at once until all stand on a
// node ending in Z. Each ghost cycles, so the answer is the LCM of the
// individual walk lengths.
func Day08Part2(lines []string) (int, error) {
	m, err := parseDesertMap(lines)
	if err != nil {
		return 0, err
	}
	steps := 1
	for n := range m.left {
		if !strings.HasSuffix(n, "A") {
			continue
		}
		k, err := m.walk(n, func(n string) bool { return strings.HasSuffix(n, "Z") })
		if err != nil {
			return 0, err
		}
		steps = lcm(steps, k)
	}

	return steps, nil
}

// walk follows turns from start until done reports true. A walk that
// revisits the same (node, turn index) pair without finishing never ends
// and is reported as a parse error.
func (m desertMap) walk(start string, done func(string) bool) (int, error) {
	type state struct {
		node string
		turn int
	}
	seen := make(map[state]bool)
	cur := start
	for steps := 0; ; steps++ {
		i := steps % len(m.turns)
		if steps > 0 && done(cur) {
			return steps, nil
		}
		s := state{cur, i}
		if seen[s] {
			return 0, parseErrorf("walk from %s never finishes", start)
		}
		seen[s] = true
		var ok bool
		if m.turns[i] == 'L' {
			cur, ok = m.left[cur]
		} else {
			cur, ok = m.right[cur]
		}
		if !ok {
			return 0, parseErrorf("walk from %s reached unknown node", start)
		}
	}
}

// parseDesertMap reads the turn line, a blank line, then "AAA = (BBB, CCC)".
func parseDesertMap(lines []string) (desertMap, error) {
	blocks := parse.Blocks(lines)
	if len(blocks) != 2 || len(blocks[0]) != 1 {
		return desertMap{}, parseErrorf("map: want turn line and node block")
	}
	m := desertMap{
		turns: strings.TrimSpace(blocks[0][0]),
		left:  make(map[string]string),
		right: make(map[string]string),
	}
	if strings.Trim(m.turns, "LR") != "" || m.turns == "" {
		return desertMap{}, parseErrorf("turns %q", m.turns)
	}
	for _, l := range blocks[1] {
		name, dests, err := parse.Cut(l, "=")
		if err != nil {
			return desertMap{}, parseErrorf("node %q: %v", l, err)
		}
		lr := parse.CommaSeparated(strings.Trim(dests, "()"))
		if len(lr) != 2 {
			return desertMap{}, parseErrorf("node %q", l)
		}
		m.left[name], m.right[name] = lr[0], lr[1]
	}

	return m, nil
}
