package days

import (
	"slices"
	"strconv"
	"strings"
)

// holidayHash is the HASH algorithm: for each byte, add it, multiply by 17
// and keep the remainder mod 256.
func holidayHash(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = (h + int(s[i])) * 17 % 256
	}

	return h
}

func initSequence(lines []string) []string {
	var steps []string
	for _, s := range strings.Split(strings.Join(lines, ""), ",") {
		if s = strings.TrimSpace(s); s != "" {
			steps = append(steps, s)
		}
	}

	return steps
}

// Day15Part1 sums the HASH of every initialisation step.
func Day15Part1(lines []string) (int, error) {
	total := 0
	for _, s := range initSequence(lines) {
		total += holidayHash(s)
	}

	return total, nil
}

type lens struct {
	label string
	focal int
}

// Day15Part2 runs the HASHMAP procedure and returns the focusing power.
// "label=n" replaces the lens in place or appends it to box HASH(label);
// "label-" removes it.
func Day15Part2(lines []string) (int, error) {
	var boxes [256][]lens
	for _, s := range initSequence(lines) {
		if label, ok := strings.CutSuffix(s, "-"); ok {
			b := &boxes[holidayHash(label)]
			*b = slices.DeleteFunc(*b, func(l lens) bool { return l.label == label })
			continue
		}
		label, f, ok := strings.Cut(s, "=")
		if !ok {
			return 0, parseErrorf("step %q", s)
		}
		focal, err := strconv.Atoi(f)
		if err != nil || focal < 1 || focal > 9 {
			return 0, parseErrorf("step %q: focal length", s)
		}
		b := &boxes[holidayHash(label)]
		if i := slices.IndexFunc(*b, func(l lens) bool { return l.label == label }); i >= 0 {
			(*b)[i].focal = focal
		} else {
			*b = append(*b, lens{label: label, focal: focal})
		}
	}

	power := 0
	for bi, box := range boxes {
		for si, l := range box {
			power += (bi + 1) * (si + 1) * l.focal
		}
	}

	return power, nil
}
