package days

import "strings"

var spelled = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// Day01Part1 sums the two-digit calibration values formed by the first and
// last digit of every line.
func Day01Part1(lines []string) (int, error) {
	return calibrate(lines, false)
}

// Day01Part2 is Day01Part1 with spelled-out digits counted too. Spelled
// digits may share letters ("eightwo" is 8 then 2).
func Day01Part2(lines []string) (int, error) {
	return calibrate(lines, true)
}

func calibrate(lines []string, words bool) (int, error) {
	total := 0
	for i, l := range lines {
		first, last := -1, -1
		for j := 0; j < len(l); j++ {
			d := digitAt(l[j:], words)
			if d < 0 {
				continue
			}
			if first < 0 {
				first = d
			}
			last = d
		}
		if first < 0 {
			return 0, parseErrorf("line %d %q has no digit", i+1, l)
		}
		total += 10*first + last
	}

	return total, nil
}

// digitAt returns the digit starting s, or -1.
func digitAt(s string, words bool) int {
	if c := s[0]; c >= '0' && c <= '9' {
		return int(c - '0')
	}
	if !words {
		return -1
	}
	for k, w := range spelled {
		if strings.HasPrefix(s, w) {
			return k + 1
		}
	}

	return -1
}
