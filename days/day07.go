package days

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

type hand struct {
	cards string
	bid   int
}

// handKind orders hand types from high card (0) to five of a kind (6).
type handKind int

const (
	highCard handKind = iota
	onePair
	twoPair
	threeKind
	fullHouse
	fourKind
	fiveKind
)

// kind classifies cards; with jokers, every J joins the largest other group.
func kind(cards string, jokers bool) handKind {
	counts := make(map[rune]int, 5)
	wild := 0
	for _, c := range cards {
		if jokers && c == 'J' {
			wild++
			continue
		}
		counts[c]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.SortFunc(groups, func(a, b int) int { return b - a })
	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += wild

	switch {
	case groups[0] == 5:
		return fiveKind
	case groups[0] == 4:
		return fourKind
	case groups[0] == 3 && groups[1] == 2:
		return fullHouse
	case groups[0] == 3:
		return threeKind
	case groups[0] == 2 && groups[1] == 2:
		return twoPair
	case groups[0] == 2:
		return onePair
	}

	return highCard
}

// Day07Part1 ranks the hands and sums bid times rank.
func Day07Part1(lines []string) (int, error) {
	return winnings(lines, "23456789TJQKA", false)
}

// Day07Part2 treats J as a joker: wild for the hand type, weakest alone.
func Day07Part2(lines []string) (int, error) {
	return winnings(lines, "J23456789TQKA", true)
}

func winnings(lines []string, order string, jokers bool) (int, error) {
	hands := make([]hand, 0, len(lines))
	for _, l := range lines {
		f := strings.Fields(l)
		if len(f) != 2 || len(f[0]) != 5 {
			return 0, parseErrorf("hand %q", l)
		}
		bid, err := strconv.Atoi(f[1])
		if err != nil {
			return 0, parseErrorf("hand %q: bid", l)
		}
		for _, c := range f[0] {
			if !strings.ContainsRune(order, c) {
				return 0, parseErrorf("hand %q: card %q", l, c)
			}
		}
		hands = append(hands, hand{cards: f[0], bid: bid})
	}

	slices.SortFunc(hands, func(a, b hand) int {
		if c := cmp.Compare(kind(a.cards, jokers), kind(b.cards, jokers)); c != 0 {
			return c
		}
		for i := range a.cards {
			if c := cmp.Compare(strings.IndexByte(order, a.cards[i]), strings.IndexByte(order, b.cards[i])); c != 0 {
				return c
			}
		}
		return 0
	})
	total := 0
	for i, h := range hands {
		total += (i + 1) * h.bid
	}

	return total, nil
}
