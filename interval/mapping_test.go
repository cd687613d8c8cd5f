package interval_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/SBuercklin/AdventOfCode23/interval"
)

type iv = interval.HalfInterval[int64]

func sorted(xs []iv) []iv {
	out := slices.Clone(xs)
	slices.SortFunc(out, func(a, b iv) int {
		switch {
		case a.Lo < b.Lo:
			return -1
		case a.Lo > b.Lo:
			return 1
		}
		return 0
	})
	return out
}

// seed-to-soil from the almanac example: "50 98 2" and "52 50 48".
func seedToSoil() interval.Mapping[int64] {
	return interval.NewMapping("seed-to-soil",
		interval.NewRule[int64](50, 98, 2),
		interval.NewRule[int64](52, 50, 48),
	)
}

func TestNewMappingSorts(t *testing.T) {
	m := seedToSoil()
	assert.Equal(t, int64(50), m.Rules[0].Src.Lo)
	assert.Equal(t, int64(2), m.Rules[0].Delta)
	assert.Equal(t, int64(98), m.Rules[1].Src.Lo)
	assert.Equal(t, int64(-48), m.Rules[1].Delta)
}

func TestApplySinglePoints(t *testing.T) {
	m := seedToSoil()
	cases := map[int64]int64{79: 81, 14: 14, 55: 57, 13: 13, 98: 50, 99: 51, 100: 100}
	for in, want := range cases {
		got := m.Apply(interval.Span(in, 1))
		if diff := cmp.Diff([]iv{interval.Span(want, 1)}, got); diff != "" {
			t.Errorf("Apply(%d) mismatch (-want +got):\n%s", in, diff)
		}
	}
}

func TestApplySplitsAcrossRules(t *testing.T) {
	m := seedToSoil()
	got := sorted(m.Apply(interval.New[int64](40, 110)))
	want := []iv{
		interval.New[int64](40, 50),   // below every rule
		interval.New[int64](50, 52),   // 98..100 shifted
		interval.New[int64](52, 100),  // 50..98 shifted
		interval.New[int64](100, 110), // above every rule
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Apply mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyPreservesCount(t *testing.T) {
	m := interval.NewMapping("gappy",
		interval.NewRule[int64](0, 10, 5),
		interval.NewRule[int64](100, 20, 5),
	)
	in := interval.New[int64](0, 40)
	var total int64
	for _, p := range m.Apply(in) {
		total += p.Len()
	}
	assert.Equal(t, in.Len(), total)
}

func TestApplyEmptyInput(t *testing.T) {
	assert.Empty(t, seedToSoil().Apply(interval.New[int64](5, 5)))
}

func TestChain(t *testing.T) {
	soilToFertilizer := interval.NewMapping("soil-to-fertilizer",
		interval.NewRule[int64](0, 15, 37),
		interval.NewRule[int64](37, 52, 2),
		interval.NewRule[int64](39, 0, 15),
	)
	got := interval.Chain([]interval.Mapping[int64]{seedToSoil(), soilToFertilizer},
		[]iv{interval.Span[int64](79, 1), interval.Span[int64](14, 1)})
	// 79 -> 81 -> 81, 14 -> 14 -> 53
	if diff := cmp.Diff([]iv{interval.Span[int64](81, 1), interval.Span[int64](53, 1)}, got); diff != "" {
		t.Errorf("Chain mismatch (-want +got):\n%s", diff)
	}
}
