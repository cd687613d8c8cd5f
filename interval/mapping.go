package interval

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
)

// Rule sends every value in Src to value+Delta.
type Rule[T constraints.Integer] struct {
	Src   HalfInterval[T]
	Delta int64
}

// NewRule builds the rule for the triple "dst src length": the source range
// [src, src+length) maps onto [dst, dst+length).
func NewRule[T constraints.Integer](dst, src, length T) Rule[T] {
	return Rule[T]{Src: Span(src, length), Delta: int64(dst) - int64(src)}
}

// Mapping is an ordered list of rules. Values matched by no rule map to
// themselves.
type Mapping[T constraints.Integer] struct {
	Name  string
	Rules []Rule[T]
}

// NewMapping returns a Mapping with rules sorted by source lower bound.
// Source ranges are expected not to overlap.
func NewMapping[T constraints.Integer](name string, rules ...Rule[T]) Mapping[T] {
	rs := slices.Clone(rules)
	slices.SortFunc(rs, func(a, b Rule[T]) int { return cmp.Compare(a.Src.Lo, b.Src.Lo) })

	return Mapping[T]{Name: name, Rules: rs}
}

// Apply maps in through the rules in one pass. Each rule splits the pending
// piece into the part left of its source (finished unmapped: rules are
// sorted, so nothing later can match it), the overlap (shifted and
// finished) and the part right of it (carried to the next rule). Whatever
// is still pending after the last rule passes through unchanged.
// Complexity: O(len(Rules)).
func (m Mapping[T]) Apply(in HalfInterval[T]) []HalfInterval[T] {
	var out []HalfInterval[T]
	pending, ok := in, !in.IsEmpty()
	for _, r := range m.Rules {
		if !ok {
			break
		}
		left, hasLeft, right, hasRight := pending.Difference(r.Src)
		if hasLeft {
			out = append(out, left)
		}
		if mid, hit := pending.Intersect(r.Src); hit {
			out = append(out, mid.Shift(r.Delta))
		}
		pending, ok = right, hasRight
	}
	if ok {
		out = append(out, pending)
	}

	return out
}

// ApplyAll maps every interval in ins.
func (m Mapping[T]) ApplyAll(ins []HalfInterval[T]) []HalfInterval[T] {
	var out []HalfInterval[T]
	for _, in := range ins {
		out = append(out, m.Apply(in)...)
	}

	return out
}

// Chain feeds ins through each mapping in order.
func Chain[T constraints.Integer](maps []Mapping[T], ins []HalfInterval[T]) []HalfInterval[T] {
	cur := ins
	for _, m := range maps {
		cur = m.ApplyAll(cur)
	}

	return cur
}
