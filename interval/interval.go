package interval

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// HalfInterval is the half-open range [Lo, Hi): Lo is included, Hi is not.
// [1, 2) holds only the value 1. Callers keep Lo <= Hi.
type HalfInterval[T constraints.Integer] struct {
	Lo, Hi T
}

// New returns [lo, hi). No validation is performed.
func New[T constraints.Integer](lo, hi T) HalfInterval[T] {
	return HalfInterval[T]{Lo: lo, Hi: hi}
}

// Span returns [start, start+length).
func Span[T constraints.Integer](start, length T) HalfInterval[T] {
	return HalfInterval[T]{Lo: start, Hi: start + length}
}

// Len returns Hi - Lo.
func (h HalfInterval[T]) Len() T { return h.Hi - h.Lo }

// IsEmpty reports whether the interval holds no values.
func (h HalfInterval[T]) IsEmpty() bool { return h.Lo >= h.Hi }

// Contains reports whether x lies in [Lo, Hi).
func (h HalfInterval[T]) Contains(x T) bool { return h.Lo <= x && x < h.Hi }

// Shift translates both bounds by delta.
func (h HalfInterval[T]) Shift(delta int64) HalfInterval[T] {
	return HalfInterval[T]{Lo: T(int64(h.Lo) + delta), Hi: T(int64(h.Hi) + delta)}
}

// Intersect returns [max(Lo, o.Lo), min(Hi, o.Hi)) and true, or false when
// that range is empty.
func (h HalfInterval[T]) Intersect(o HalfInterval[T]) (HalfInterval[T], bool) {
	lo, hi := max(h.Lo, o.Lo), min(h.Hi, o.Hi)
	if lo >= hi {
		return HalfInterval[T]{}, false
	}

	return HalfInterval[T]{Lo: lo, Hi: hi}, true
}

// Difference removes o from h and returns the piece of h strictly left of
// o and the piece strictly right of it, each with a presence flag.
//
// If o does not overlap h, the whole of h is returned on the side it lies
// on. If o covers h, neither piece is present.
func (h HalfInterval[T]) Difference(o HalfInterval[T]) (left HalfInterval[T], hasLeft bool, right HalfInterval[T], hasRight bool) {
	if h.IsEmpty() {
		return
	}
	inter, ok := h.Intersect(o)
	if !ok {
		if h.Lo < o.Lo {
			return h, true, HalfInterval[T]{}, false
		}
		return HalfInterval[T]{}, false, h, true
	}
	if h.Lo < inter.Lo {
		left, hasLeft = HalfInterval[T]{Lo: h.Lo, Hi: inter.Lo}, true
	}
	if inter.Hi < h.Hi {
		right, hasRight = HalfInterval[T]{Lo: inter.Hi, Hi: h.Hi}, true
	}

	return left, hasLeft, right, hasRight
}

func (h HalfInterval[T]) String() string {
	return fmt.Sprintf("[%d, %d)", h.Lo, h.Hi)
}
