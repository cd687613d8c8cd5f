package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoStart indicates that no start state was supplied.
	ErrNoStart = errors.New("dijkstra: no start state")

	// ErrNegativeWeight indicates that a successor function produced a
	// negative edge cost.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates that no goal state is reachable within MaxDistance.
	ErrNoPath = errors.New("dijkstra: goal not reachable")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Edge is a weighted transition to state To.
type Edge[S comparable] struct {
	To   S
	Cost int64
}

// Options configures the behavior of the search.
//
// ReturnPath  – if true, Shortest also returns the state path.
// MaxDistance – states farther than this are not explored. Default math.MaxInt64.
type Options struct {
	ReturnPath  bool
	MaxDistance int64
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// DefaultOptions returns Options with no distance cap and no path output.
func DefaultOptions() Options {
	return Options{MaxDistance: math.MaxInt64}
}

// WithReturnPath enables path reconstruction in Shortest.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}
