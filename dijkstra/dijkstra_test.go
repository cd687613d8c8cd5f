package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SBuercklin/AdventOfCode23/dijkstra"
)

type graph map[string][]dijkstra.Edge[string]

func (g graph) next(s string) []dijkstra.Edge[string] { return g[s] }

func is(target string) func(string) bool {
	return func(s string) bool { return s == target }
}

// A→B (1), A→C (4), B→C (2), C→D (1), B→D (5)
func diamond() graph {
	return graph{
		"A": {{To: "B", Cost: 1}, {To: "C", Cost: 4}},
		"B": {{To: "C", Cost: 2}, {To: "D", Cost: 5}},
		"C": {{To: "D", Cost: 1}},
	}
}

func TestShortest_Diamond(t *testing.T) {
	g := diamond()
	d, path, err := dijkstra.Shortest([]string{"A"}, g.next, is("D"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(4), d)
	assert.Equal(t, []string{"A", "B", "C", "D"}, path)
}

func TestShortest_NoPathRequested(t *testing.T) {
	g := diamond()
	d, path, err := dijkstra.Shortest([]string{"A"}, g.next, is("C"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), d)
	assert.Nil(t, path)
}

func TestShortest_StartIsGoal(t *testing.T) {
	g := diamond()
	d, path, err := dijkstra.Shortest([]string{"A"}, g.next, is("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Zero(t, d)
	assert.Equal(t, []string{"A"}, path)
}

func TestShortest_MultipleStarts(t *testing.T) {
	g := diamond()
	d, _, err := dijkstra.Shortest([]string{"A", "C"}, g.next, is("D"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), d)
}

func TestShortest_Errors(t *testing.T) {
	g := diamond()
	_, _, err := dijkstra.Shortest(nil, g.next, is("D"))
	assert.ErrorIs(t, err, dijkstra.ErrNoStart)

	_, _, err = dijkstra.Shortest([]string{"D"}, g.next, is("A"))
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)

	_, _, err = dijkstra.Shortest([]string{"A"}, g.next, is("D"), dijkstra.WithMaxDistance(3))
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)

	neg := graph{"A": {{To: "B", Cost: -1}}}
	_, _, err = dijkstra.Shortest([]string{"A"}, neg.next, is("B"))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		dijkstra.WithMaxDistance(-1)
	})
}

func TestDistances(t *testing.T) {
	g := diamond()
	dist, err := dijkstra.Distances([]string{"A"}, g.next)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 3, "D": 4}, dist)

	dist, err = dijkstra.Distances([]string{"A"}, g.next, dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 3}, dist)
}

// State carries more than position: cost to reach n on a line where each
// step costs 1, but a jump of 3 costs 2 and may only follow a plain step.
type lineState struct {
	pos     int
	stepped bool
}

func TestShortest_CompositeState(t *testing.T) {
	next := func(s lineState) []dijkstra.Edge[lineState] {
		out := []dijkstra.Edge[lineState]{{To: lineState{s.pos + 1, true}, Cost: 1}}
		if s.stepped {
			out = append(out, dijkstra.Edge[lineState]{To: lineState{s.pos + 3, false}, Cost: 2})
		}
		return out
	}
	d, _, err := dijkstra.Shortest([]lineState{{0, false}}, next,
		func(s lineState) bool { return s.pos == 8 })
	require.NoError(t, err)
	// 0 -1-> 1 -2-> 4 -1-> 5 -2-> 8
	assert.Equal(t, int64(6), d)
}
