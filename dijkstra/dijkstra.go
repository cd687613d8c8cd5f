package dijkstra

import (
	"container/heap"
	"fmt"
)

// Shortest returns the minimum cost from any state in starts to the first
// state satisfying goal. With WithReturnPath the path from start to goal
// (both inclusive) is returned as well; otherwise the path is nil.
//
// Errors: ErrNoStart, ErrNegativeWeight (wrapped with the offending edge),
// ErrNoPath when the heap drains or MaxDistance is exceeded first.
func Shortest[S comparable](starts []S, next func(S) []Edge[S], goal func(S) bool, opts ...Option) (int64, []S, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(starts) == 0 {
		return 0, nil, ErrNoStart
	}

	r := newRunner(starts, next, cfg)
	end, found, err := r.process(goal)
	if err != nil {
		return 0, nil, err
	}
	if !found {
		return 0, nil, ErrNoPath
	}
	if !cfg.ReturnPath {
		return r.dist[end], nil, nil
	}

	return r.dist[end], r.path(end), nil
}

// Distances runs the search to exhaustion (or MaxDistance) and returns the
// final distance of every state reached.
func Distances[S comparable](starts []S, next func(S) []Edge[S], opts ...Option) (map[S]int64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(starts) == 0 {
		return nil, ErrNoStart
	}

	r := newRunner(starts, next, cfg)
	if _, _, err := r.process(func(S) bool { return false }); err != nil {
		return nil, err
	}
	out := make(map[S]int64, len(r.visited))
	for s := range r.visited {
		out[s] = r.dist[s]
	}

	return out, nil
}

// runner holds the mutable state for a single execution.
type runner[S comparable] struct {
	next    func(S) []Edge[S]
	options Options
	dist    map[S]int64
	prev    map[S]S
	visited map[S]bool
	pq      nodePQ[S]
}

func newRunner[S comparable](starts []S, next func(S) []Edge[S], cfg Options) *runner[S] {
	r := &runner[S]{
		next:    next,
		options: cfg,
		dist:    make(map[S]int64),
		visited: make(map[S]bool),
	}
	if cfg.ReturnPath {
		r.prev = make(map[S]S)
	}
	heap.Init(&r.pq)
	for _, s := range starts {
		if _, seen := r.dist[s]; seen {
			continue
		}
		r.dist[s] = 0
		heap.Push(&r.pq, &nodeItem[S]{id: s, dist: 0})
	}

	return r
}

// process pops states in distance order until goal matches, the heap is
// empty, or the next distance exceeds MaxDistance.
func (r *runner[S]) process(goal func(S) bool) (S, bool, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[S])
		u := item.id
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if goal(u) {
			return u, true, nil
		}
		if err := r.relax(u); err != nil {
			var zero S
			return zero, false, err
		}
	}

	var zero S
	return zero, false, nil
}

// relax pushes every strictly improved successor of u.
func (r *runner[S]) relax(u S) error {
	du := r.dist[u]
	for _, e := range r.next(u) {
		if e.Cost < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%d", ErrNegativeWeight, u, e.To, e.Cost)
		}
		if r.visited[e.To] {
			continue
		}
		nd := du + e.Cost
		if nd > r.options.MaxDistance {
			continue
		}
		if old, ok := r.dist[e.To]; ok && nd >= old {
			continue
		}
		r.dist[e.To] = nd
		if r.prev != nil {
			r.prev[e.To] = u
		}
		heap.Push(&r.pq, &nodeItem[S]{id: e.To, dist: nd})
	}

	return nil
}

// path walks prev back from end to a start state.
func (r *runner[S]) path(end S) []S {
	out := []S{end}
	for cur := end; ; {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		out = append(out, p)
		cur = p
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// nodeItem is a state and its tentative distance.
type nodeItem[S comparable] struct {
	id   S
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ[S comparable] []*nodeItem[S]

func (pq nodePQ[S]) Len() int           { return len(pq) }
func (pq nodePQ[S]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ[S]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[S]) Push(x any) { *pq = append(*pq, x.(*nodeItem[S])) }

func (pq *nodePQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
