package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a state with its BFS depth.
type queueItem[S comparable] struct {
	s     S
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S comparable] struct {
	next  func(S) []S
	opts  Options[S]
	ctx   context.Context
	queue []queueItem[S]
	res   *Result[S]
}

// Search runs breadth-first search from every state in starts at depth 0,
// expanding each dequeued state through next. Duplicate starts are
// ignored. Returns ErrNoStart, ErrOptionViolation, the context error on
// cancellation, or the wrapped OnVisit error. The partial result is
// returned alongside a cancellation or hook error.
func Search[S comparable](starts []S, next func(S) []S, opts ...Option[S]) (*Result[S], error) {
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(starts) == 0 {
		return nil, ErrNoStart
	}

	w := &walker[S]{
		next: next,
		opts: o,
		ctx:  o.Ctx,
		res: &Result[S]{
			Depth:  make(map[S]int),
			Parent: make(map[S]S),
		},
	}
	for _, s := range starts {
		if !w.res.Reached(s) {
			w.enqueue(s, 0)
		}
	}

	return w.res, w.loop()
}

func (w *walker[S]) enqueue(s S, d int) {
	w.res.Depth[s] = d
	w.queue = append(w.queue, queueItem[S]{s: s, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[S]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.s)
		if err := w.opts.OnVisit(item.s, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.s, err)
		}

		nd := item.depth + 1
		if w.opts.MaxDepth > 0 && nd > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.next(item.s) {
			if w.res.Reached(nbr) {
				continue
			}
			w.res.Parent[nbr] = item.s
			w.enqueue(nbr, nd)
		}
	}

	return nil
}
