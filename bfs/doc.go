// Package bfs provides breadth-first search over an implicit state space.
//
// What:
//
//   - States are any comparable value: grid points, (point, direction)
//     pairs, packed integers.
//   - The caller supplies the start states and a successor function; no
//     graph is materialised.
//   - Search returns visit order, per-state depth (edges from the nearest
//     start), and a parent link for every non-start state.
//
// Why:
//
//   - Unweighted shortest distances (loop distance on a pipe map).
//   - Reachability over states with extra components (light beams carrying
//     a heading).
//
// Options:
//
//   - WithMaxDepth(d): do not enqueue states deeper than d (d == 0 means
//     no limit, d < 0 is rejected with ErrOptionViolation).
//   - WithOnVisit(fn): called on dequeue; a non-nil error aborts the search.
//   - WithContext(ctx): cancellation is checked once per dequeued state.
//
// Complexity: O(V + E) time and O(V) memory over the reachable states.
package bfs
