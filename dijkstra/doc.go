// Package dijkstra implements Dijkstra's shortest-path algorithm over an
// implicit, weighted state space.
//
// The caller supplies start states, a successor function returning weighted
// edges, and a goal predicate. States are any comparable value, so search
// state can carry more than a position (heading, run length, and so on).
//
// Complexity:
//
//   - Time:  O((V + E) log V) over the reachable states.
//   - Space: O(V + E); the heap holds stale entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Edges are produced on demand, so negative weights are detected during
//     relaxation rather than by an upfront scan.
//   - Exploration stops once the minimum distance in the heap exceeds
//     MaxDistance.
//   - Lazy decrease-key: duplicates are pushed and stale entries ignored.
package dijkstra
