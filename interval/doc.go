// Package interval implements exact, gap-free arithmetic on half-open
// integer intervals and the rule-chain remapping built on top of it.
//
// What:
//
//   - HalfInterval[T] is [Lo, Hi) over any integer type.
//   - Intersect returns the overlap, or false when it would be empty.
//   - Difference returns what remains strictly left and strictly right
//     of the overlap; together with Intersect it partitions the receiver.
//   - Mapping applies an ordered list of (source range → offset) rules to
//     an interval in one linear pass, passing unmatched pieces through.
//
// Empty intervals are never returned by Intersect or Difference; absence is
// reported through the accompanying bool.
package interval
