// Package days contains the Advent of Code 2023 puzzle solvers.
//
// Every puzzle exposes DayNNPart1 and DayNNPart2 with the Solver signature:
// the puzzle input as lines in, an integer answer out. Malformed input is
// reported with an error wrapping ErrParse; solvers never panic on input
// they cannot read.
//
// Lookup maps a (day, part) pair to its solver for the command line.
package days
