// Package adventofcode23 collects Advent of Code 2023 puzzle solvers and the
// small generic toolkit they are built on.
//
// 🚀 What is in here?
//
//	• grid:      dense row-major Grid[T] with row/column views, lanes,
//	             neighbours and a content hash for cycle detection
//	• interval:  half-open HalfInterval[T] with exact intersection and
//	             difference, plus rule-chain remapping (Mapping, Chain)
//	• bfs:       breadth-first search over any comparable state
//	• dijkstra:  shortest paths over any comparable state
//	• parse:     line, block and number helpers for puzzle text
//	• days:      one solver per puzzle part, looked up by (day, part)
//	• config:    optional YAML settings for the command
//	• cmd/aoc23: the command line front end
//
// Quick example:
//
//	aoc23 -day 5 -part 2 -file inputs/day05.txt
//
//	Answer for day 5, part 2
//	46
package adventofcode23
