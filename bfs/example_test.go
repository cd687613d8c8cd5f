package bfs_test

import (
	"fmt"

	"github.com/SBuercklin/AdventOfCode23/bfs"
	"github.com/SBuercklin/AdventOfCode23/grid"
)

// ExampleSearch walks the open cells of a small maze and reports the
// distance to the far corner.
func ExampleSearch() {
	maze, _ := grid.Runes([]string{
		"..#",
		"#..",
		"...",
	})
	open := func(p grid.Point) []grid.Point {
		var out []grid.Point
		for _, q := range maze.Neighbors(p, grid.Conn4) {
			if maze.Cell(q) != '#' {
				out = append(out, q)
			}
		}
		return out
	}

	res, _ := bfs.Search([]grid.Point{{Row: 0, Col: 0}}, open)
	end := grid.Point{Row: 2, Col: 2}
	path, _ := res.PathTo(end)
	fmt.Println(res.Depth[end], len(path))
	// Output: 4 5
}
