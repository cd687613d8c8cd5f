package dijkstra_test

import (
	"fmt"

	"github.com/SBuercklin/AdventOfCode23/dijkstra"
	"github.com/SBuercklin/AdventOfCode23/grid"
)

// ExampleShortest finds the cheapest walk across a grid of digit costs,
// paying the cost of every cell entered.
func ExampleShortest() {
	costs, _ := grid.Parse([]string{
		"131",
		"919",
		"111",
	}, func(_, _ int, r rune) (int64, error) { return int64(r - '0'), nil })

	next := func(p grid.Point) []dijkstra.Edge[grid.Point] {
		var out []dijkstra.Edge[grid.Point]
		for _, q := range costs.Neighbors(p, grid.Conn4) {
			out = append(out, dijkstra.Edge[grid.Point]{To: q, Cost: costs.Cell(q)})
		}
		return out
	}
	end := grid.Point{Row: 2, Col: 2}
	d, path, _ := dijkstra.Shortest([]grid.Point{{}}, next,
		func(p grid.Point) bool { return p == end }, dijkstra.WithReturnPath())
	fmt.Println(d, len(path))
	// Output: 6 5
}
