package core_test

import (
	"fmt"

	"github.com/katalvlaran/lavaworld/core"
)

// ExampleGraph builds a three-vertex path 1–2–3 and lists neighbors.
func ExampleGraph() {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		g.AddVertex()
	}
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)

	for _, id := range g.Vertices() {
		nbrs, _ := g.NeighborIDs(id)
		fmt.Println(id, nbrs)
	}

	// Output:
	// 1 [2]
	// 2 [1 3]
	// 3 [2]
}
