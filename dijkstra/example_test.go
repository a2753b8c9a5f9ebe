package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/lvlstruct/core"
	"github.com/katalvlaran/lvlstruct/dijkstra"
)

// ExampleDijkstra computes all shortest distances from "A" in the weighted
// demo network and reconstructs the cheapest route to "E".
func ExampleDijkstra() {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B", 4)
	g.AddEdge("A", "C", 2)
	g.AddEdge("B", "C", 1)
	g.AddEdge("B", "D", 5)
	g.AddEdge("C", "D", 8)
	g.AddEdge("C", "E", 10)
	g.AddEdge("D", "E", 2)

	res, err := dijkstra.Dijkstra(g, "A")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for _, v := range []string{"A", "B", "C", "D", "E"} {
		fmt.Printf("A -> %s: %d\n", v, res.Dist[v])
	}
	fmt.Println("route:", dijkstra.ShortestPath(res.Prev, "A", "E"))
	// Output:
	// A -> A: 0
	// A -> B: 3
	// A -> C: 2
	// A -> D: 8
	// A -> E: 10
	// route: [A C B D E]
}
