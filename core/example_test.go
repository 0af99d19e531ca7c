package core_test

import (
	"fmt"

	"github.com/katalvlaran/valveflow/core"
)

// ExampleGraph demonstrates building a tiny valve network and querying it.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddVertex("AA", 0)
	_ = g.AddVertex("BB", 13)
	_ = g.AddVertex("CC", 2)

	// tunnels are undirected; the mirror listing is a no-op
	_ = g.AddEdge("AA", "BB")
	_ = g.AddEdge("BB", "AA")
	_ = g.AddEdge("BB", "CC")

	nbrs, _ := g.NeighborIDs("BB")
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Rated:", g.RatedVertices())
	fmt.Println("Neighbors of BB:", nbrs)
	fmt.Println("Tunnels:", g.EdgeCount())

	// Output:
	// Vertices: [AA BB CC]
	// Rated: [BB CC]
	// Neighbors of BB: [AA CC]
	// Tunnels: 2
}
