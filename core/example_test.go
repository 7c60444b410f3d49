package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// ExampleGraph_AddEdge shows endpoint auto-creation and last-write-wins weights.
func ExampleGraph_AddEdge() {
	g := core.NewGraph()
	_ = g.AddEdge("Union South", "Computer Sciences and Statistics", 4)
	_ = g.AddEdge("Union South", "Computer Sciences and Statistics", 1) // overwrites 4

	w, _ := g.Weight("Union South", "Computer Sciences and Statistics")
	fmt.Println(g.Vertices())
	fmt.Println(g.EdgeCount(), w)
	// Output:
	// [Computer Sciences and Statistics Union South]
	// 1 1
}
