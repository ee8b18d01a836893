package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/railway/core"
	"github.com/katalvlaran/railway/dfs"
)

// ExampleByHops lists every walk around a two-city loop within four stops.
// Arriving at the destination does not end the walk.
func ExampleByHops() {
	g := core.NewGraph()
	_ = g.AddRoute("X", "Y", 2)
	_ = g.AddRoute("Y", "X", 3)

	res, err := dfs.ByHops(g, "X", "X", 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, t := range res.Trips.Trips() {
		fmt.Println(t)
	}
	// Output:
	// X -> Y -> X
	// X -> Y -> X -> Y -> X
}

// ExampleByDistance keeps walks whose total distance fits the bound.
func ExampleByDistance() {
	g := core.NewGraph()
	_ = g.AddRoute("X", "Y", 2)
	_ = g.AddRoute("Y", "X", 3)

	res, _ := dfs.ByDistance(g, "X", "X", 11)
	fmt.Println(res.Trips.Len(), res.Pruned)
	// Output: 2 1
}
