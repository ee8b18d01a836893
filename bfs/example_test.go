package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/railway/bfs"
	"github.com/katalvlaran/railway/core"
)

// ExampleBFS shows that stops, not distance, decide the path.
func ExampleBFS() {
	g := core.NewGraph()
	_ = g.AddRoute("A", "B", 1)
	_ = g.AddRoute("B", "C", 1)
	_ = g.AddRoute("A", "C", 50)

	res, err := bfs.BFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo("C")
	fmt.Println(res.Order, res.Stops["C"], path)
	// Output: [A B C] 1 [A C]
}
