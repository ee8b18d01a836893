package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/railway/core"
)

// ExampleGraph builds a tiny one-way network and inspects it.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddRoute("A", "B", 5)
	_ = g.AddRoute("B", "C", 4)
	_ = g.AddRoute("A", "D", 5)

	fmt.Println("cities:", g.Names())
	a, _ := g.City("A")
	fmt.Println("from A:", a.Neighbors())

	d, _ := g.Distance("A", "B")
	fmt.Println("A -> B:", d)

	_, err := g.Distance("B", "A")
	fmt.Println("B -> A missing:", errors.Is(err, core.ErrNoRouteFound))
	// Output:
	// cities: [A B C D]
	// from A: [B D]
	// A -> B: 5
	// B -> A missing: true
}

// ExampleGraph_loops shows that self-loops need an explicit opt-in.
func ExampleGraph_loops() {
	strict := core.NewGraph()
	fmt.Println(errors.Is(strict.AddRoute("A", "A", 1), core.ErrLoopNotAllowed))

	loose := core.NewGraph(core.WithLoops())
	fmt.Println(loose.AddRoute("A", "A", 1))
	// Output:
	// true
	// <nil>
}
