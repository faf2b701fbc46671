package kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/parmst/core"
	"github.com/katalvlaran/parmst/kruskal"
)

// ExampleCompute_triangle runs the parallel pipeline with two workers on a
// triangle. The heaviest edge 0-2 closes a cycle and is dropped.
func ExampleCompute_triangle() {
	g, err := core.NewGraph(3, []core.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 1, To: 2, Weight: 3},
		{From: 0, To: 2, Weight: 5},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := kruskal.Compute(g, kruskal.WithWorkers(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %d, Tree: %t, Edges: ", res.Weight, res.IsTree())
	for i, e := range res.Edges {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(e)
	}
	// Output: Total: 7, Tree: true, Edges: 1-2(3) 0-1(4)
}

// ExampleCompute_forest shows a disconnected graph: two components give a
// spanning forest rather than an error.
func ExampleCompute_forest() {
	g, _ := core.NewGraph(5, []core.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 2, Weight: 1},
		{From: 0, To: 2, Weight: 9},
		{From: 3, To: 4, Weight: 6},
	})

	res, err := kruskal.Compute(g, kruskal.WithWorkers(2), kruskal.WithStrategy(kruskal.StrategyShared))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("Total: %d, Edges: %d, Components: %d, Tree: %t\n",
		res.Weight, len(res.Edges), res.Components(), res.IsTree())
	// Output: Total: 9, Edges: 3, Components: 2, Tree: false
}

func ExampleSequential() {
	g, _ := core.NewGraph(2, []core.Edge{{From: 0, To: 1, Weight: 10}})
	res := kruskal.Sequential(g)
	fmt.Println(res.Edges, res.Weight, res.Vertices)
	// Output: [0-1(10)] 10 2
}

func ExampleCompute_tooManyWorkers() {
	g, _ := core.NewGraph(2, []core.Edge{{From: 0, To: 1, Weight: 10}})
	_, err := kruskal.Compute(g, kruskal.WithWorkers(2))
	fmt.Println(err)
	// Output: workers=2 edges=1: kruskal: worker count exceeds edge count
}
