package cycle_test

import (
	"fmt"

	"github.com/matzehuels/cyclecheck/pkg/cycle"
)

func ExampleHasCycle() {
	tree := []cycle.Edge[int]{{0, 1}, {0, 2}, {1, 3}}
	fmt.Println("tree:", cycle.HasCycle(tree))

	triangle := []cycle.Edge[int]{{0, 1}, {1, 2}, {2, 0}}
	fmt.Println("triangle:", cycle.HasCycle(triangle))
	// Output:
	// tree: false
	// triangle: true
}

func ExampleHasCycle_degenerate() {
	// A self-loop and a repeated pair are both cycles.
	fmt.Println("self-loop:", cycle.HasCycle([]cycle.Edge[int]{{4, 4}}))
	fmt.Println("parallel:", cycle.HasCycle([]cycle.Edge[int]{{0, 1}, {1, 0}}))
	fmt.Println("empty:", cycle.HasCycle[int](nil))
	// Output:
	// self-loop: true
	// parallel: true
	// empty: false
}

func ExampleSummarize() {
	s := cycle.Summarize([]cycle.Edge[string]{{"app", "lib"}, {"lib", "core"}, {"cli", "cli"}})
	fmt.Println("vertices:", s.Vertices)
	fmt.Println("edges:", s.Edges)
	fmt.Println("components:", s.Components)
	// Output:
	// vertices: 4
	// edges: 3
	// components: 2
}
