package builder_test

import (
	"fmt"

	"github.com/dfacoet/hopgraph/builder"
	"github.com/dfacoet/hopgraph/core"
)

// ExampleBuildGraph composes a directed cycle with isolated nodes.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(4), builder.Isolated(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	out, _ := g.Neighbors(3, core.Directed)
	fmt.Println(g.NodeCount(), g.EdgeCount(), out)
	// Output:
	// 6 4 [0]
}

// ExampleWithBidirectional mirrors the arcs of a path.
func ExampleWithBidirectional() {
	g, _ := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithBidirectional()}, builder.Path(3))
	for _, e := range g.Edges() {
		fmt.Printf("%d→%d ", e.From, e.To)
	}
	fmt.Println()
	// Output:
	// 0→1 1→0 1→2 2→1
}
