package builder_test

import (
	"fmt"

	"github.com/katalvlaran/misgen/builder"
)

// ExampleGenerate builds a small random graph with each strategy.
func ExampleGenerate() {
	for _, s := range builder.Strategies() {
		g, err := builder.Generate(5, 4, s, builder.WithSeed(builder.DefaultSeed))
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(s, g.VertexCount(), g.EdgeCount())
	}

	_, err := builder.Generate(3, 4, builder.StrategyRejection, builder.WithSeed(builder.DefaultSeed))
	fmt.Println(err)

	// Output:
	// exhaustive 5 4
	// rejection 5 4
	// BuildGraph: Rejection: m=4 exceeds 3 free pairs on n=3 vertices: builder: infeasible edge count
}
