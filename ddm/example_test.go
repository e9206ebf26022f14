package ddm_test

import (
	"fmt"

	"github.com/katalvlaran/crntk/ddm"
	"github.com/katalvlaran/crntk/sparse"
)

// ExampleEnumerate computes the conservation laws of A + B <-> C.
// Species are indexed A=0, B=1, C=2 and each row is rhs − lhs.
func ExampleEnumerate() {
	rows := []sparse.Vector{
		sparse.FromDense([]int64{-1, -1, 1}), // A + B -> C
		sparse.FromDense([]int64{1, 1, -1}),  // C -> A + B
	}

	res, err := ddm.Enumerate(rows, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range res.Rays {
		fmt.Println(r)
	}

	// Output:
	// [(0,1) (2,1)]
	// [(1,1) (2,1)]
}

// ExampleRun delivers progress and completion through a Sink.
func ExampleRun() {
	rows := []sparse.Vector{sparse.FromDense([]int64{1, -1})}

	sink := ddm.SinkFuncs{
		OnProgress: func(remaining int) { fmt.Println("pending:", remaining) },
		OnComplete: func(rays []sparse.Vector) { fmt.Println("rays:", rays) },
	}
	if err := ddm.Run(rows, 2, sink); err != nil {
		fmt.Println("error:", err)
	}

	// Output:
	// pending: 1
	// rays: [[(0,1) (1,1)]]
}
