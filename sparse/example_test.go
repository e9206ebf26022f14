package sparse_test

import (
	"fmt"

	"github.com/katalvlaran/crntk/sparse"
)

// ExampleAxpy eliminates coordinate 1 from two rays: x has +2 there and y has
// -3, so 3·x + 2·y has no entry at index 1. Deflate then removes the common
// factor.
func ExampleAxpy() {
	x := sparse.Vector{{Index: 0, Value: 2}, {Index: 1, Value: 2}}
	y := sparse.Vector{{Index: 1, Value: -3}, {Index: 2, Value: 6}}

	z, err := sparse.Axpy(3, x, 2, y)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(z)

	g := sparse.Deflate(z)
	fmt.Println(g, z)

	// Output:
	// [(0,6) (2,12)]
	// 6 [(0,1) (2,2)]
}

// ExampleDot shows that only shared indices contribute.
func ExampleDot() {
	a := sparse.FromDense([]int64{1, -1, 0})
	r := sparse.FromDense([]int64{1, 1, 5})

	d, _ := sparse.Dot(a, r)
	fmt.Println(d)

	// Output:
	// 0
}
