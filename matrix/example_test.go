package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/mmbench/matrix"
)

// ExampleMulRange computes the bottom row band of a 3×3 product only.
func ExampleMulRange() {
	a, _ := matrix.NewSquare(3)
	b, _ := matrix.NewSquare(3)
	c, _ := matrix.NewSquare(3)
	_ = a.Apply(func(i, _ int, _ float64) float64 { return float64(i) })
	_ = b.Apply(func(_, j int, _ float64) float64 { return float64(j) })

	if err := matrix.MulRange(c, a, b, 1, 3); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(c)

	// Output:
	// [0, 0, 0]
	// [0, 3, 6]
	// [0, 6, 12]
}
