package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/seamcarve/matrix"
)

// ExampleDense_DeletePerRow removes a connected path of cells, one per row,
// the same way a vertical seam is cut out of an energy table.
func ExampleDense_DeletePerRow() {
	m, _ := matrix.NewDenseFrom([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	_ = m.DeletePerRow([]int{2, 1})
	fmt.Print(m)
	fmt.Print(m.T())
	// Output:
	// [1, 2]
	// [4, 6]
	// [1, 4]
	// [2, 6]
}
