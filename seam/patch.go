package seam

import (
	"fmt"

	"github.com/katalvlaran/seamcarve/energy"
)

// cell is a (row, col) coordinate in the stored energy matrix.
type cell struct {
	r, k int
}

// affectedCells lists the stored-matrix cells whose energy is invalidated by
// removing seam s, given cols columns remaining after the deletion.
//
// In row r the pixels left and right of the cut are now neighbours: they sit
// at columns s[r]-1 and s[r] of the new layout. Because consecutive seam
// entries differ by at most 1, these two cells also cover every pixel whose
// up or down neighbour changed, and the pixel that became the new last
// column. All other cells keep their colors and neighbourhoods.
func affectedCells(s []int, cols int) []cell {
	cells := make([]cell, 0, 2*len(s))
	for r, k := range s {
		if k > 0 {
			cells = append(cells, cell{r: r, k: k - 1})
		}
		if k < cols {
			cells = append(cells, cell{r: r, k: k})
		}
	}

	return cells
}

// patch recomputes the energy of the listed stored-matrix cells from the
// current picture.
func (c *Carver) patch(cells []cell) error {
	for _, x := range cells {
		col, row := c.toImage(x.r, x.k)
		if err := c.energy.Set(x.r, x.k, energy.At(c.pic, col, row)); err != nil {
			return fmt.Errorf("patch energy: %w", err)
		}
	}

	return nil
}
