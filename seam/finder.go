package seam

import (
	"fmt"
	"math"
)

// FindVerticalSeam returns the minimum-energy top-to-bottom seam: Height
// entries, entry i being the column removed from row i.
func (c *Carver) FindVerticalSeam() []int {
	s, _ := c.findSeam(Vertical)

	return s
}

// FindHorizontalSeam returns the minimum-energy left-to-right seam: Width
// entries, entry i being the row removed from column i.
func (c *Carver) FindHorizontalSeam() []int {
	s, _ := c.findSeam(Horizontal)

	return s
}

// FindSeam returns the minimum-energy seam of orientation o together with
// its total energy.
func (c *Carver) FindSeam(o Orientation) ([]int, float64, error) {
	if !o.valid() {
		return nil, 0, fmt.Errorf("%w: %d", ErrBadOrientation, o)
	}
	s, total := c.findSeam(o)

	return s, total, nil
}

// SeamEnergy sums the current energy along seam s of orientation o.
// The seam is validated exactly as a remove call would validate it, minus
// the dimension check.
func (c *Carver) SeamEnergy(o Orientation, s []int) (float64, error) {
	if !o.valid() {
		return 0, fmt.Errorf("%w: %d", ErrBadOrientation, o)
	}
	if err := c.validateSeam(o, s); err != nil {
		return 0, err
	}
	c.ensureOrientation(o)
	var total float64
	for r, k := range s {
		v, err := c.energy.At(r, k)
		if err != nil {
			return 0, err
		}
		total += v
	}

	return total, nil
}

// findSeam runs the shortest-path sweep in orientation o.
//
// The stored matrix is read as a layered DAG: cell (r,k) has edges to
// (r+1,k), (r+1,k-1) and (r+1,k+1) where those exist. Rows are already a
// topological order, so one pass of relaxations settles every distance.
//
// Tie-break contract: an edge replaces the recorded predecessor only when it
// is strictly shorter, and the terminal scan keeps the leftmost strict
// minimum. Changing either comparison to <= changes which seam is returned.
//
// Complexity: O(rows·cols) time and memory.
func (c *Carver) findSeam(o Orientation) ([]int, float64) {
	c.ensureOrientation(o)
	rows, cols := c.energy.Shape()

	distTo := make([]float64, rows*cols)
	edgeTo := make([]int, rows*cols)

	// Row 0 sources: distance is the cell energy itself, predecessor is self.
	top, _ := c.energy.Row(0)
	copy(distTo[:cols], top)
	var k int
	for k = 0; k < cols; k++ {
		edgeTo[k] = k
	}
	for k = cols; k < rows*cols; k++ {
		distTo[k] = math.Inf(1)
	}

	var r, base, next int
	var below []float64
	for r = 0; r < rows-1; r++ {
		below, _ = c.energy.Row(r + 1)
		base, next = r*cols, (r+1)*cols
		for k = 0; k < cols; k++ {
			relax(distTo, edgeTo, below, base, next, k, k)
			if k > 0 {
				relax(distTo, edgeTo, below, base, next, k, k-1)
			}
			if k < cols-1 {
				relax(distTo, edgeTo, below, base, next, k, k+1)
			}
		}
	}

	return traceSeam(distTo, edgeTo, rows, cols)
}

// relax considers the edge (r,from) → (r+1,to); base and next are the flat
// offsets of rows r and r+1, below is row r+1 of the energy matrix.
func relax(distTo []float64, edgeTo []int, below []float64, base, next, from, to int) {
	cand := distTo[base+from] + below[to]
	if cand < distTo[next+to] {
		distTo[next+to] = cand
		edgeTo[next+to] = from
	}
}

// traceSeam picks the leftmost strict minimum of the last row and walks the
// predecessors back to row 0.
func traceSeam(distTo []float64, edgeTo []int, rows, cols int) ([]int, float64) {
	last := (rows - 1) * cols
	best, lowest := 0, math.Inf(1)
	for k := 0; k < cols; k++ {
		if distTo[last+k] < lowest {
			lowest = distTo[last+k]
			best = k
		}
	}

	s := make([]int, rows)
	for r, k := rows-1, best; r >= 0; r-- {
		s[r] = k
		k = edgeTo[r*cols+k]
	}

	return s, lowest
}
