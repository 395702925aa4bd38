// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const (
	opTranspose = "Transpose"
	opAllClose  = "AllClose"
)

// matrixErrorf prefixes an operation tag to a sentinel error.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// T returns the transpose of m as a new Dense (cols×rows).
// The receiver is left untouched; the numeric policy is inherited.
// Complexity: O(r·c) time and memory.
func (m *Dense) T() *Dense {
	res := &Dense{
		r:              m.c,
		c:              m.r,
		data:           make([]float64, m.r*m.c),
		validateNaNInf: m.validateNaNInf,
	}
	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < m.r; i++ {
		baseSrc = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[baseSrc+j]
		}
	}

	return res
}

// Transpose returns a new Matrix where rows and columns of m are swapped.
// Stage 1 (Validate): nil-check.
// Stage 2 (Execute): fast-path for *Dense or fallback to interface.
// Time Complexity: O(r·c); Space Complexity: O(r·c).
func Transpose(m Matrix) (Matrix, error) {
	// Stage 1: Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Stage 2: Fast-path for Dense → Dense
	if dm, ok := m.(*Dense); ok {
		return dm.T(), nil
	}

	// Fallback: generic interface loop
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j) // safe: bounds ensured
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// DeletePerRow removes element cols[i] from every row i, shrinking the
// matrix from r×c to r×(c-1). Elements right of the removed one shift one
// position left; the backing buffer is compacted in place and never
// reallocated.
//
// Implementation:
//   - Stage 1: validate len(cols)==r, c>1 and every index within [0,c).
//   - Stage 2: walk rows in order, copying the kept prefix and suffix of each
//     row to its new offset i*(c-1). Destinations never overtake sources, so
//     a forward sweep with copy() is safe.
//
// Errors:
//   - ErrDimensionMismatch when len(cols) != Rows().
//   - ErrInvalidDimensions when Cols() == 1 (the result would be empty).
//   - ErrOutOfRange when an index is outside [0, Cols()).
//
// All checks run before any element moves; a failed call leaves m unchanged.
//
// Complexity:
//   - Time O(r*c) element moves, Space O(1).
func (m *Dense) DeletePerRow(cols []int) error {
	if len(cols) != m.r {
		return matrixErrorf(ctxDelete, ErrDimensionMismatch)
	}
	if m.c <= 1 {
		return matrixErrorf(ctxDelete, ErrInvalidDimensions)
	}
	var i, j int
	for i, j = range cols {
		if j < 0 || j >= m.c {
			return denseErrorf(ctxDelete, i, j, ErrOutOfRange)
		}
	}

	nc := m.c - 1
	var src, dst int
	for i = 0; i < m.r; i++ {
		src, dst, j = i*m.c, i*nc, cols[i]
		copy(m.data[dst:dst+j], m.data[src:src+j])
		copy(m.data[dst+j:dst+nc], m.data[src+j+1:src+m.c])
	}
	m.c = nc
	m.data = m.data[:m.r*nc]

	return nil
}
