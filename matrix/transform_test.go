package matrix_test

import (
	"testing"

	"github.com/katalvlaran/seamcarve/matrix"
	"github.com/stretchr/testify/require"
)

// TestTranspose verifies shape swap, values and the round trip.
func TestTranspose(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)

	tr := m.T()
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr.ToRows())

	back, err := matrix.Transpose(tr)
	require.NoError(t, err)
	ok, err := matrix.AllClose(back, m, 0, 0)
	require.NoError(t, err)
	require.True(t, ok, "T(T(m)) must equal m")

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestDeletePerRow removes one element per row and shifts the rest left.
func TestDeletePerRow(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{
		{0, 1, 2, 3},
		{4, 5, 6, 7},
		{8, 9, 10, 11},
	})
	require.NoError(t, err)

	require.NoError(t, m.DeletePerRow([]int{0, 2, 3}))
	require.Equal(t, 3, m.Cols())
	require.Equal(t, [][]float64{
		{1, 2, 3},
		{4, 5, 7},
		{8, 9, 10},
	}, m.ToRows())

	// A second deletion works on the compacted layout.
	require.NoError(t, m.DeletePerRow([]int{1, 1, 1}))
	require.Equal(t, [][]float64{{1, 3}, {4, 7}, {8, 10}}, m.ToRows())
}

// TestDeletePerRowErrors checks validation and that failures do not mutate.
func TestDeletePerRowErrors(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	require.ErrorIs(t, m.DeletePerRow([]int{0}), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, m.DeletePerRow([]int{0, 2}), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.DeletePerRow([]int{-1, 0}), matrix.ErrOutOfRange)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToRows())

	col, err := matrix.NewDense(2, 1)
	require.NoError(t, err)
	require.ErrorIs(t, col.DeletePerRow([]int{0, 0}), matrix.ErrInvalidDimensions)
}
