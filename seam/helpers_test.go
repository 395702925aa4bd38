package seam_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/seamcarve/picture"
	"github.com/stretchr/testify/require"
)

// randomPicture returns a w×h picture with pseudo-random colors from a fixed seed.
func randomPicture(t testing.TB, seed int64, w, h int) *picture.Picture {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	p, err := picture.New(w, h)
	require.NoError(t, err)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			p.SetRGB(col, row, picture.RGB{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
			})
		}
	}

	return p
}

// labelledPicture encodes each pixel's original position in its color so
// shifts can be traced after removals.
func labelledPicture(t testing.TB, w, h int) *picture.Picture {
	t.Helper()
	p, err := picture.New(w, h)
	require.NoError(t, err)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			p.SetRGB(col, row, picture.RGB{R: uint8(col), G: uint8(row), B: 7})
		}
	}

	return p
}

// requireValidSeam asserts length, range and 8-connectivity.
func requireValidSeam(t *testing.T, s []int, length, span int) {
	t.Helper()
	require.Len(t, s, length)
	for i, v := range s {
		require.GreaterOrEqual(t, v, 0, "entry %d", i)
		require.Less(t, v, span, "entry %d", i)
		if i > 0 {
			d := v - s[i-1]
			require.True(t, d >= -1 && d <= 1, "entries %d,%d jump by %d", i-1, i, d)
		}
	}
}

// bruteForceMin enumerates every connected seam through rows of e and
// returns the minimum total. Only for tiny matrices.
func bruteForceMin(e [][]float64) float64 {
	best := -1.0
	var walk func(r, k int, acc float64)
	walk = func(r, k int, acc float64) {
		acc += e[r][k]
		if r == len(e)-1 {
			if best < 0 || acc < best {
				best = acc
			}
			return
		}
		for d := -1; d <= 1; d++ {
			if nk := k + d; nk >= 0 && nk < len(e[0]) {
				walk(r+1, nk, acc)
			}
		}
	}
	for k := range e[0] {
		walk(0, k, 0)
	}

	return best
}

// transpose copies a [][]float64 with rows and columns swapped.
func transpose(m [][]float64) [][]float64 {
	out := make([][]float64, len(m[0]))
	for k := range out {
		out[k] = make([]float64, len(m))
		for r := range m {
			out[k][r] = m[r][k]
		}
	}

	return out
}
