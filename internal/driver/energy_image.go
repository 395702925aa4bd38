package driver

import (
	"image"
	"image/color"
	"math"

	"github.com/katalvlaran/seamcarve/matrix"
)

// EnergyImage renders an energy matrix (rows = height) as grayscale scaled
// so the largest energy is white. An all-zero matrix renders black.
func EnergyImage(m *matrix.Dense) *image.Gray {
	rows, cols := m.Shape()
	img := image.NewGray(image.Rect(0, 0, cols, rows))

	hi := 0.0
	m.Do(func(_, _ int, v float64) bool {
		hi = math.Max(hi, v)
		return true
	})
	if hi == 0 {
		return img
	}
	m.Do(func(i, j int, v float64) bool {
		img.SetGray(j, i, color.Gray{Y: uint8(math.Round(255 * v / hi))})
		return true
	})

	return img
}
