package energy

import (
	"fmt"
	"math"

	"github.com/katalvlaran/seamcarve/matrix"
	"github.com/katalvlaran/seamcarve/picture"
)

// BorderEnergy is assigned to every pixel on the outer frame of a picture.
const BorderEnergy = 1000.0

// DualGradient returns the energy of the pixel at (col,row).
//
// Errors:
//   - ErrNilPicture if p is nil.
//   - ErrOutOfRange if (col,row) lies outside p.
//
// Complexity: O(1).
func DualGradient(p *picture.Picture, col, row int) (float64, error) {
	if p == nil {
		return 0, ErrNilPicture
	}
	if !p.InBounds(col, row) {
		return 0, fmt.Errorf("energy(%d,%d) in %dx%d: %w", col, row, p.Width(), p.Height(), ErrOutOfRange)
	}

	return At(p, col, row), nil
}

// At is the unchecked form of DualGradient for callers that already
// validated (col,row); the carver uses it on hot paths.
func At(p *picture.Picture, col, row int) float64 {
	if p.IsBorder(col, row) {
		return BorderEnergy
	}
	dx := deltaSquared(p.RGBAt(col-1, row), p.RGBAt(col+1, row))
	dy := deltaSquared(p.RGBAt(col, row-1), p.RGBAt(col, row+1))

	return math.Sqrt(dx + dy)
}

// deltaSquared sums the squared per-channel differences of a and b.
func deltaSquared(a, b picture.RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)

	return dr*dr + dg*dg + db*db
}

// Compute returns the full Height×Width energy matrix of p, with entry
// (row,col) holding the energy of pixel (col,row).
// Complexity: O(W×H) time and memory.
func Compute(p *picture.Picture) (*matrix.Dense, error) {
	if p == nil {
		return nil, ErrNilPicture
	}
	m, err := matrix.NewDense(p.Height(), p.Width())
	if err != nil {
		return nil, fmt.Errorf("energy: %w", err)
	}
	for row := 0; row < p.Height(); row++ {
		line, err := m.Row(row)
		if err != nil {
			return nil, err
		}
		for col := range line {
			line[col] = At(p, col, row)
		}
	}

	return m, nil
}
