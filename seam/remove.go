package seam

import (
	"fmt"

	"github.com/katalvlaran/seamcarve/picture"
)

// RemoveVerticalSeam deletes one pixel per row, shrinking the width by one.
// See RemoveSeam for validation rules.
func (c *Carver) RemoveVerticalSeam(s []int) error {
	return c.RemoveSeam(Vertical, s)
}

// RemoveHorizontalSeam deletes one pixel per column, shrinking the height by one.
// See RemoveSeam for validation rules.
func (c *Carver) RemoveHorizontalSeam(s []int) error {
	return c.RemoveSeam(Horizontal, s)
}

// RemoveSeam deletes seam s of orientation o from the picture and repairs
// the energy matrix.
//
// Validation (in order, all before any mutation):
//  1. o must be Vertical or Horizontal (ErrBadOrientation).
//  2. s must be non-nil (ErrNilSeam).
//  3. the removal axis must be wider than 1 pixel (ErrDimensionTooSmall).
//  4. len(s) must equal the orthogonal dimension (ErrSeamLength).
//  5. every entry must lie within the removal axis (ErrSeamOutOfRange).
//  6. consecutive entries must differ by at most 1 (ErrSeamDisconnected).
//
// On success a new, smaller picture replaces the old one; the stored matrix
// is brought into orientation o, loses the seam cells, and only the cells
// next to the cut are recomputed (PatchMode Incremental).
//
// Complexity: O(W×H) for the picture copy; O(len(s)) energy evaluations.
func (c *Carver) RemoveSeam(o Orientation, s []int) error {
	if !o.valid() {
		return fmt.Errorf("%w: %d", ErrBadOrientation, o)
	}
	if s == nil {
		return ErrNilSeam
	}
	if _, span := c.dims(o); span <= 1 {
		return fmt.Errorf("remove %s seam from %dx%d: %w", o, c.Width(), c.Height(), ErrDimensionTooSmall)
	}
	if err := c.validateSeam(o, s); err != nil {
		return err
	}

	pic, err := cutPicture(c.pic, o, s)
	if err != nil {
		return err
	}
	c.pic = pic

	c.ensureOrientation(o)
	if c.opts.PatchMode == Full {
		return c.rebuildEnergy()
	}
	if err = c.energy.DeletePerRow(s); err != nil {
		return fmt.Errorf("remove %s seam: %w", o, err)
	}

	return c.patch(affectedCells(s, c.energy.Cols()))
}

// validateSeam checks length, range and connectivity of s for orientation o.
func (c *Carver) validateSeam(o Orientation, s []int) error {
	if s == nil {
		return ErrNilSeam
	}
	length, span := c.dims(o)
	if len(s) != length {
		return fmt.Errorf("%s seam has %d entries, want %d: %w", o, len(s), length, ErrSeamLength)
	}
	for i, v := range s {
		if v < 0 || v >= span {
			return fmt.Errorf("%s seam entry %d = %d not in [0,%d): %w", o, i, v, span, ErrSeamOutOfRange)
		}
		if i > 0 && abs(v-s[i-1]) > 1 {
			return fmt.Errorf("%s seam entries %d,%d = %d,%d: %w", o, i-1, i, s[i-1], v, ErrSeamDisconnected)
		}
	}

	return nil
}

// cutPicture allocates a picture one pixel smaller along the removal axis
// and copies every pixel except the seam, shifting later pixels down by one
// index.
func cutPicture(old *picture.Picture, o Orientation, s []int) (*picture.Picture, error) {
	w, h := old.Width(), old.Height()
	if o == Vertical {
		p, err := picture.New(w-1, h)
		if err != nil {
			return nil, err
		}
		for row := 0; row < h; row++ {
			for col, dst := 0, 0; col < w; col++ {
				if col == s[row] {
					continue
				}
				p.SetRGB(dst, row, old.RGBAt(col, row))
				dst++
			}
		}

		return p, nil
	}

	p, err := picture.New(w, h-1)
	if err != nil {
		return nil, err
	}
	for col := 0; col < w; col++ {
		for row, dst := 0, 0; row < h; row++ {
			if row == s[col] {
				continue
			}
			p.SetRGB(col, dst, old.RGBAt(col, row))
			dst++
		}
	}

	return p, nil
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
