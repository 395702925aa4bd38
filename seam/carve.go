package seam

import "fmt"

// CarveVertical finds and removes n vertical seams, one at a time.
// It returns how many seams were removed; on error the picture reflects
// every removal that succeeded before it. Asking for more seams than
// Width-1 stops with ErrDimensionTooSmall once the width reaches 1.
func (c *Carver) CarveVertical(n int) (int, error) {
	return c.carve(Vertical, n)
}

// CarveHorizontal finds and removes n horizontal seams, one at a time.
// Same contract as CarveVertical with height in place of width.
func (c *Carver) CarveHorizontal(n int) (int, error) {
	return c.carve(Horizontal, n)
}

// Resize carves the picture down to width×height, removing vertical seams
// first and horizontal seams second. Growing either dimension is rejected
// with ErrEnlarge before anything is removed.
func (c *Carver) Resize(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("resize to %dx%d: %w", width, height, ErrDimensionTooSmall)
	}
	if width > c.Width() || height > c.Height() {
		return fmt.Errorf("resize %dx%d to %dx%d: %w", c.Width(), c.Height(), width, height, ErrEnlarge)
	}
	if _, err := c.carve(Vertical, c.Width()-width); err != nil {
		return err
	}
	_, err := c.carve(Horizontal, c.Height()-height)

	return err
}

func (c *Carver) carve(o Orientation, n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadCount, n)
	}
	for i := 0; i < n; i++ {
		s, _ := c.findSeam(o)
		if err := c.RemoveSeam(o, s); err != nil {
			return i, err
		}
	}

	return n, nil
}
