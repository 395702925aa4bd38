package seam

// ensureOrientation transposes the stored energy matrix when want differs
// from the current layout and flips the flag. This is the only place a full
// O(W×H) transform of the matrix happens; consecutive requests in the same
// direction skip it.
func (c *Carver) ensureOrientation(want Orientation) {
	if c.orientation == want {
		return
	}
	c.energy = c.energy.T()
	c.orientation = want
}

// toStored maps an image coordinate to (row, col) of the stored matrix.
func (c *Carver) toStored(col, row int) (r, k int) {
	if c.orientation == Vertical {
		return row, col
	}

	return col, row
}

// toImage maps a stored (row, col) back to an image coordinate.
// toStored and toImage are the same swap; both exist for readability.
func (c *Carver) toImage(r, k int) (col, row int) {
	if c.orientation == Vertical {
		return k, r
	}

	return r, k
}

// dims returns the picture extent orthogonal to and along a seam of
// orientation o: a vertical seam has Height entries, each in [0, Width).
func (c *Carver) dims(o Orientation) (length, span int) {
	if o == Vertical {
		return c.Height(), c.Width()
	}

	return c.Width(), c.Height()
}
