package seam

import (
	"fmt"

	"github.com/katalvlaran/seamcarve/energy"
	"github.com/katalvlaran/seamcarve/matrix"
	"github.com/katalvlaran/seamcarve/picture"
)

// Carver removes minimum-energy seams from a picture it owns.
//
// The energy matrix is kept in one of two layouts (see Orientation) and is
// transposed only when a request targets the other direction. A Carver is
// not safe for concurrent use; callers must serialise all calls.
type Carver struct {
	pic         *picture.Picture
	energy      *matrix.Dense
	orientation Orientation
	opts        Options
}

// New builds a Carver over a private copy of p and computes the full energy
// matrix once, O(W×H).
//
// Errors:
//   - ErrNilPicture if p is nil.
//   - ErrBadOrientation / ErrBadPatchMode on invalid options.
func New(p *picture.Picture, opts ...Option) (*Carver, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if p == nil {
		return nil, ErrNilPicture
	}
	if !cfg.Orientation.valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadOrientation, cfg.Orientation)
	}
	if cfg.PatchMode != Incremental && cfg.PatchMode != Full {
		return nil, fmt.Errorf("%w: %d", ErrBadPatchMode, cfg.PatchMode)
	}

	c := &Carver{
		pic:         p.Clone(),
		orientation: Vertical,
		opts:        cfg,
	}
	if err := c.rebuildEnergy(); err != nil {
		return nil, err
	}
	c.ensureOrientation(cfg.Orientation)

	return c, nil
}

// Width returns the current picture width.
func (c *Carver) Width() int { return c.pic.Width() }

// Height returns the current picture height.
func (c *Carver) Height() int { return c.pic.Height() }

// Orientation reports the current layout of the stored energy matrix.
func (c *Carver) Orientation() Orientation { return c.orientation }

// Picture returns a defensive copy of the current pixel grid.
func (c *Carver) Picture() *picture.Picture { return c.pic.Clone() }

// Energy returns the energy of pixel (col,row), read from the maintained
// matrix in whichever orientation it is currently stored.
// Returns ErrOutOfRange outside 0≤col<Width, 0≤row<Height.
func (c *Carver) Energy(col, row int) (float64, error) {
	if !c.pic.InBounds(col, row) {
		return 0, fmt.Errorf("energy(%d,%d) in %dx%d: %w", col, row, c.Width(), c.Height(), ErrOutOfRange)
	}
	r, k := c.toStored(col, row)

	return c.energy.At(r, k)
}

// EnergyMatrix returns a copy of the energy matrix in image layout:
// Height rows by Width columns, entry (row,col) for pixel (col,row).
func (c *Carver) EnergyMatrix() *matrix.Dense {
	if c.orientation == Horizontal {
		return c.energy.T()
	}

	return c.energy.Clone().(*matrix.Dense)
}

// rebuildEnergy recomputes the whole matrix from the picture and stores it
// in the current orientation.
func (c *Carver) rebuildEnergy() error {
	m, err := energy.Compute(c.pic)
	if err != nil {
		return err
	}
	if c.orientation == Horizontal {
		m = m.T()
	}
	c.energy = m

	return nil
}
