// Package seam defines core types, sentinel errors and configuration options
// for the content-aware seam carver.
//
// Options:
//
//	– Orientation: initial layout of the stored energy matrix (Vertical or Horizontal).
//	– PatchMode:   how energy is repaired after a removal (Incremental or Full).
//
// Errors (sentinel):
//
//	– ErrNilPicture        if New receives a nil picture.
//	– ErrOutOfRange        if Energy is asked for a pixel off the grid.
//	– ErrNilSeam           if a remove call receives a nil seam.
//	– ErrSeamLength        if the seam length differs from the orthogonal dimension.
//	– ErrSeamOutOfRange    if a seam entry is outside [0, dimension).
//	– ErrSeamDisconnected  if two consecutive entries differ by more than 1.
//	– ErrDimensionTooSmall if the removal axis is already 1 pixel wide.
//	– ErrBadOrientation    if an Orientation value is neither Vertical nor Horizontal.
//	– ErrBadPatchMode      if a PatchMode value is unknown.
//	– ErrBadCount          if a carve count is negative.
//	– ErrEnlarge           if Resize is asked to grow a dimension.
package seam

import (
	"errors"

	"github.com/katalvlaran/seamcarve/energy"
)

// Sentinel errors returned by the carver.
var (
	// ErrNilPicture indicates that a nil *picture.Picture was passed to New.
	ErrNilPicture = errors.New("seam: picture is nil")

	// ErrOutOfRange aliases energy.ErrOutOfRange (and thus picture.ErrOutOfRange).
	ErrOutOfRange = energy.ErrOutOfRange

	// ErrNilSeam indicates that a nil seam was passed to a remove call.
	ErrNilSeam = errors.New("seam: seam is nil")

	// ErrSeamLength indicates a seam whose length differs from the height
	// (vertical) or width (horizontal) of the picture.
	ErrSeamLength = errors.New("seam: invalid seam length")

	// ErrSeamOutOfRange indicates a seam entry outside the removable axis.
	ErrSeamOutOfRange = errors.New("seam: seam entry out of range")

	// ErrSeamDisconnected indicates consecutive seam entries differing by more than 1.
	ErrSeamDisconnected = errors.New("seam: consecutive seam entries differ by more than 1")

	// ErrDimensionTooSmall indicates a removal along an axis that is already 1 pixel.
	ErrDimensionTooSmall = errors.New("seam: dimension must be greater than 1 to remove a seam")

	// ErrBadOrientation indicates an Orientation value outside {Vertical, Horizontal}.
	ErrBadOrientation = errors.New("seam: unknown orientation")

	// ErrBadPatchMode indicates a PatchMode value outside {Incremental, Full}.
	ErrBadPatchMode = errors.New("seam: unknown patch mode")

	// ErrBadCount indicates a negative number of seams to carve.
	ErrBadCount = errors.New("seam: seam count must be non-negative")

	// ErrEnlarge indicates a Resize target larger than the current picture.
	ErrEnlarge = errors.New("seam: target size exceeds current size; seam insertion is not supported")
)

// Orientation names the direction of a seam and, equivalently, the layout of
// the stored energy matrix.
//
// Vertical   – seam runs top to bottom, one column index per image row;
// matrix rows are image rows.
// Horizontal – seam runs left to right, one row index per image column;
// matrix rows are image columns (the matrix is stored transposed).
type Orientation int

const (
	// Vertical seams remove one pixel from every row (width shrinks).
	Vertical Orientation = iota

	// Horizontal seams remove one pixel from every column (height shrinks).
	Horizontal
)

// String returns "vertical" or "horizontal".
func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// valid reports whether o is one of the two known orientations.
func (o Orientation) valid() bool {
	return o == Vertical || o == Horizontal
}

// PatchMode controls how the energy matrix is repaired after a removal.
//
// Incremental – recompute only the cells adjacent to the removed pixels.
// O(seam length).
// Full        – recompute the whole matrix from the new picture. O(W×H).
// Useful as a reference when checking the incremental path.
type PatchMode int

const (
	// Incremental repairs only cells whose neighbourhood changed.
	Incremental PatchMode = iota

	// Full rebuilds the energy matrix after every removal.
	Full
)

// String returns "incremental" or "full".
func (m PatchMode) String() string {
	switch m {
	case Incremental:
		return "incremental"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

// Options configures a Carver.
//
// Orientation – initial orientation of the stored energy matrix. Changing it
// never changes seams or energies, only where the first transpose happens.
// PatchMode   – energy repair strategy after removals.
type Options struct {
	Orientation Orientation
	PatchMode   PatchMode
}

// Option represents a functional option for configuring a Carver.
type Option func(*Options)

// WithOrientation sets the initial orientation of the energy matrix.
func WithOrientation(o Orientation) Option {
	return func(opts *Options) {
		opts.Orientation = o
	}
}

// WithPatchMode selects the energy repair strategy.
func WithPatchMode(m PatchMode) Option {
	return func(opts *Options) {
		opts.PatchMode = m
	}
}

// DefaultOptions returns the defaults used by New:
//   - Orientation: Vertical.
//   - PatchMode:   Incremental.
func DefaultOptions() Options {
	return Options{
		Orientation: Vertical,
		PatchMode:   Incremental,
	}
}
