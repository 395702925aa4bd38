package picture

import "errors"

var (
	// ErrEmptyPicture indicates a requested or supplied grid with no rows or no columns.
	ErrEmptyPicture = errors.New("picture: width and height must be at least 1")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("picture: all rows must have the same length")
	// ErrOutOfRange indicates a (col,row) pair outside the grid.
	ErrOutOfRange = errors.New("picture: coordinates out of range")
	// ErrNilImage indicates a nil image.Image passed to an adapter.
	ErrNilImage = errors.New("picture: image is nil")
)
