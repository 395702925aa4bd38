package energy

import (
	"errors"

	"github.com/katalvlaran/seamcarve/picture"
)

var (
	// ErrNilPicture indicates a nil *picture.Picture argument.
	ErrNilPicture = errors.New("energy: picture is nil")
	// ErrOutOfRange aliases picture.ErrOutOfRange so either sentinel matches.
	ErrOutOfRange = picture.ErrOutOfRange
)
