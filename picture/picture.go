package picture

import (
	"fmt"
	"image"
	"image/color"
)

// RGB is one pixel: three 8-bit color channels.
type RGB struct {
	R, G, B uint8
}

// Picture is a mutable width×height grid of RGB pixels.
// pix holds Width*Height pixels in row-major order: pix[row*width+col].
type Picture struct {
	width, height int
	pix           []RGB
}

// New returns a black width×height Picture.
// Returns ErrEmptyPicture if either dimension is below 1.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Picture, error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyPicture
	}

	return &Picture{width: width, height: height, pix: make([]RGB, width*height)}, nil
}

// NewFromRows builds a Picture from rows[row][col], deep-copying the input.
// Returns ErrEmptyPicture if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
func NewFromRows(rows [][]RGB) (*Picture, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyPicture
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	p := &Picture{width: w, height: h, pix: make([]RGB, w*h)}
	for y := 0; y < h; y++ {
		copy(p.pix[y*w:(y+1)*w], rows[y])
	}

	return p, nil
}

// FromImage converts any image.Image into a Picture. Alpha is dropped; the
// image bounds are re-based so the top-left pixel becomes (0,0).
func FromImage(img image.Image) (*Picture, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	b := img.Bounds()
	p, err := New(b.Dx(), b.Dy())
	if err != nil {
		return nil, fmt.Errorf("FromImage %v: %w", b, err)
	}
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			p.pix[p.index(x, y)] = RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8)}
		}
	}

	return p, nil
}

// ToImage renders the Picture as an opaque *image.NRGBA anchored at (0,0).
func (p *Picture) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			c := p.pix[p.index(x, y)]
			img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}

	return img
}

// Width returns the number of columns.
func (p *Picture) Width() int { return p.width }

// Height returns the number of rows.
func (p *Picture) Height() int { return p.height }

// InBounds reports whether (col,row) lies within the grid.
// Complexity: O(1).
func (p *Picture) InBounds(col, row int) bool {
	return col >= 0 && col < p.width && row >= 0 && row < p.height
}

// IsBorder reports whether (col,row) lies on the outer frame of the grid.
// The caller must ensure InBounds(col,row).
func (p *Picture) IsBorder(col, row int) bool {
	return col == 0 || row == 0 || col == p.width-1 || row == p.height-1
}

// index maps (col,row) to a row-major index: row*width + col.
func (p *Picture) index(col, row int) int {
	return row*p.width + col
}

// Coordinate converts a row-major index back to (col,row).
func (p *Picture) Coordinate(idx int) (col, row int) {
	return idx % p.width, idx / p.width
}

// At returns the pixel at (col,row) or ErrOutOfRange.
func (p *Picture) At(col, row int) (RGB, error) {
	if !p.InBounds(col, row) {
		return RGB{}, fmt.Errorf("At(%d,%d) in %dx%d: %w", col, row, p.width, p.height, ErrOutOfRange)
	}

	return p.pix[p.index(col, row)], nil
}

// Set stores c at (col,row) or returns ErrOutOfRange.
func (p *Picture) Set(col, row int, c RGB) error {
	if !p.InBounds(col, row) {
		return fmt.Errorf("Set(%d,%d) in %dx%d: %w", col, row, p.width, p.height, ErrOutOfRange)
	}
	p.pix[p.index(col, row)] = c

	return nil
}

// RGBAt returns the pixel at (col,row), or the zero RGB when out of range.
func (p *Picture) RGBAt(col, row int) RGB {
	if !p.InBounds(col, row) {
		return RGB{}
	}

	return p.pix[p.index(col, row)]
}

// SetRGB stores c at (col,row); out-of-range writes are ignored.
func (p *Picture) SetRGB(col, row int, c RGB) {
	if !p.InBounds(col, row) {
		return
	}
	p.pix[p.index(col, row)] = c
}

// Clone returns an independent deep copy.
// Complexity: O(W×H).
func (p *Picture) Clone() *Picture {
	pix := make([]RGB, len(p.pix))
	copy(pix, p.pix)

	return &Picture{width: p.width, height: p.height, pix: pix}
}

// Equal reports whether p and q have identical dimensions and pixels.
// Two nil pictures are equal.
func (p *Picture) Equal(q *Picture) bool {
	if p == nil || q == nil {
		return p == q
	}
	if p.width != q.width || p.height != q.height {
		return false
	}
	for i := range p.pix {
		if p.pix[i] != q.pix[i] {
			return false
		}
	}

	return true
}

// Rows copies the pixels into rows[row][col]. Intended for diagnostics and tests.
func (p *Picture) Rows() [][]RGB {
	out := make([][]RGB, p.height)
	for y := range out {
		out[y] = make([]RGB, p.width)
		copy(out[y], p.pix[y*p.width:(y+1)*p.width])
	}

	return out
}
