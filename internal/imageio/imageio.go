// Package imageio moves pictures between files and *picture.Picture.
//
// Decoding sniffs the content, so any registered format loads regardless of
// the file name: png, jpeg, gif, bmp, tiff and webp. Files named *.pdf are
// rasterised instead, one page at a time. Encoding is chosen by extension
// and covers every decodable format except webp, for which no encoder is
// available.
package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/katalvlaran/seamcarve/picture"
)

var (
	// ErrUnsupportedFormat is returned for an output extension with no encoder.
	ErrUnsupportedFormat = errors.New("imageio: unsupported output format")
	// ErrNoSuchPage is returned when a PDF page index is out of range.
	ErrNoSuchPage = errors.New("imageio: pdf page out of range")
)

// DefaultPDFDPI is the rasterisation resolution used when Options.PDFDPI is zero.
const DefaultPDFDPI = 150

// Options tune decoding and encoding.
type Options struct {
	// JPEGQuality in [1,100]; zero selects jpeg.DefaultQuality.
	JPEGQuality int
	// PDFDPI is the resolution PDF pages are rendered at.
	PDFDPI int
	// PDFPage selects the zero-based page of a PDF input.
	PDFPage int
}

// Load decodes the file at path with default options and returns the
// picture with the name of the detected format.
func Load(path string) (*picture.Picture, string, error) {
	return LoadWith(path, Options{})
}

// LoadWith is Load with explicit options.
func LoadWith(path string, opts Options) (*picture.Picture, string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		p, err := LoadPDFPage(path, opts.PDFPage, opts.PDFDPI)
		if err != nil {
			return nil, "", err
		}

		return p, "pdf", nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("imageio: open %s: %w", path, err)
	}
	defer f.Close()

	p, format, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, "", fmt.Errorf("imageio: %s: %w", path, err)
	}

	return p, format, nil
}

// Decode reads one image from r.
func Decode(r io.Reader) (*picture.Picture, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode: %w", err)
	}
	p, err := picture.FromImage(img)
	if err != nil {
		return nil, format, err
	}

	return p, format, nil
}

// LoadPDFPage renders one page of the PDF at path. A dpi of zero selects
// DefaultPDFDPI.
func LoadPDFPage(path string, page, dpi int) (*picture.Picture, error) {
	if dpi == 0 {
		dpi = DefaultPDFDPI
	}
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: open pdf %s: %w", path, err)
	}
	defer doc.Close()

	if page < 0 || page >= doc.NumPage() {
		return nil, fmt.Errorf("imageio: %s page %d of %d: %w", path, page, doc.NumPage(), ErrNoSuchPage)
	}
	img, err := doc.ImageDPI(page, float64(dpi))
	if err != nil {
		return nil, fmt.Errorf("imageio: render %s page %d: %w", path, page, err)
	}

	return picture.FromImage(img)
}

// FormatFromPath maps a file extension to an encoder name.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "png", "gif", "bmp":
		return ext, nil
	case "jpg", "jpeg":
		return "jpeg", nil
	case "tif", "tiff":
		return "tiff", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Save encodes img into path, picking the encoder from the extension. The
// file is only created once the format is known to be supported.
func Save(path string, img image.Image, opts Options) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("imageio: close %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if err = Encode(w, img, format, opts); err != nil {
		return fmt.Errorf("imageio: %s: %w", path, err)
	}

	return w.Flush()
}

// SavePicture is Save for a *picture.Picture.
func SavePicture(path string, p *picture.Picture, opts Options) error {
	if p == nil {
		return fmt.Errorf("imageio: save %s: %w", path, picture.ErrNilImage)
	}

	return Save(path, p.ToImage(), opts)
}

// Encode writes img to w in the named format.
func Encode(w io.Writer, img image.Image, format string, opts Options) error {
	switch format {
	case "png":
		return png.Encode(w, img)
	case "jpeg":
		q := opts.JPEGQuality
		if q == 0 {
			q = jpeg.DefaultQuality
		}

		return jpeg.Encode(w, img, &jpeg.Options{Quality: q})
	case "gif":
		return gif.Encode(w, img, nil)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
