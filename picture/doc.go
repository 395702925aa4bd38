// Package picture holds the pixel grid that the seam carver reads and rewrites.
//
// What:
//
//   - Picture is a width×height grid of RGB triples (three 8-bit channels),
//     stored row-major in one flat slice.
//   - Coordinates are always (col, row): col in [0,Width), row in [0,Height).
//   - Checked accessors (At/Set) return ErrOutOfRange; unchecked ones
//     (RGBAt/SetRGB) follow the image package convention and ignore or zero
//     out-of-range access.
//   - FromImage/ToImage adapt to the standard image.Image world, so codecs
//     stay outside this package.
//
// Complexity:
//
//   - New, Clone, FromImage, ToImage: O(W×H) time and memory.
//   - At, Set, RGBAt, SetRGB, InBounds, IsBorder: O(1).
//
// Errors:
//
//   - ErrEmptyPicture: width or height below 1.
//   - ErrNonRectangular: rows of differing lengths in NewFromRows.
//   - ErrOutOfRange: coordinates outside the grid.
//   - ErrNilImage: nil image.Image passed to FromImage.
package picture
