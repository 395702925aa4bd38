// Package matrix provides the dense float64 storage used by the seam carver
// for its energy table.
//
// What:
//
//   - Dense: a row-major matrix over one flat buffer (offset = i*cols + j).
//   - Bounds-checked At/Set that return ErrOutOfRange instead of panicking.
//   - T / Transpose: a full O(r·c) transpose into a fresh matrix.
//   - DeletePerRow: removes exactly one element from every row, compacting the
//     backing slice in place so the matrix loses one column.
//   - AllClose: element-wise tolerance comparison for invariance tests.
//
// Why:
//
//	Seam carving keeps an energy value per pixel and walks it row by row.
//	A flat buffer keeps each row contiguous for the DP sweep, and per-row
//	deletion mirrors removing one pixel from every image row.
//
// Complexity:
//
//   - NewDense, Clone, T: O(r·c) time and memory.
//   - At, Set, Row: O(1).
//   - DeletePerRow: O(r·c) element moves, no allocation.
//
// Errors:
//
//   - ErrInvalidDimensions, ErrOutOfRange, ErrDimensionMismatch,
//     ErrNaNInf, ErrNilMatrix, ErrRaggedRows.
package matrix
