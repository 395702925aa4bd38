// Package energy scores how visually important each pixel of a picture is.
//
// The score is the dual-gradient magnitude over the 4-neighbourhood:
//
//	Δx² = Σ_{R,G,B} (left − right)²
//	Δy² = Σ_{R,G,B} (up − down)²
//	e(col,row) = √(Δx² + Δy²)
//
// Pixels on the outer frame have no complete neighbourhood and get the fixed
// BorderEnergy instead, which keeps seams away from the frame unless nothing
// cheaper exists.
//
// Complexity:
//
//   - DualGradient: O(1).
//   - Compute:      O(W×H) time and memory.
package energy
