// Package seam implements content-aware image shrinking by seam carving.
//
// 🚀 What is seam carving?
//
//	A seam is a connected path of pixels, one per row (vertical seam) or one
//	per column (horizontal seam), where neighbouring entries differ by at
//	most one position. Removing the seam with the lowest total energy shrinks
//	the picture by one pixel while keeping the visually busy regions intact.
//
// ✨ How the Carver works:
//
//   - Energy: every pixel gets a dual-gradient score (package energy);
//     frame pixels get energy.BorderEnergy.
//   - Orientation: the energy matrix is stored either in image layout
//     (Vertical) or transposed (Horizontal). One shortest-path sweep walks
//     "down the rows" in both cases; a request in the other direction first
//     transposes the matrix and flips the flag.
//   - Seam finder: the matrix is a layered DAG where (r,k) reaches
//     (r+1,k-1), (r+1,k), (r+1,k+1). Rows are a topological order, so a
//     single relaxation pass finds the minimum. Ties keep the first
//     predecessor found and the leftmost end cell.
//   - Removal: the seam is validated, a smaller picture is copied out, the
//     seam cells are deleted from each matrix row, and only the cells next
//     to the cut are recomputed.
//
// ⚙️ Usage:
//
//	c, err := seam.New(pic)
//	if err != nil {
//	    return err
//	}
//	for i := 0; i < 50; i++ {
//	    if err := c.RemoveVerticalSeam(c.FindVerticalSeam()); err != nil {
//	        return err
//	    }
//	}
//	out := c.Picture()
//
// Concurrency:
//
//	A Carver holds mutable state (picture, energy matrix, orientation flag)
//	and is not safe for concurrent use. Use one Carver per goroutine or
//	guard it with a lock.
//
// Complexity:
//
//   - New:            O(W·H)
//   - Find*Seam:      O(W·H), plus O(W·H) once per direction switch
//   - Remove*Seam:    O(W·H) picture copy, O(seam length) energy repair
package seam
