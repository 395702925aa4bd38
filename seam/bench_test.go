package seam_test

import (
	"testing"

	"github.com/katalvlaran/seamcarve/seam"
)

// benchmarkCarve removes n vertical seams from a fresh w×h carver per iteration.
func benchmarkCarve(b *testing.B, w, h, n int, mode seam.PatchMode) {
	p := randomPicture(b, 42, w, h)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c, err := seam.New(p, seam.WithPatchMode(mode))
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		if _, err = c.CarveVertical(n); err != nil {
			b.Fatalf("CarveVertical failed: %v", err)
		}
	}
}

// BenchmarkCarve_Incremental200 measures the default repair strategy.
func BenchmarkCarve_Incremental200(b *testing.B) {
	benchmarkCarve(b, 200, 150, 20, seam.Incremental)
}

// BenchmarkCarve_Full200 measures full recomputation for comparison.
func BenchmarkCarve_Full200(b *testing.B) {
	benchmarkCarve(b, 200, 150, 20, seam.Full)
}

// BenchmarkFind_AlternatingDirections includes a transpose on every call.
func BenchmarkFind_AlternatingDirections(b *testing.B) {
	c, err := seam.New(randomPicture(b, 7, 300, 200))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%2 == 0 {
			c.FindVerticalSeam()
		} else {
			c.FindHorizontalSeam()
		}
	}
}
