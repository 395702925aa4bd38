package seam

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAffectedCells pins the exact invalidation list, including both edges.
func TestAffectedCells(t *testing.T) {
	cases := []struct {
		name string
		seam []int
		cols int
		want []cell
	}{
		{
			name: "Interior",
			seam: []int{2, 3, 2},
			cols: 5,
			want: []cell{{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 1}, {2, 2}},
		},
		{
			name: "LeftEdge",
			seam: []int{0, 0},
			cols: 3,
			want: []cell{{0, 0}, {1, 0}},
		},
		{
			name: "RightEdge",
			seam: []int{3, 2},
			cols: 3,
			want: []cell{{0, 2}, {1, 1}, {1, 2}},
		},
		{
			name: "CollapsedToOneColumn",
			seam: []int{0, 1},
			cols: 1,
			want: []cell{{0, 0}, {1, 0}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, affectedCells(tc.seam, tc.cols))
		})
	}
}

// TestCoordinateMapping checks toStored and toImage are inverse swaps.
func TestCoordinateMapping(t *testing.T) {
	c := &Carver{orientation: Vertical}
	r, k := c.toStored(3, 1)
	assert.Equal(t, [2]int{1, 3}, [2]int{r, k})
	col, row := c.toImage(r, k)
	assert.Equal(t, [2]int{3, 1}, [2]int{col, row})

	c.orientation = Horizontal
	r, k = c.toStored(3, 1)
	assert.Equal(t, [2]int{3, 1}, [2]int{r, k})
	col, row = c.toImage(r, k)
	assert.Equal(t, [2]int{3, 1}, [2]int{col, row})
}
