package gridgraph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegions_Count labels a 3×4 map with Conn4.
//
// Grid:
//
//	1 1 0 0
//	0 1 0 1
//	0 0 0 1
//
// Regions: the 1-cluster top-left, the 0-cluster, and the 1-pair on the right.
func TestRegions_Count(t *testing.T) {
	grid := [][]int{
		{1, 1, 0, 0},
		{0, 1, 0, 1},
		{0, 0, 0, 1},
	}
	gg, err := From2D(grid, Conn4)
	require.NoError(t, err)

	r := gg.Regions()
	assert.Equal(t, 3, r.Count())
	assert.Equal(t, 0, r.Label(Point{0, 0}))
	assert.Equal(t, 1, r.Label(Point{2, 0}))
	assert.Equal(t, r.Label(Point{2, 0}), r.Label(Point{0, 2}), "0-cells connect around the 1-cluster")
	assert.Equal(t, 2, r.Label(Point{3, 1}))
	assert.Equal(t, -1, r.Label(Point{4, 0}))
}

// TestRegions_Classify covers every answer kind and the out-of-range error.
func TestRegions_Classify(t *testing.T) {
	// Grid (x → columns, y → rows):
	//
	//	1 1 0 0
	//	0 1 0 1
	//	0 0 0 1
	grid := [][]int{
		{1, 1, 0, 0},
		{0, 1, 0, 1},
		{0, 0, 0, 1},
	}
	gg, err := From2D(grid, Conn4)
	require.NoError(t, err)
	r := gg.Regions()

	cases := []struct {
		name     string
		from, to Point
		want     Answer
	}{
		{"ZeroPath", Point{0, 1}, Point{3, 0}, Binary},
		{"OnePath", Point{0, 0}, Point{1, 1}, Decimal},
		{"SameCell", Point{3, 2}, Point{3, 2}, Decimal},
		{"DifferentValues", Point{0, 0}, Point{0, 1}, Neither},
		{"SeparatedOnes", Point{0, 0}, Point{3, 2}, Neither},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.Classify(tc.from, tc.to)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err = r.Classify(Point{0, 0}, Point{0, 3})
	assert.True(t, errors.Is(err, ErrOutOfBounds), "got %v", err)
}

// TestRegions_DiagonalOnlyUnderConn8 shows that a diagonal chain of 1-cells
// forms one region under Conn8 and separate ones under Conn4.
func TestRegions_DiagonalOnlyUnderConn8(t *testing.T) {
	grid := [][]int{
		{1, 0},
		{0, 1},
	}
	g4, err := From2D(grid, Conn4)
	require.NoError(t, err)
	g8, err := From2D(grid, Conn8)
	require.NoError(t, err)

	a4, _ := g4.Regions().Classify(Point{0, 0}, Point{1, 1})
	a8, _ := g8.Regions().Classify(Point{0, 0}, Point{1, 1})
	assert.Equal(t, Neither, a4)
	assert.Equal(t, Decimal, a8)
}

// TestAnswer_String pins the words written by solvers.
func TestAnswer_String(t *testing.T) {
	assert.Equal(t, "binary", Binary.String())
	assert.Equal(t, "decimal", Decimal.String())
	assert.Equal(t, "neither", Neither.String())
}
