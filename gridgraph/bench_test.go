package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridfuzz/gridgraph"
)

// randomBinaryGrid returns a deterministic n×n grid of 0/1 values.
func randomBinaryGrid(n int) [][]int {
	rng := rand.New(rand.NewSource(42))
	grid := make([][]int, n)
	for y := 0; y < n; y++ {
		row := make([]int, n)
		for x := 0; x < n; x++ {
			row[x] = rng.Intn(2)
		}
		grid[y] = row
	}
	return grid
}

// BenchmarkRegions measures labelling of the largest grids the corpus plan
// produces (1000×1000).
// Complexity: O(W×H×d)
func BenchmarkRegions(b *testing.B) {
	gg, err := gridgraph.From2D(randomBinaryGrid(1000), gridgraph.Conn4)
	if err != nil {
		b.Fatalf("setup From2D failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.Regions()
	}
}

// BenchmarkRegionsConn8 is BenchmarkRegions with diagonal moves allowed.
func BenchmarkRegionsConn8(b *testing.B) {
	gg, err := gridgraph.From2D(randomBinaryGrid(1000), gridgraph.Conn8)
	if err != nil {
		b.Fatalf("setup From2D failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.Regions()
	}
}
