package gridgraph

import "fmt"

// Regions is a labelling of every grid cell with the id of the maximal
// connected region of equal-valued cells containing it.
// It is computed once and answers any number of queries in O(1).
type Regions struct {
	gg     *GridGraph
	labels []int // row-major cell index -> region id
	count  int
}

// Regions partitions the grid into regions of equal value, according to
// gg.Conn connectivity. Region ids are assigned in row-major order of each
// region's first cell, starting at 0.
//
// Time:   O(W·H·d).
// Memory: O(W·H).
func (gg *GridGraph) Regions() *Regions {
	total := gg.Width * gg.Height
	seen := make([]bool, total)
	labels := make([]int, total)
	sameValue := func(ux, uy, vx, vy int) bool {
		return gg.CellValues[uy][ux] == gg.CellValues[vy][vx]
	}

	id := 0
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if seen[gg.index(x, y)] {
				continue
			}
			for _, i := range gg.flood(x, y, seen, sameValue) {
				labels[i] = id
			}
			id++
		}
	}
	return &Regions{gg: gg, labels: labels, count: id}
}

// Count returns the number of regions.
func (r *Regions) Count() int { return r.count }

// Label returns the region id of cell p, or -1 when p lies outside the grid.
func (r *Regions) Label(p Point) int {
	if !r.gg.InBounds(p.X, p.Y) {
		return -1
	}
	return r.labels[r.gg.index(p.X, p.Y)]
}

// Classify reports whether from and to are joined by a single-valued path:
// Binary for a path of 0-cells, Decimal for any other shared value, Neither
// when they lie in different regions. A point outside the grid yields
// ErrOutOfBounds.
func (r *Regions) Classify(from, to Point) (Answer, error) {
	for _, p := range [...]Point{from, to} {
		if !r.gg.InBounds(p.X, p.Y) {
			return Neither, fmt.Errorf("Classify(%d,%d): %w", p.X, p.Y, ErrOutOfBounds)
		}
	}
	if r.Label(from) != r.Label(to) {
		return Neither, nil
	}
	if r.gg.CellValues[from.Y][from.X] == 0 {
		return Binary, nil
	}
	return Decimal, nil
}

// flood collects every cell reachable from (x0,y0) through neighbours accepted
// by step, marking them in seen. The start cell must not be marked yet.
func (gg *GridGraph) flood(x0, y0 int, seen []bool, step func(ux, uy, vx, vy int) bool) []int {
	i0 := gg.index(x0, y0)
	seen[i0] = true
	queue := []int{i0}

	for qi := 0; qi < len(queue); qi++ {
		ux, uy := gg.Coordinate(queue[qi])
		for _, d := range gg.offsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) || !step(ux, uy, vx, vy) {
				continue
			}
			vi := gg.index(vx, vy)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return queue
}
