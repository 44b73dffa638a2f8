// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/gridfuzz.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a point outside the grid was queried.
	ErrOutOfBounds = errors.New("gridgraph: point out of bounds")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Point addresses a cell by zero-based column X and row Y.
type Point struct {
	X, Y int
}

// Answer classifies a reachability query between two cells.
type Answer int

const (
	// Binary: both endpoints are 0-cells joined by a path of 0-cells.
	Binary Answer = iota
	// Decimal: both endpoints are 1-cells joined by a path of 1-cells.
	Decimal
	// Neither: no single-valued path exists.
	Neither
)

// String returns the lowercase answer word written by solvers.
func (a Answer) String() string {
	switch a {
	case Binary:
		return "binary"
	case Decimal:
		return "decimal"
	default:
		return "neither"
	}
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings: Conn=Conn4,
// the moves allowed by sample-file solvers.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
// offsets is precomputed from Conn for adjacency lookups.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
	Conn          Connectivity
	offsets       [][2]int
}
