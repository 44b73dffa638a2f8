// Package gridgraph treats a 2D grid of cells as a graph, enabling
// region labelling and reachability queries over binary maps.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with 4- or 8-connectivity.
//   - Regions labels every cell with the maximal region of equal-valued
//     neighbours it belongs to.
//   - Regions.Classify answers "can I walk from A to B on 0-cells (Binary),
//     on 1-cells (Decimal), or not at all (Neither)".
//
// Why:
//
//   - Reference answers for fuzz-generated sample files.
//
// Complexity:
//
//   - Regions:          O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - Regions.Classify: O(1).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a query point lies outside the grid.
package gridgraph
