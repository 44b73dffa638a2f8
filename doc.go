// Package gridfuzz is a toolbox for stress-testing grid-reachability solvers,
// plus a small taxicab-geometry calculator.
//
// What is in here?
//
//	A solver for "ten kinds of people" style puzzles reads a binary map and a
//	list of queries and answers, per query, whether a path of 0-cells
//	("binary"), of 1-cells ("decimal") or neither joins the two endpoints.
//	gridfuzz builds a varied corpus of such inputs and reports every input
//	the solver exits non-zero on.
//
// Under the hood, everything is organized under these subpackages:
//
//	sample/    — sample data model, file format, seeded random generator
//	corpus/    — corpus reset, fixed batch plan, enumeration
//	solver/    — Solver interface: external process or in-process reference
//	fuzz/      — the driver: generate, enumerate, solve, report failures
//	gridgraph/ — binary grids as graphs: regions and reachability answers
//	taxicab/   — circle area under Euclidean vs Manhattan distance
//
// Commands live under cmd/gridfuzz and cmd/taxicab.
//
// Quick ASCII example of a 2×4 sample and its answers:
//
//	2 4          query 1 1 2 2 → decimal  (1-path (1,1)→(1,2)→(2,2))
//	1100         query 1 3 2 3 → binary   (0-path down column 3)
//	0101         query 1 1 2 1 → neither
//
//	go install github.com/katalvlaran/gridfuzz/cmd/gridfuzz@latest
package gridfuzz
