// SPDX-License-Identifier: MIT
// Package sample models, encodes and randomly generates the grid/query input
// files fed to grid-reachability solvers.
//
// What:
//
//   - Sample: an nrow×ncol binary Grid plus a list of 1-indexed Queries.
//   - WriteTo / Parse: the plain-text file format.
//   - FileName: the deterministic "<nrow>_<ncol>_<nQueries>_.in" naming.
//   - Generator: seeded random samples (Sample, WriteSample) and batches of
//     samples with random dimensions (Batch).
//
// File format:
//
//	<nrow> <ncol>
//	<row_1 as ncol binary digits, no separators>
//	...
//	<nQueries>
//	<fromRow> <fromCol> <toRow> <toCol>
//	...
//
// Determinism:
//
//	All randomness flows through the Rand supplied with WithSeed or WithRand;
//	there is no package-level random state. The same seed and the same call
//	sequence produce byte-identical files.
//
// Errors:
//
//   - ErrBadSize: nrow, ncol, nQueries or n below 1.
//   - ErrSampleRange: maxDim or maxQueries ≤ 1 leaves nothing to draw from.
//   - ErrNeedRandSource: NewGenerator without WithSeed/WithRand.
//   - ErrMalformed: Parse met input that does not follow the file format.
package sample
