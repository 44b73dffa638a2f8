// SPDX-License-Identifier: MIT
// Package: gridfuzz/sample
//
// errors.go — sentinel errors for the sample package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w, prefixed by the method name.

package sample

import "errors"

// ErrBadSize indicates a dimension, query count or batch size below 1.
var ErrBadSize = errors.New("sample: invalid size")

// ErrSampleRange indicates an exclusive upper bound that leaves the draw range
// [1, bound) empty (maxDim or maxQueries ≤ 1).
var ErrSampleRange = errors.New("sample: empty range for random draw")

// ErrNeedRandSource indicates a Generator was built without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("sample: rng is required")

// ErrMalformed indicates input that does not follow the sample file format.
var ErrMalformed = errors.New("sample: malformed input")

// Method tags used as error prefixes.
const (
	methodSample      = "Sample"
	methodWriteSample = "WriteSample"
	methodBatch       = "Batch"
	methodParse       = "Parse"
	methodWriteTo     = "WriteTo"
	methodNew         = "NewGenerator"
)
