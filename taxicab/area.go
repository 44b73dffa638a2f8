// Package taxicab compares the area of a circle under the Euclidean and the
// Manhattan (taxicab) metric.
//
// Under the Manhattan metric the set of points at distance r from the centre
// is a square rotated by 45°, its diagonal 2r long, so its area is
// (2r)²/2 = 2r².
package taxicab

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// ErrNoRadius is returned when the input holds no radius token.
var ErrNoRadius = errors.New("taxicab: missing radius")

// EuclideanArea returns π·r². r² is squared in integers first, so the result
// is the float64 nearest to π times the exact square.
func EuclideanArea(r int) float64 {
	return math.Pi * float64(r*r)
}

// ManhattanArea returns 2·r².
func ManhattanArea(r int) float64 {
	return 2 * float64(r*r)
}

// ReadRadius parses a single integer radius from r. Surrounding whitespace is
// ignored; anything that is not an integer is an error.
func ReadRadius(r io.Reader) (int, error) {
	var tok string
	if _, err := fmt.Fscan(r, &tok); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, ErrNoRadius
		}
		return 0, fmt.Errorf("taxicab: read radius: %w", err)
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("taxicab: parse radius: %w", err)
	}
	return v, nil
}
