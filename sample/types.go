package sample

import (
	"fmt"
	"strconv"
)

// Query asks for a route between two cells, both 1-indexed (row, col).
type Query struct {
	FromRow, FromCol int
	ToRow, ToCol     int
}

// Sample is one binary grid and its queries.
// Grid[r][c] is 0 or 1; every row holds exactly Cols cells.
type Sample struct {
	Rows, Cols int
	Grid       [][]uint8
	Queries    []Query
}

// FileName returns the file name of a sample with the given dimensions.
// Samples with equal (nrow, ncol, nQueries) share a name and overwrite each other.
func FileName(nrow, ncol, nQueries int) string {
	return strconv.Itoa(nrow) + "_" + strconv.Itoa(ncol) + "_" + strconv.Itoa(nQueries) + "_.in"
}

// Name returns FileName for s.
func (s *Sample) Name() string {
	return FileName(s.Rows, s.Cols, len(s.Queries))
}

// Validate checks the grid shape, cell alphabet and query bounds.
func (s *Sample) Validate() error {
	if s.Rows < 1 || s.Cols < 1 {
		return fmt.Errorf("sample %dx%d: %w", s.Rows, s.Cols, ErrBadSize)
	}
	if len(s.Grid) != s.Rows {
		return fmt.Errorf("sample: %d rows, header says %d: %w", len(s.Grid), s.Rows, ErrMalformed)
	}
	for r, row := range s.Grid {
		if len(row) != s.Cols {
			return fmt.Errorf("sample: row %d has %d cells, want %d: %w", r+1, len(row), s.Cols, ErrMalformed)
		}
		for c, v := range row {
			if v > 1 {
				return fmt.Errorf("sample: cell (%d,%d)=%d is not binary: %w", r+1, c+1, v, ErrMalformed)
			}
		}
	}
	for i, q := range s.Queries {
		if !s.inBounds(q.FromRow, q.FromCol) || !s.inBounds(q.ToRow, q.ToCol) {
			return fmt.Errorf("sample: query %d %v outside %dx%d: %w", i+1, q, s.Rows, s.Cols, ErrMalformed)
		}
	}
	return nil
}

func (s *Sample) inBounds(row, col int) bool {
	return row >= 1 && row <= s.Rows && col >= 1 && col <= s.Cols
}
