package sample

import (
	"fmt"
	"os"
	"path/filepath"
)

// Generator produces random samples from its configured Rand.
// A Generator is not safe for concurrent use.
type Generator struct {
	cfg config
}

// NewGenerator builds a Generator. A random source is mandatory.
func NewGenerator(opts ...Option) (*Generator, error) {
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNeedRandSource)
	}
	return &Generator{cfg: cfg}, nil
}

// Dir returns the directory WriteSample and Batch write to.
func (g *Generator) Dir() string { return g.cfg.dir }

// Sample draws an nrow×ncol grid and nQueries queries.
//
// Each row gets k ones, k uniform in [0, ncol), at k distinct columns chosen
// without replacement; with ncol == 1 every row is "0". Query endpoints are
// uniform over the grid, independent of cell values.
//
// Complexity: O(nrow·ncol + nQueries).
func (g *Generator) Sample(nrow, ncol, nQueries int) (*Sample, error) {
	if nrow < 1 || ncol < 1 || nQueries < 1 {
		return nil, fmt.Errorf("%s(%d, %d, %d): every argument must be ≥ 1: %w",
			methodSample, nrow, ncol, nQueries, ErrBadSize)
	}
	rng := g.cfg.rng

	s := &Sample{Rows: nrow, Cols: ncol, Grid: make([][]uint8, nrow), Queries: make([]Query, nQueries)}
	for r := range s.Grid {
		row := make([]uint8, ncol)
		k := rng.Intn(ncol)
		for _, c := range rng.Perm(ncol)[:k] {
			row[c] = 1
		}
		s.Grid[r] = row
	}
	for i := range s.Queries {
		s.Queries[i] = Query{
			FromRow: 1 + rng.Intn(nrow),
			FromCol: 1 + rng.Intn(ncol),
			ToRow:   1 + rng.Intn(nrow),
			ToCol:   1 + rng.Intn(ncol),
		}
	}
	return s, nil
}

// WriteSample draws a sample and writes it to Dir()/FileName(nrow, ncol, nQueries),
// replacing any existing file of that name. The file is written to a hidden
// temporary sibling and renamed into place, so readers never observe a
// partially written sample. Returns the path written.
func (g *Generator) WriteSample(nrow, ncol, nQueries int) (string, error) {
	s, err := g.Sample(nrow, ncol, nQueries)
	if err != nil {
		return "", fmt.Errorf("%s: %w", methodWriteSample, err)
	}
	path := filepath.Join(g.cfg.dir, s.Name())
	if err := writeFileAtomic(path, s); err != nil {
		return "", fmt.Errorf("%s: %w", methodWriteSample, err)
	}
	g.cfg.logger.Debug("sample written", "path", path, "rows", nrow, "cols", ncol, "queries", nQueries)
	return path, nil
}

// Batch writes n samples with nrow, ncol uniform in [1, maxDim) and nQueries
// uniform in [1, maxQueries), then prints a one-line summary to the output
// writer. maxDim ≤ 1 or maxQueries ≤ 1 fails with ErrSampleRange before any
// file is written. Returns the paths written, in order (duplicates possible
// when dimensions repeat).
func (g *Generator) Batch(n, maxDim, maxQueries int) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < 1: %w", methodBatch, n, ErrBadSize)
	}
	if maxDim <= 1 || maxQueries <= 1 {
		return nil, fmt.Errorf("%s: maxDim=%d maxQueries=%d: %w", methodBatch, maxDim, maxQueries, ErrSampleRange)
	}
	rng := g.cfg.rng

	paths := make([]string, 0, n)
	for i := 0; i < n; i++ {
		nrow := 1 + rng.Intn(maxDim-1)
		ncol := 1 + rng.Intn(maxDim-1)
		nQueries := 1 + rng.Intn(maxQueries-1)
		path, err := g.WriteSample(nrow, ncol, nQueries)
		if err != nil {
			return paths, fmt.Errorf("%s: sample %d/%d: %w", methodBatch, i+1, n, err)
		}
		paths = append(paths, path)
	}
	if _, err := fmt.Fprintf(g.cfg.out, "generated %d samples with maxDim %d\n", n, maxDim); err != nil {
		return paths, fmt.Errorf("%s: report: %w", methodBatch, err)
	}
	return paths, nil
}

// writeFileAtomic encodes s into a temporary file next to path and renames it
// over path. The directory is created if missing.
func writeFileAtomic(path string, s *Sample) (err error) {
	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if _, err = s.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
