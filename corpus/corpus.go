// Package corpus manages the directory of generated samples a fuzz run feeds
// to a solver: resetting it, filling it from a fixed plan of batches, and
// enumerating its files.
//
// The directory is assumed to be owned by a single run; nothing here guards
// against concurrent modification by other processes.
package corpus

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/katalvlaran/gridfuzz/sample"
)

// ErrNotDirectory is returned when the corpus path exists but is not a directory.
var ErrNotDirectory = errors.New("corpus: path is not a directory")

// Batch is one Generator.Batch call: N samples with dimensions drawn from
// [1, MaxDim) and query counts from [1, MaxQueries).
type Batch struct {
	N          int
	MaxDim     int
	MaxQueries int
}

// Plan is an ordered list of batches.
type Plan []Batch

// DefaultPlan spans tiny to 1000×1000 grids, plus a few query-heavy samples.
var DefaultPlan = Plan{
	{N: 10, MaxDim: 10, MaxQueries: 10},
	{N: 5, MaxDim: 50, MaxQueries: 10},
	{N: 5, MaxDim: 200, MaxQueries: 10},
	{N: 5, MaxDim: 1000, MaxQueries: 5},
	{N: 3, MaxDim: 1000, MaxQueries: 1000},
}

// Reset prepares dir for a fresh corpus. It is idempotent:
//   - a missing dir is created;
//   - a path that exists but is not a directory yields ErrNotDirectory;
//   - otherwise every regular file directly inside dir is removed.
//
// Subdirectories and their contents are left alone; Reset never recurses.
func Reset(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("corpus: create %s: %w", dir, err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("corpus: stat %s: %w", dir, err)
	case !info.IsDir():
		return fmt.Errorf("corpus: reset %s: %w", dir, ErrNotDirectory)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("corpus: read %s: %w", dir, err)
	}
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("corpus: remove %s: %w", e.Name(), err)
		}
	}
	return nil
}

// Build resets gen.Dir() and runs every batch of plan in order.
// It stops at the first failing batch.
func Build(gen *sample.Generator, plan Plan) error {
	if err := Reset(gen.Dir()); err != nil {
		return err
	}
	for i, b := range plan {
		if _, err := gen.Batch(b.N, b.MaxDim, b.MaxQueries); err != nil {
			return fmt.Errorf("corpus: batch %d %+v: %w", i+1, b, err)
		}
	}
	return nil
}

// List returns the names of the regular files in dir, sorted. Hidden files
// (leading '.') are skipped; they are in-flight temporaries of a writer.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("corpus: list %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
