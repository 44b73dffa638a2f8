// Package fuzz drives a solver over a corpus of generated samples and reports
// the samples that made it exit with a non-zero status.
//
// A run is linear:
//
//	Clean → Generate → Enumerate → for each file { Invoke → CheckStatus } → Done
//
// Solver failures are the one expected condition: each prints a notice and
// the run moves on to the next file. Everything else (corpus generation,
// directory listing, opening a sample) aborts the run with an error.
package fuzz

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridfuzz/corpus"
	"github.com/katalvlaran/gridfuzz/sample"
	"github.com/katalvlaran/gridfuzz/solver"
)

// Driver feeds every file of a corpus directory to Solver.
type Driver struct {
	Solver solver.Solver
	// Out receives one "Failure at: <file>" line per failing sample; nil discards.
	Out io.Writer
	// Logger records per-file progress at debug level; nil discards.
	Logger *slog.Logger
	// Workers bounds concurrent solver invocations. Values ≤ 1 process files
	// strictly one after another, in name order.
	Workers int
	// Timeout bounds a single solver invocation; 0 waits indefinitely.
	Timeout time.Duration
}

// Run solves every sample in dir and returns the tally. Notices are printed
// as failures are observed; with Workers > 1 their order follows completion.
func (d *Driver) Run(ctx context.Context, dir string) (*Report, error) {
	names, err := corpus.List(dir)
	if err != nil {
		return nil, err
	}
	out, log := d.Out, d.logger()
	if out == nil {
		out = io.Discard
	}

	report := &Report{Dir: dir, Files: len(names), Failures: []Failure{}}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, d.Workers))
	for _, name := range names {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			fail, err := d.check(gctx, filepath.Join(dir, name))
			if err != nil {
				return err
			}
			if fail == nil {
				log.Debug("solver passed", "file", name)
				return nil
			}
			fail.File = name

			mu.Lock()
			defer mu.Unlock()
			report.Failures = append(report.Failures, *fail)
			_, err = fmt.Fprintf(out, "Failure at: %s\n", name)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return report, err
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

// check runs the solver on one file. It returns a Failure for a non-zero exit
// or a solver that could not run, and an error only when the file itself is
// unreadable.
func (d *Driver) check(ctx context.Context, path string) (*Failure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fuzz: open sample: %w", err)
	}
	defer f.Close()

	if d.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.Timeout)
		defer cancel()
	}

	start := time.Now()
	code, err := d.Solver.Solve(ctx, f)
	d.logger().Debug("solver exited", "file", filepath.Base(path), "code", code, "elapsed", time.Since(start))
	switch {
	case err != nil:
		d.logger().Warn("solver did not run", "file", filepath.Base(path), "err", err)
		return &Failure{ExitCode: code, Err: err.Error()}, nil
	case code != 0:
		return &Failure{ExitCode: code}, nil
	default:
		return nil, nil
	}
}

func (d *Driver) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return d.Logger
}

// Run performs a complete fuzz run: rebuild the generator's corpus directory
// from plan, then drive the solver over it.
func Run(ctx context.Context, gen *sample.Generator, plan corpus.Plan, d *Driver) (*Report, error) {
	if err := corpus.Build(gen, plan); err != nil {
		return nil, err
	}
	return d.Run(ctx, gen.Dir())
}
