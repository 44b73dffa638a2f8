package fuzz_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridfuzz/corpus"
	"github.com/katalvlaran/gridfuzz/fuzz"
	"github.com/katalvlaran/gridfuzz/sample"
	"github.com/katalvlaran/gridfuzz/solver"
)

// exitWith returns a solver that drains stdin and exits with code.
func exitWith(code int) solver.Solver {
	return solver.Func(func(_ context.Context, stdin io.Reader) (int, error) {
		_, _ = io.Copy(io.Discard, stdin)
		return code, nil
	})
}

// DriverSuite exercises Driver.Run and fuzz.Run over temporary corpora.
type DriverSuite struct {
	suite.Suite
	dir string
}

func (s *DriverSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

// writeSamples writes one generated sample per (nrow, ncol, nq) triple.
func (s *DriverSuite) writeSamples(dims ...[3]int) []string {
	gen, err := sample.NewGenerator(sample.WithSeed(5), sample.WithDir(s.dir))
	require.NoError(s.T(), err)
	names := make([]string, 0, len(dims))
	for _, d := range dims {
		p, err := gen.WriteSample(d[0], d[1], d[2])
		require.NoError(s.T(), err)
		names = append(names, filepath.Base(p))
	}
	return names
}

// TestSingleFailure: one sample and a solver that always exits 1 yields
// exactly one notice naming that file and nothing else.
func (s *DriverSuite) TestSingleFailure() {
	names := s.writeSamples([3]int{2, 3, 1})

	var out bytes.Buffer
	d := &fuzz.Driver{Solver: exitWith(1), Out: &out}
	rep, err := d.Run(context.Background(), s.dir)
	require.NoError(s.T(), err)

	require.Equal(s.T(), "Failure at: "+names[0]+"\n", out.String())
	require.Equal(s.T(), 1, rep.Files)
	require.Equal(s.T(), []fuzz.Failure{{File: names[0], ExitCode: 1}}, rep.Failures)
	require.True(s.T(), rep.Failed())
}

// TestAllPass prints nothing when the solver accepts every sample.
func (s *DriverSuite) TestAllPass() {
	s.writeSamples([3]int{1, 1, 1}, [3]int{3, 3, 3})

	var out bytes.Buffer
	rep, err := (&fuzz.Driver{Solver: exitWith(0), Out: &out}).Run(context.Background(), s.dir)
	require.NoError(s.T(), err)
	require.Empty(s.T(), out.String())
	require.Equal(s.T(), 2, rep.Files)
	require.False(s.T(), rep.Failed())
}

// TestFailureDoesNotStopRun checks that every file is visited in name order
// even when some fail.
func (s *DriverSuite) TestFailureDoesNotStopRun() {
	names := s.writeSamples([3]int{1, 1, 1}, [3]int{2, 2, 2}, [3]int{3, 3, 3})
	sort.Strings(names)

	var seen []int
	flaky := solver.Func(func(_ context.Context, stdin io.Reader) (int, error) {
		smp, err := sample.Parse(stdin)
		require.NoError(s.T(), err)
		seen = append(seen, smp.Rows)
		return smp.Rows % 2, nil // odd row counts fail
	})

	var out bytes.Buffer
	rep, err := (&fuzz.Driver{Solver: flaky, Out: &out}).Run(context.Background(), s.dir)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{1, 2, 3}, seen)
	require.Equal(s.T(), "Failure at: 1_1_1_.in\nFailure at: 3_3_3_.in\n", out.String())
	require.Len(s.T(), rep.Failures, 2)
}

// TestSolverCannotRun records spawn failures as failures, not run errors.
func (s *DriverSuite) TestSolverCannotRun() {
	s.writeSamples([3]int{1, 2, 1})
	d := &fuzz.Driver{Solver: &solver.Exec{Path: filepath.Join(s.dir, "missing-solver")}}
	rep, err := d.Run(context.Background(), s.dir)
	require.NoError(s.T(), err)
	require.Len(s.T(), rep.Failures, 1)
	require.Equal(s.T(), -1, rep.Failures[0].ExitCode)
	require.NotEmpty(s.T(), rep.Failures[0].Err)
}

// TestTimeout marks a hung solver as failed once Timeout elapses.
func (s *DriverSuite) TestTimeout() {
	s.writeSamples([3]int{1, 1, 1})
	hung := solver.Func(func(ctx context.Context, _ io.Reader) (int, error) {
		<-ctx.Done()
		return -1, nil
	})
	d := &fuzz.Driver{Solver: hung, Timeout: 20 * time.Millisecond}
	rep, err := d.Run(context.Background(), s.dir)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []fuzz.Failure{{File: "1_1_1_.in", ExitCode: -1}}, rep.Failures)
}

// TestWorkers runs samples concurrently and still reports each failure once.
func (s *DriverSuite) TestWorkers() {
	s.writeSamples([3]int{1, 1, 1}, [3]int{2, 2, 2}, [3]int{3, 3, 3}, [3]int{4, 4, 4})

	var calls atomic.Int32
	counting := solver.Func(func(_ context.Context, stdin io.Reader) (int, error) {
		calls.Add(1)
		_, _ = io.Copy(io.Discard, stdin)
		return 3, nil
	})
	var out bytes.Buffer
	rep, err := (&fuzz.Driver{Solver: counting, Out: &out, Workers: 3}).Run(context.Background(), s.dir)
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 4, calls.Load())
	require.Len(s.T(), rep.Failures, 4)
	require.Equal(s.T(), 4, strings.Count(out.String(), "Failure at: "))
}

// TestMissingDir surfaces listing errors.
func (s *DriverSuite) TestMissingDir() {
	_, err := (&fuzz.Driver{Solver: exitWith(0)}).Run(context.Background(), filepath.Join(s.dir, "nope"))
	require.Error(s.T(), err)
}

// TestCancelledContext stops the run and reports the context error.
func (s *DriverSuite) TestCancelledContext() {
	s.writeSamples([3]int{1, 1, 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := (&fuzz.Driver{Solver: exitWith(0)}).Run(ctx, s.dir)
	require.True(s.T(), errors.Is(err, context.Canceled), "got %v", err)
}

// TestFullRun drives the reference solver over a freshly built corpus: every
// generated sample is well-formed, so nothing fails.
func (s *DriverSuite) TestFullRun() {
	stale := filepath.Join(s.dir, "junk.in")
	require.NoError(s.T(), os.WriteFile(stale, []byte("not a sample"), 0o644))

	var genOut, out bytes.Buffer
	gen, err := sample.NewGenerator(sample.WithSeed(11), sample.WithDir(s.dir), sample.WithOutput(&genOut))
	require.NoError(s.T(), err)
	plan := corpus.Plan{{N: 6, MaxDim: 12, MaxQueries: 8}, {N: 2, MaxDim: 60, MaxQueries: 40}}

	rep, err := fuzz.Run(context.Background(), gen, plan, &fuzz.Driver{Solver: &solver.Reference{}, Out: &out})
	require.NoError(s.T(), err)
	require.NoFileExists(s.T(), stale)
	require.Positive(s.T(), rep.Files)
	require.Empty(s.T(), out.String())
	require.Contains(s.T(), genOut.String(), "generated 6 samples with maxDim 12\n")
}

// TestFullRunRangeError aborts before driving when a batch has an empty range.
func (s *DriverSuite) TestFullRunRangeError() {
	gen, err := sample.NewGenerator(sample.WithSeed(1), sample.WithDir(s.dir))
	require.NoError(s.T(), err)
	_, err = fuzz.Run(context.Background(), gen, corpus.Plan{{N: 1, MaxDim: 1, MaxQueries: 2}},
		&fuzz.Driver{Solver: exitWith(0)})
	require.ErrorIs(s.T(), err, sample.ErrSampleRange)
}

func TestDriverSuite(t *testing.T) {
	suite.Run(t, new(DriverSuite))
}
