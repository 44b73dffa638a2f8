// Command gridfuzz generates random binary-grid samples and runs a solver on
// each of them, reporting the samples the solver rejected.
//
// Usage:
//
//	gridfuzz [run] [flags]   rebuild the corpus, then solve every sample
//	gridfuzz gen [flags]     rebuild the corpus only
//	gridfuzz solve           answer one sample from stdin with the reference solver
//
// Without -solver, run uses the in-process reference solver. Extra arguments
// after the flags are passed to the solver binary.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/gops/agent"

	"github.com/katalvlaran/gridfuzz/corpus"
	"github.com/katalvlaran/gridfuzz/fuzz"
	"github.com/katalvlaran/gridfuzz/gridgraph"
	"github.com/katalvlaran/gridfuzz/sample"
	"github.com/katalvlaran/gridfuzz/solver"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// options collects the flags shared by the subcommands.
type options struct {
	dir     string
	seed    uint64
	verbose bool
	conn8   bool

	solverPath string
	workers    int
	timeout    time.Duration
	quiet      bool
	json       bool
	gops       bool
}

func (o options) connectivity() gridgraph.Connectivity {
	if o.conn8 {
		return gridgraph.Conn8
	}
	return gridgraph.Conn4
}

func newFlagSet(name string, o *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&o.verbose, "v", false, "debug logging")
	if name != "gen" {
		fs.BoolVar(&o.conn8, "conn8", false, "reference solver: let paths move diagonally")
	}
	if name == "solve" {
		return fs
	}
	fs.StringVar(&o.dir, "dir", sample.DefaultDir, "corpus directory (its files are deleted on start)")
	fs.Uint64Var(&o.seed, "seed", 0, "random seed; 0 picks one from the clock and logs it")
	if name == "gen" {
		return fs
	}
	fs.StringVar(&o.solverPath, "solver", "", "solver binary; empty uses the built-in reference solver")
	fs.IntVar(&o.workers, "workers", 1, "solver processes run at once")
	fs.DurationVar(&o.timeout, "timeout", 0, "per-sample solver timeout; 0 waits forever")
	fs.BoolVar(&o.quiet, "quiet", false, "discard solver output")
	fs.BoolVar(&o.json, "json", false, "print the run report as JSON when done")
	fs.BoolVar(&o.gops, "gops", false, "start a gops diagnostics agent")
	return fs
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := "run"
	if len(args) > 0 && (args[0] == "run" || args[0] == "gen" || args[0] == "solve") {
		cmd, args = args[0], args[1:]
	}

	var o options
	fs := newFlagSet(cmd, &o, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var err error
	switch cmd {
	case "solve":
		err = solve(ctx, o, stdin, stdout, logger)
	case "gen":
		err = generate(o, stdout, logger)
	default:
		err = fuzzRun(ctx, o, fs.Args(), stdout, stderr, logger)
	}
	if err != nil {
		var exit exitCode
		if errors.As(err, &exit) {
			return int(exit)
		}
		logger.Error(cmd+" failed", "err", err)
		return 1
	}
	return 0
}

// exitCode lets a subcommand end the process with a specific status.
type exitCode int

func (e exitCode) Error() string { return fmt.Sprintf("exit status %d", int(e)) }

func newGenerator(o options, stdout io.Writer, logger *slog.Logger) (*sample.Generator, error) {
	seed := o.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("corpus seed", "seed", seed, "dir", o.dir)
	return sample.NewGenerator(
		sample.WithSeed(seed),
		sample.WithDir(o.dir),
		sample.WithOutput(stdout),
		sample.WithLogger(logger),
	)
}

func generate(o options, stdout io.Writer, logger *slog.Logger) error {
	gen, err := newGenerator(o, stdout, logger)
	if err != nil {
		return err
	}
	return corpus.Build(gen, corpus.DefaultPlan)
}

func fuzzRun(ctx context.Context, o options, solverArgs []string, stdout, stderr io.Writer, logger *slog.Logger) error {
	if o.gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			return fmt.Errorf("gops agent: %w", err)
		}
		defer agent.Close()
	}

	gen, err := newGenerator(o, stdout, logger)
	if err != nil {
		return err
	}

	solverOut, solverErr := stdout, stderr
	if o.quiet {
		solverOut, solverErr = io.Discard, io.Discard
	}
	var s solver.Solver = &solver.Reference{Out: solverOut, Logger: logger, Conn: o.connectivity()}
	if o.solverPath != "" {
		s = &solver.Exec{Path: o.solverPath, Args: solverArgs, Stdout: solverOut, Stderr: solverErr}
	}

	d := &fuzz.Driver{
		Solver:  s,
		Out:     stdout,
		Logger:  logger,
		Workers: o.workers,
		Timeout: o.timeout,
	}
	rep, err := fuzz.Run(ctx, gen, corpus.DefaultPlan, d)
	if err != nil {
		return err
	}
	logger.Info("run complete", "files", rep.Files, "failures", len(rep.Failures))

	if o.json {
		b, err := sonic.Marshal(rep)
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		if _, err := fmt.Fprintln(stdout, string(b)); err != nil {
			return err
		}
	}
	return nil
}

func solve(ctx context.Context, o options, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	code, err := (&solver.Reference{Out: stdout, Logger: logger, Conn: o.connectivity()}).Solve(ctx, stdin)
	if err != nil {
		return err
	}
	if code != solver.ExitOK {
		return exitCode(code)
	}
	return nil
}
