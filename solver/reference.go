package solver

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/gridfuzz/gridgraph"
	"github.com/katalvlaran/gridfuzz/sample"
)

// Exit codes of Reference.
const (
	ExitOK        = 0
	ExitMalformed = 1
)

// Reference is an in-process solver: it parses a sample, labels the grid's
// equal-valued regions once, and prints one answer per query
// ("binary", "decimal" or "neither").
type Reference struct {
	// Out receives the answers; nil discards them.
	Out io.Writer
	// Logger records rejected input; nil discards.
	Logger *slog.Logger
	// Conn selects the moves a path may take. The zero value, Conn4, allows
	// N/E/S/W steps only; Conn8 adds diagonals.
	Conn gridgraph.Connectivity
}

// Solve implements Solver. Malformed input exits with ExitMalformed.
func (r *Reference) Solve(ctx context.Context, stdin io.Reader) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}
	s, err := sample.Parse(stdin)
	if err != nil {
		r.logger().Error("rejecting sample", "err", err)
		return ExitMalformed, nil
	}
	answers, err := Answers(s, r.Conn)
	if err != nil {
		r.logger().Error("solving sample", "err", err)
		return ExitMalformed, nil
	}

	out := r.Out
	if out == nil {
		out = io.Discard
	}
	bw := bufio.NewWriter(out)
	for _, a := range answers {
		if _, err := fmt.Fprintln(bw, a); err != nil {
			return -1, fmt.Errorf("solver: write answers: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return -1, fmt.Errorf("solver: write answers: %w", err)
	}
	return ExitOK, nil
}

// Answers classifies every query of s under conn. Query coordinates are
// 1-indexed (row, col); out-of-range queries fail with gridgraph.ErrOutOfBounds.
func Answers(s *sample.Sample, conn gridgraph.Connectivity) ([]gridgraph.Answer, error) {
	gg, err := gridgraph.FromBinary(s.Grid, conn)
	if err != nil {
		return nil, err
	}
	regions := gg.Regions()

	answers := make([]gridgraph.Answer, len(s.Queries))
	for i, q := range s.Queries {
		from := gridgraph.Point{X: q.FromCol - 1, Y: q.FromRow - 1}
		to := gridgraph.Point{X: q.ToCol - 1, Y: q.ToRow - 1}
		a, err := regions.Classify(from, to)
		if err != nil {
			return nil, fmt.Errorf("query %d: %w", i+1, err)
		}
		answers[i] = a
	}
	return answers, nil
}

func (r *Reference) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r.Logger
}
