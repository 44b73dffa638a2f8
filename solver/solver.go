// Package solver defines the collaborator a fuzz run exercises: something that
// consumes a sample on its standard input and reports an exit status.
//
// Two implementations are provided:
//
//   - Exec runs an external program, wiring the sample to its stdin.
//   - Reference answers the queries in-process with gridgraph, producing the
//     same output a correct external solver should print.
package solver

import (
	"context"
	"io"
)

// Solver consumes one sample from stdin and returns its exit status.
// A non-nil error means the solver could not be run at all (spawn or I/O
// failure); a solver that ran and failed reports a non-zero code and nil.
type Solver interface {
	Solve(ctx context.Context, stdin io.Reader) (exitCode int, err error)
}

// Func adapts a plain function to Solver.
type Func func(ctx context.Context, stdin io.Reader) (int, error)

// Solve calls f.
func (f Func) Solve(ctx context.Context, stdin io.Reader) (int, error) {
	return f(ctx, stdin)
}
