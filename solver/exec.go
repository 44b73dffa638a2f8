package solver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// Exec runs an external solver binary once per call.
// The zero values of Stdout and Stderr discard the solver's output.
type Exec struct {
	Path   string
	Args   []string
	Stdout io.Writer
	Stderr io.Writer
}

// Solve starts Path with stdin as its standard input and waits for it to exit.
// A process killed by a signal, or by ctx, reports exit code -1.
func (e *Exec) Solve(ctx context.Context, stdin io.Reader) (int, error) {
	cmd := exec.CommandContext(ctx, e.Path, e.Args...)
	cmd.Stdin = stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0, nil
	case errors.As(err, &exitErr):
		return exitErr.ExitCode(), nil
	default:
		return -1, fmt.Errorf("solver: run %s: %w", e.Path, err)
	}
}
