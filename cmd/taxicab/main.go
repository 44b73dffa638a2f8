// Command taxicab reads a circle radius from standard input and prints the
// circle's area under the Euclidean metric, then under the Manhattan metric.
//
//	$ echo 1 | taxicab
//	3.141592653589793
//	2
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/katalvlaran/gridfuzz/taxicab"
)

func main() {
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

func run(stdin io.Reader, stdout, stderr io.Writer) int {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	r, err := taxicab.ReadRadius(stdin)
	if err != nil {
		logger.Error("invalid input", "err", err)
		return 1
	}
	// Plain decimal notation at any magnitude; the Manhattan area is a whole number.
	fmt.Fprintln(stdout, strconv.FormatFloat(taxicab.EuclideanArea(r), 'f', -1, 64))
	fmt.Fprintln(stdout, strconv.FormatInt(int64(taxicab.ManhattanArea(r)), 10))
	return 0
}
