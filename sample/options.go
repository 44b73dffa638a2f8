// SPDX-License-Identifier: MIT
// Package: gridfuzz/sample
//
// options.go — functional options and configuration for Generator.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors panic on meaningless inputs (nil Rand, nil writer);
//     generation itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through config.

package sample

import (
	"io"
	"log/slog"

	"pgregory.net/rand"
)

// DefaultDir is the output directory used when WithDir is not given.
const DefaultDir = "data"

// Rand is the random source consumed by Generator. Both *pgregory.net/rand.Rand
// and *math/rand.Rand satisfy it. Implementations need not be goroutine-safe.
type Rand interface {
	// Intn returns a uniform int in [0, n); n must be > 0.
	Intn(n int) int
	// Perm returns a uniform random permutation of [0, n).
	Perm(n int) []int
}

// Option customizes a Generator before it is built.
type Option func(*config)

// config aggregates all Generator knobs. Later options override earlier ones.
type config struct {
	rng    Rand
	dir    string
	out    io.Writer    // batch reports ("generated N samples ...")
	logger *slog.Logger // per-file debug records
}

func newConfig(opts ...Option) config {
	cfg := config{
		rng:    nil, // required; see NewGenerator
		dir:    DefaultDir,
		out:    io.Discard,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.dir == "" {
		cfg.dir = DefaultDir
	}
	return cfg
}

// WithSeed creates a new seeded random source (deterministic).
// Use this in tests and reproducible runs to lock outcomes.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(seed)
	}
}

// WithRand provides an explicit random source. Panics on nil.
func WithRand(r Rand) Option {
	if r == nil {
		panic("sample: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithDir sets the directory sample files are written to.
// An empty dir means DefaultDir.
func WithDir(dir string) Option {
	return func(c *config) {
		c.dir = dir
	}
}

// WithOutput sets the writer batch summaries are printed to. Panics on nil.
func WithOutput(w io.Writer) Option {
	if w == nil {
		panic("sample: WithOutput(nil)")
	}
	return func(c *config) {
		c.out = w
	}
}

// WithLogger sets the structured logger. A nil logger keeps the discard default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
