// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the random generator and
// numeric policy. This file defines:
//   - documented defaults (constants),
//   - Option / genConfig (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values).
//
// Design goals:
//   - Deterministic behavior: the default RNG is seeded with DefaultSeed, so
//     two runs with the same arguments produce the same matrix.
//   - No hidden globals; everything flows through genConfig.
package matrix

import "math/rand"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultSeed is the RNG seed used by Random when no WithSeed/WithRand is given.
	DefaultSeed int64 = 0
)

// Option customizes Random by mutating a genConfig before generation begins.
type Option func(*genConfig)

// genConfig is the resolved configuration of a Random call.
type genConfig struct {
	// rng drives slot selection and values.
	rng *rand.Rand
	// valueFn generates nonzero values.
	valueFn func(rng *rand.Rand) float64
}

// newGenConfig resolves defaults and applies opts in order.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		rng:     rand.New(rand.NewSource(DefaultSeed)),
		valueFn: unitValue,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// unitValue draws from (0, 1]; the open lower bound keeps every placed slot nonzero.
func unitValue(rng *rand.Rand) float64 {
	return 1 - rng.Float64()
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("matrix: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithValueFn overrides the nonzero value generator. Panics on nil.
// Zero draws are retried a bounded number of times (maxValueDraws) before
// Random gives up with ErrZeroValue.
// Complexity: O(1).
func WithValueFn(fn func(*rand.Rand) float64) Option {
	if fn == nil {
		panic("matrix: WithValueFn(nil)")
	}
	return func(c *genConfig) {
		c.valueFn = fn
	}
}
