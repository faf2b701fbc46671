// SPDX-License-Identifier: MIT
// Package: parmst/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • rng      = nil               (stochastic constructors require WithSeed/WithRand)
//   • weightFn = UniformWeight(1, DefaultMaxWeight)

package builder

import (
	"math/rand"
)

// DefaultMaxWeight is the upper bound of generated weights when no weight
// option is given.
const DefaultMaxWeight uint32 = 1000000

// config aggregates all knobs used by constructors.
type config struct {
	rng      *rand.Rand
	weightFn WeightFn
}

// newConfig applies opts in order over the defaults; later options win.
func newConfig(opts ...Option) config {
	cfg := config{
		weightFn: UniformWeight(1, DefaultMaxWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
