// SPDX-License-Identifier: MIT
// Package: parmst/builder
//
// errors.go — sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrTooManyVertices indicates the requested vertex count does not fit in uint32.
var ErrTooManyVertices = errors.New("builder: vertex count overflows uint32")
