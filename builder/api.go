// SPDX-License-Identifier: MIT
// Package: parmst/builder
//
// api.go — graph constructors for tests, benchmarks and the generate command.
//
// Contract:
//   • Same arguments, options and seed ⇒ identical edge sequence.
//   • Constructors never panic; they return sentinel errors wrapped with context.
//   • Every constructor needs an RNG (WithSeed/WithRand), else ErrNeedRandSource.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/parmst/core"
)

const (
	methodRandom     = "Random"
	methodComponents = "Components"
	methodMatching   = "Matching"
)

// Random returns a connected graph over n vertices: the chain
// 0—1—…—(n-1) guarantees connectivity, then extra random edges are added
// between distinct vertices. Parallel edges may occur; self-loops never do.
//
// Errors: ErrTooFewVertices if n < 1, or if extra > 0 with n < 2.
//
// Complexity: O(n + extra).
func Random(n, extra int, opts ...Option) (*core.Graph, error) {
	cfg := newConfig(opts...)
	if err := validate(methodRandom, n, extra, cfg); err != nil {
		return nil, err
	}

	edges := make([]core.Edge, 0, n-1+extra)
	edges = appendComponent(edges, cfg, 0, n, extra)

	return core.NewGraph(uint32(n), edges)
}

// Components returns a graph made of len(sizes) connected components with
// no edge between them. Component i owns the next sizes[i] vertex ids and
// receives extra random edges of its own when it has at least two vertices.
func Components(sizes []int, extra int, opts ...Option) (*core.Graph, error) {
	cfg := newConfig(opts...)
	total := 0
	for i, s := range sizes {
		if s < 1 {
			return nil, fmt.Errorf("%s: sizes[%d]=%d < 1: %w", methodComponents, i, s, ErrTooFewVertices)
		}
		total += s
	}
	if extra < 0 {
		return nil, fmt.Errorf("%s: extra=%d < 0: %w", methodComponents, extra, ErrTooFewVertices)
	}
	if err := validate(methodComponents, total, 0, cfg); err != nil {
		return nil, err
	}

	var edges []core.Edge
	offset := 0
	for _, s := range sizes {
		k := extra
		if s < 2 {
			k = 0
		}
		edges = appendComponent(edges, cfg, offset, s, k)
		offset += s
	}

	return core.NewGraph(uint32(total), edges)
}

// Matching returns k vertex-disjoint edges (2i, 2i+1) over 2k vertices.
func Matching(k int, opts ...Option) (*core.Graph, error) {
	cfg := newConfig(opts...)
	if k < 1 {
		return nil, fmt.Errorf("%s: k=%d < 1: %w", methodMatching, k, ErrTooFewVertices)
	}
	if err := validate(methodMatching, 2*k, 0, cfg); err != nil {
		return nil, err
	}

	edges := make([]core.Edge, k)
	for i := range edges {
		edges[i] = core.Edge{From: uint32(2 * i), To: uint32(2*i + 1), Weight: cfg.weightFn(cfg.rng)}
	}

	return core.NewGraph(uint32(2*k), edges)
}

func validate(method string, n, extra int, cfg config) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}
	if n < 1 {
		return fmt.Errorf("%s: n=%d < 1: %w", method, n, ErrTooFewVertices)
	}
	if extra > 0 && n < 2 {
		return fmt.Errorf("%s: n=%d cannot hold loop-free extra edges: %w", method, n, ErrTooFewVertices)
	}
	if extra < 0 {
		return fmt.Errorf("%s: extra=%d < 0: %w", method, extra, ErrTooFewVertices)
	}
	if int64(n) > math.MaxUint32 {
		return fmt.Errorf("%s: n=%d: %w", method, n, ErrTooManyVertices)
	}

	return nil
}

// appendComponent adds a chain over [offset, offset+size) plus extra random
// non-loop edges inside the same range.
func appendComponent(edges []core.Edge, cfg config, offset, size, extra int) []core.Edge {
	for i := 1; i < size; i++ {
		edges = append(edges, core.Edge{
			From:   uint32(offset + i - 1),
			To:     uint32(offset + i),
			Weight: cfg.weightFn(cfg.rng),
		})
	}
	for i := 0; i < extra; i++ {
		u := cfg.rng.Intn(size)
		v := cfg.rng.Intn(size - 1)
		if v >= u {
			v++ // skip u without rejection sampling
		}
		edges = append(edges, core.Edge{
			From:   uint32(offset + u),
			To:     uint32(offset + v),
			Weight: cfg.weightFn(cfg.rng),
		})
	}

	return edges
}
