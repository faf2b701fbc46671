package kruskal

import (
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/parmst/core"
	"github.com/katalvlaran/parmst/partition"
)

// Compute runs the partition → local → merge pipeline and returns the
// minimum spanning forest of g.
//
// Steps:
//  1. Resolve options; validate 1 <= P <= m (an empty graph short-circuits
//     to an empty Result).
//  2. Split the edge sequence into P contiguous shares.
//  3. Local phase: StrategyPrivate sends shares through the Transport;
//     StrategyShared runs goroutines against one lock-guarded SharedSet.
//  4. Merge phase: always runs, over the concatenated candidates.
//
// Errors:
//   - ErrNilGraph, ErrInvalidWorkers, ErrTooManyWorkers, ErrUnknownStrategy,
//     ErrSharedRequiresLocal: configuration, reported before any work.
//   - ErrTransport: a worker or the link to it failed; the run is void.
func Compute(g *core.Graph, opts ...Option) (Result, error) {
	start := time.Now()

	// 1. Options and preconditions.
	if g == nil {
		return Result{}, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Logger

	switch o.Strategy {
	case StrategyPrivate:
	case StrategyShared:
		if o.Transport != nil {
			return Result{}, ErrSharedRequiresLocal
		}
	default:
		return Result{}, fmt.Errorf("%q: %w", o.Strategy, ErrUnknownStrategy)
	}

	n, m := g.VertexCount(), g.EdgeCount()
	if m == 0 {
		log.Debug("empty edge set, nothing to compute", zap.Uint32("vertices", n))
		return Result{VertexCount: n, Strategy: o.Strategy, Elapsed: time.Since(start)}, nil
	}

	p := o.Workers
	if p == 0 {
		p = min(runtime.GOMAXPROCS(0), m)
	}
	if p < 0 {
		return Result{}, fmt.Errorf("workers=%d: %w", p, ErrInvalidWorkers)
	}
	if p > m {
		return Result{}, fmt.Errorf("workers=%d edges=%d: %w", p, m, ErrTooManyWorkers)
	}

	// 2. Partition.
	ranges, err := partition.Ranges(m, p)
	if err != nil {
		return Result{}, err
	}
	shares := make([][]core.Edge, p)
	for i, r := range ranges {
		shares[i] = g.Slice(r.Start, r.End)
	}
	log.Info("starting local phase",
		zap.String("strategy", o.Strategy),
		zap.Int("workers", p),
		zap.Uint32("vertices", n),
		zap.Int("edges", m))

	// 3. Local phase.
	var locals []LocalResult
	if o.Strategy == StrategyShared {
		locals = runShared(n, shares, log)
	} else {
		tr := o.Transport
		if tr == nil {
			tr = NewLocalTransport(log)
		}
		locals, err = tr.Exchange(n, shares)
		if err != nil {
			log.Error("transport failed", zap.Error(err))
			return Result{}, fmt.Errorf("%w: %w", ErrTransport, err)
		}
		if len(locals) != p {
			return Result{}, fmt.Errorf("%w: got %d results for %d shares", ErrTransport, len(locals), p)
		}
		if err := checkCandidates(n, shares, locals); err != nil {
			log.Error("transport returned bad candidates", zap.Error(err))
			return Result{}, fmt.Errorf("%w: %w", ErrTransport, err)
		}
	}

	res := Result{
		VertexCount: n,
		Strategy:    o.Strategy,
		Workers:     make([]WorkerStats, p),
	}
	candidates := make([][]core.Edge, p)
	for i, lr := range locals {
		st := lr.Stats
		st.Worker, st.Start, st.End = i, ranges[i].Start, ranges[i].End
		res.Workers[i] = st
		candidates[i] = lr.Candidates
		if o.Observer != nil {
			o.Observer.ObserveWorker(st)
		}
	}

	// 4. Merge.
	merged := Merge(n, candidates)
	if o.Observer != nil {
		o.Observer.ObserveMerge(merged.Stats)
	}

	res.Edges = merged.Edges
	res.Weight = merged.Weight
	res.Merge = merged.Stats
	res.Vertices = spanned(n, merged.Edges)
	res.Elapsed = time.Since(start)

	log.Info("mst computed",
		zap.Int("edges", len(res.Edges)),
		zap.Uint64("weight", res.Weight),
		zap.Int("candidates", merged.Stats.Candidates),
		zap.Bool("tree", res.IsTree()),
		zap.Duration("elapsed", res.Elapsed))

	return res, nil
}

// checkCandidates rejects local results a Transport could not have produced
// from shares: more candidates than edges in the share, or endpoints >= n.
func checkCandidates(n uint32, shares [][]core.Edge, locals []LocalResult) error {
	for i, lr := range locals {
		if len(lr.Candidates) > len(shares[i]) {
			return fmt.Errorf("share %d: %d candidates from %d edges", i, len(lr.Candidates), len(shares[i]))
		}
		for _, e := range lr.Candidates {
			if e.From >= n || e.To >= n {
				return fmt.Errorf("share %d candidate %s with n=%d: %w", i, e, n, core.ErrVertexOutOfRange)
			}
		}
	}

	return nil
}
