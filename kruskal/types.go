package kruskal

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/parmst/core"
)

// ErrNilGraph indicates Compute was called without a graph.
var ErrNilGraph = errors.New("kruskal: nil graph")

// ErrInvalidWorkers indicates a worker count below one.
var ErrInvalidWorkers = errors.New("kruskal: worker count must be positive")

// ErrTooManyWorkers indicates more workers than edges. Every worker must own
// at least one edge, so this is rejected before any work starts.
var ErrTooManyWorkers = errors.New("kruskal: worker count exceeds edge count")

// ErrUnknownStrategy indicates Options.Strategy is neither StrategyPrivate nor StrategyShared.
var ErrUnknownStrategy = errors.New("kruskal: unknown strategy")

// ErrSharedRequiresLocal indicates StrategyShared was combined with a Transport.
// A lock-guarded disjoint-set only exists inside one address space.
var ErrSharedRequiresLocal = errors.New("kruskal: shared strategy cannot use a remote transport")

// ErrTransport wraps any failure reported by a Transport. The run is aborted
// and no partial result is returned.
var ErrTransport = errors.New("kruskal: transport failed")

// StrategyPrivate gives every worker its own disjoint-set. No locking is
// needed during the local phase; the merge phase restores exactness.
const StrategyPrivate = "private"

// StrategyShared makes all workers filter against one disjoint-set guarded by
// a single mutex, scoped to one Compute call.
const StrategyShared = "shared"

// WorkerStats is the statistics record of one local worker.
type WorkerStats struct {
	// Worker is the share index in [0, P).
	Worker int

	// Start and End bound the worker's range [Start, End) in the input edge order.
	Start int
	End   int

	// Examined counts edges the worker looked at.
	Examined int

	// Accepted counts edges kept as candidates.
	Accepted int

	// Weight is the sum of accepted weights.
	Weight uint64

	// Elapsed is the wall time of the local phase, sorting included.
	Elapsed time.Duration
}

// LocalResult is what a worker hands back to the coordinator.
type LocalResult struct {
	Candidates []core.Edge
	Stats      WorkerStats
}

// MergeStats describes the final reduction.
type MergeStats struct {
	Candidates int           // size of the concatenated candidate pool
	Examined   int           // candidates looked at before stopping
	Accepted   int           // edges in the final forest
	Elapsed    time.Duration // sort + Kruskal pass
}

// MergeResult is the output of Merge.
type MergeResult struct {
	Edges  []core.Edge
	Weight uint64
	Stats  MergeStats
}

// Result is the outcome of one MST computation.
type Result struct {
	// Edges is the minimum spanning forest in acceptance order.
	Edges []core.Edge

	// Weight is the sum of Edges' weights.
	Weight uint64

	// Vertices counts distinct vertices touched by Edges.
	Vertices int

	// VertexCount is n of the input graph.
	VertexCount uint32

	// Strategy records how the local phase was run; empty for Sequential.
	Strategy string

	// Workers holds per-worker statistics in share order.
	Workers []WorkerStats

	// Merge describes the reduction pass.
	Merge MergeStats

	// Elapsed is the wall time of the whole computation.
	Elapsed time.Duration
}

// IsTree reports whether Edges span all n vertices (n-1 edges).
// A graph with no vertices has no spanning tree.
func (r Result) IsTree() bool {
	return r.VertexCount > 0 && len(r.Edges) == int(r.VertexCount)-1
}

// Components returns the number of trees in the spanning forest,
// isolated vertices included.
func (r Result) Components() int {
	return int(r.VertexCount) - len(r.Edges)
}

// Transport moves worker shares out and LocalResults back.
//
// Exchange must deliver shares[i] to a worker that runs the private local
// phase (Local) over n vertices, and return the results in share order.
// Any error is fatal to the computation.
type Transport interface {
	Exchange(n uint32, shares [][]core.Edge) ([]LocalResult, error)
}

// Observer receives statistics as phases finish.
// Calls happen on the coordinator goroutine, one at a time.
type Observer interface {
	ObserveWorker(WorkerStats)
	ObserveMerge(MergeStats)
}

// Options configures Compute. Use DefaultOptions and the With* helpers.
//
// Fields:
//
//	Workers   int        — share count P; 0 means min(GOMAXPROCS, m).
//	Strategy  string     — StrategyPrivate or StrategyShared.
//	Transport Transport  — nil selects goroutines in this process.
//	Logger    *zap.Logger
//	Observer  Observer   — optional statistics sink.
type Options struct {
	Workers   int
	Strategy  string
	Transport Transport
	Logger    *zap.Logger
	Observer  Observer
}

// Option configures Options.
type Option func(*Options)

// WithWorkers sets the share count P. Validation happens in Compute.
func WithWorkers(p int) Option {
	return func(o *Options) { o.Workers = p }
}

// WithStrategy selects StrategyPrivate or StrategyShared.
func WithStrategy(s string) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithTransport routes shares through t instead of local goroutines.
func WithTransport(t Transport) Option {
	return func(o *Options) { o.Transport = t }
}

// WithLogger attaches a logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver attaches a statistics sink.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// DefaultOptions returns the private strategy with automatic worker count,
// in-process transport and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Strategy: StrategyPrivate,
		Logger:   zap.NewNop(),
	}
}
