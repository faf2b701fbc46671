package kruskal

import (
	"sort"
	"sync"
	"time"

	"github.com/katalvlaran/parmst/core"
	"github.com/katalvlaran/parmst/disjointset"
)

// sortByWeight orders edges by ascending weight in place.
// The sort is stable, so equal weights keep their input order.
func sortByWeight(edges []core.Edge) {
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})
}

// Local runs the private local phase over one share.
//
// The share is copied and stably sorted by weight, then filtered against a
// fresh disjoint-set over n vertices: an edge survives iff its endpoints are
// still in different components. Surviving edges are exactly the minimum
// spanning forest of the share, so no edge of the global MST that this share
// contains is dropped. Edges a full view would reject may survive; Merge
// removes them.
//
// Complexity: O(k log k + n) for a share of k edges.
func Local(n uint32, share []core.Edge) LocalResult {
	start := time.Now()

	sorted := make([]core.Edge, len(share))
	copy(sorted, share)
	sortByWeight(sorted)

	ds := disjointset.New(n)
	res := LocalResult{Candidates: make([]core.Edge, 0, min(len(sorted), int(n)))}
	for _, e := range sorted {
		res.Stats.Examined++
		if !ds.Merge(e.From, e.To) {
			continue // closes a cycle among lighter edges of this share
		}
		res.Candidates = append(res.Candidates, e)
		res.Stats.Accepted++
		res.Stats.Weight += uint64(e.Weight)
		if ds.Count() == 1 {
			break // every vertex joined; any later edge is a cycle
		}
	}
	res.Stats.Elapsed = time.Since(start)

	return res
}

// SharedSet is a disjoint-set guarded by one mutex, shared by all workers
// of a single StrategyShared computation.
//
// A shared instance is only minimal if it sees edges in ascending weight
// order, so workers take turns: after every worker has sorted its share,
// the worker holding the globally lightest pending edge (lowest worker index
// on ties) runs one find+merge step, then hands the turn on. Sorting runs in
// parallel; the filtering is serialized.
type SharedSet struct {
	mu      sync.Mutex
	turns   []*sync.Cond  // one per worker, all bound to mu
	ds      *disjointset.DisjointSet
	heads   [][]core.Edge // unprocessed sorted edges per worker
	pending int           // workers still sorting
}

// NewSharedSet returns a SharedSet over n vertices for exactly workers
// participants. Each worker index in [0, workers) must call LocalShared
// once, otherwise the others wait forever.
func NewSharedSet(n uint32, workers int) *SharedSet {
	s := &SharedSet{
		ds:      disjointset.New(n),
		turns:   make([]*sync.Cond, workers),
		heads:   make([][]core.Edge, workers),
		pending: workers,
	}
	for i := range s.turns {
		s.turns[i] = sync.NewCond(&s.mu)
	}

	return s
}

// Count returns the current number of components.
func (s *SharedSet) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ds.Count()
}

// owner returns the worker whose head edge goes next, or -1 while some
// worker is still sorting or when every share is drained. Callers hold mu.
func (s *SharedSet) owner() int {
	if s.pending > 0 {
		return -1
	}
	best := -1
	for i, h := range s.heads {
		if len(h) == 0 {
			continue
		}
		if best < 0 || h[0].Weight < s.heads[best][0].Weight {
			best = i
		}
	}

	return best
}

// handOff wakes the next owner. Callers hold mu.
func (s *SharedSet) handOff() {
	if next := s.owner(); next >= 0 {
		s.turns[next].Signal()
	}
}

// LocalShared runs the local phase of StrategyShared for one worker.
//
// The share is copied and sorted outside the lock. Then, one edge per turn,
// both endpoint lookups and the conditional merge execute as a single
// critical section on s. The accepted edges of all workers together form
// the exact minimum spanning forest of their union; Merge still re-checks
// them.
func LocalShared(worker int, share []core.Edge, s *SharedSet) LocalResult {
	start := time.Now()

	sorted := make([]core.Edge, len(share))
	copy(sorted, share)
	sortByWeight(sorted)

	var res LocalResult

	s.mu.Lock()
	s.heads[worker] = sorted
	s.pending--
	s.handOff()
	for len(s.heads[worker]) > 0 {
		for s.owner() != worker {
			s.turns[worker].Wait()
		}
		e := s.heads[worker][0]
		s.heads[worker] = s.heads[worker][1:]

		res.Stats.Examined++
		if s.ds.Merge(e.From, e.To) {
			res.Candidates = append(res.Candidates, e)
			res.Stats.Accepted++
			res.Stats.Weight += uint64(e.Weight)
		}
		s.handOff()
	}
	s.mu.Unlock()

	res.Stats.Worker = worker
	res.Stats.Elapsed = time.Since(start)

	return res
}
