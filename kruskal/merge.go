package kruskal

import (
	"time"

	"github.com/katalvlaran/parmst/core"
	"github.com/katalvlaran/parmst/disjointset"
)

// Merge reduces the workers' candidate lists to the exact minimum spanning
// forest over n vertices.
//
// Steps:
//  1. Concatenate candidates in worker order.
//  2. Stable-sort the pool by ascending weight (ties keep worker order).
//  3. Run one Kruskal pass with a fresh disjoint-set: accept an edge iff its
//     endpoints have different representatives, merging them.
//  4. Stop once n-1 edges are accepted or the pool is exhausted; the latter
//     yields a spanning forest for a disconnected graph.
//
// Every edge a worker discarded closes a cycle of lighter edges inside its
// share, hence in the full graph too. The pool therefore still contains a
// minimum spanning forest, and the globally ordered pass extracts it.
//
// Complexity: O(c log c + n) for c candidates.
func Merge(n uint32, candidates [][]core.Edge) MergeResult {
	start := time.Now()

	total := 0
	for _, c := range candidates {
		total += len(c)
	}
	pool := make([]core.Edge, 0, total)
	for _, c := range candidates {
		pool = append(pool, c...)
	}
	sortByWeight(pool)

	var (
		ds   = disjointset.New(n)
		res  = MergeResult{Stats: MergeStats{Candidates: total}}
		need = 0
	)
	if n > 0 {
		need = int(n) - 1
	}
	res.Edges = make([]core.Edge, 0, min(total, need))
	for _, e := range pool {
		if len(res.Edges) == need {
			break
		}
		res.Stats.Examined++
		if ds.Merge(e.From, e.To) {
			res.Edges = append(res.Edges, e)
			res.Weight += uint64(e.Weight)
		}
	}
	res.Stats.Accepted = len(res.Edges)
	res.Stats.Elapsed = time.Since(start)

	return res
}
