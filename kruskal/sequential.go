package kruskal

import (
	"time"

	"github.com/katalvlaran/parmst/core"
	"github.com/katalvlaran/parmst/disjointset"
)

// Sequential computes the minimum spanning forest with a single-threaded
// Kruskal pass. It is the reference the parallel Compute is checked against.
//
// Steps:
//  1. Copy the edge list and sort it by ascending Weight (stable, so ties
//     keep input order).
//  2. Initialize a disjoint-set with every vertex in its own component.
//  3. Loop over sorted edges: if Find(u) != Find(v), merge and keep the edge.
//  4. Once the forest has n-1 edges, stop.
//
// A disconnected graph is not an error; the result is a spanning forest and
// Result.IsTree reports false.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Sequential(g *core.Graph) Result {
	start := time.Now()

	// 1. Sorted private copy of the edges.
	edges := g.Edges()
	sortByWeight(edges)

	// 2. Fresh components.
	n := g.VertexCount()
	ds := disjointset.New(n)

	// 3. Greedy pass.
	var (
		mst    []core.Edge
		weight uint64
		need   int
	)
	if n > 0 {
		need = int(n) - 1
	}
	for _, e := range edges {
		// 4. Early exit when the tree is complete.
		if len(mst) == need {
			break
		}
		if ds.Merge(e.From, e.To) {
			mst = append(mst, e)
			weight += uint64(e.Weight)
		}
	}

	return Result{
		Edges:       mst,
		Weight:      weight,
		Vertices:    spanned(n, mst),
		VertexCount: n,
		Elapsed:     time.Since(start),
	}
}

// spanned counts distinct endpoints of edges.
func spanned(n uint32, edges []core.Edge) int {
	if len(edges) == 0 {
		return 0
	}
	seen := make([]bool, n)
	count := 0
	for _, e := range edges {
		for _, v := range [2]uint32{e.From, e.To} {
			if !seen[v] {
				seen[v] = true
				count++
			}
		}
	}

	return count
}
