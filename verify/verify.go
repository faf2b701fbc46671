// Package verify checks MST results independently of the code that built
// them: a disjoint-set replay for acyclicity, a multiset check that every
// edge came from the graph, breadth-first component counting, and two
// reference weights (gonum's Kruskal and a heap-based Prim).
package verify

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/parmst/core"
	"github.com/katalvlaran/parmst/disjointset"
)

var (
	// ErrCycle indicates an edge joins two vertices already connected by earlier edges.
	ErrCycle = errors.New("verify: edges contain a cycle")

	// ErrForeignEdge indicates an edge (or one more copy of it) that the graph lacks.
	ErrForeignEdge = errors.New("verify: edge not in graph")

	// ErrEdgeCount indicates the forest does not have n - components edges.
	ErrEdgeCount = errors.New("verify: wrong number of forest edges")
)

// Acyclic replays edges into a fresh disjoint-set over n vertices and fails
// on the first edge whose endpoints are already joined.
func Acyclic(n uint32, edges []core.Edge) error {
	ds := disjointset.New(n)
	for i, e := range edges {
		if e.From >= n || e.To >= n {
			return fmt.Errorf("edge %d (%s): %w", i, e, core.ErrVertexOutOfRange)
		}
		if !ds.Merge(e.From, e.To) {
			return fmt.Errorf("edge %d (%s): %w", i, e, ErrCycle)
		}
	}

	return nil
}

// Forest checks that edges form a spanning forest of g: every edge is taken
// from g (respecting multiplicity, in either orientation), no cycle exists,
// and the edge count equals n minus the number of components of g.
func Forest(g *core.Graph, edges []core.Edge) error {
	if err := Acyclic(g.VertexCount(), edges); err != nil {
		return err
	}

	available := make(map[core.Edge]int, g.EdgeCount())
	for _, e := range g.Edges() {
		available[canonical(e)]++
	}
	for i, e := range edges {
		k := canonical(e)
		if available[k] == 0 {
			return fmt.Errorf("edge %d (%s): %w", i, e, ErrForeignEdge)
		}
		available[k]--
	}

	want := int(g.VertexCount()) - ComponentCount(g)
	if len(edges) != want {
		return fmt.Errorf("have %d, want %d: %w", len(edges), want, ErrEdgeCount)
	}

	return nil
}

// ComponentCount returns the number of connected components of g,
// isolated vertices included. It walks the graph breadth-first rather than
// replaying a disjoint-set, so it does not depend on the structure it checks.
func ComponentCount(g *core.Graph) int {
	adj := adjacency(g)
	seen := make([]bool, len(adj))
	queue := make([]uint32, 0, len(adj))

	components := 0
	for root := range adj {
		if seen[root] {
			continue
		}
		components++
		seen[root] = true
		queue = append(queue[:0], uint32(root))
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, a := range adj[v] {
				if !seen[a.to] {
					seen[a.to] = true
					queue = append(queue, a.to)
				}
			}
		}
	}

	return components
}

// MaxExactFloatSum bounds the totals ReferenceWeight reports exactly:
// every integer below 2^53 is representable as a float64.
const MaxExactFloatSum uint64 = 1 << 53

// FloatExact reports whether a forest weight of total can be compared with
// ReferenceWeight without float64 rounding.
func FloatExact(total uint64) bool { return total < MaxExactFloatSum }

// ReferenceWeight returns the minimum spanning forest weight of g as
// computed by gonum's path.Kruskal. Parallel edges collapse to the lightest
// one and self-loops are dropped, neither of which changes the optimum.
//
// Weights are summed as float64; the result is exact while the total stays
// below 2^53.
func ReferenceWeight(g *core.Graph) uint64 {
	src := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for v := uint32(0); v < g.VertexCount(); v++ {
		src.AddNode(simple.Node(v))
	}
	for i := 0; i < g.EdgeCount(); i++ {
		e := g.Edge(i)
		if e.From == e.To {
			continue
		}
		w := float64(e.Weight)
		if cur, ok := src.Weight(int64(e.From), int64(e.To)); ok && cur <= w {
			continue
		}
		src.SetWeightedEdge(src.NewWeightedEdge(simple.Node(e.From), simple.Node(e.To), w))
	}

	dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))

	return uint64(math.Round(path.Kruskal(dst, src)))
}

// canonical orders endpoints so (u,v,w) and (v,u,w) compare equal.
func canonical(e core.Edge) core.Edge {
	if e.From > e.To {
		e.From, e.To = e.To, e.From
	}

	return e
}
