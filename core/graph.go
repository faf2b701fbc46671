package core

import "fmt"

// NewGraph builds a Graph over n vertices from edges.
// The edge slice is copied, so later changes by the caller are not observed.
//
// Every endpoint must be < n, otherwise ErrVertexOutOfRange is returned with
// the offending edge index attached. Self-loops are accepted; they can never
// join two components, so every MST phase simply discards them.
//
// Complexity: O(m) time and memory.
func NewGraph(n uint32, edges []Edge) (*Graph, error) {
	for i, e := range edges {
		if e.From >= n || e.To >= n {
			return nil, fmt.Errorf("edge %d (%s) with n=%d: %w", i, e, n, ErrVertexOutOfRange)
		}
	}

	cp := make([]Edge, len(edges))
	copy(cp, edges)

	return &Graph{n: n, edges: cp}, nil
}

// VertexCount returns n, the number of vertices.
func (g *Graph) VertexCount() uint32 { return g.n }

// EdgeCount returns m, the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edge returns the i-th edge in input order. It panics if i is out of range.
func (g *Graph) Edge(i int) Edge { return g.edges[i] }

// Edges returns a copy of the edge sequence in input order.
// Complexity: O(m).
func (g *Graph) Edges() []Edge {
	cp := make([]Edge, len(g.edges))
	copy(cp, g.edges)

	return cp
}

// Slice returns a copy of the half-open edge range [start, end).
// It panics when the range is not within [0, m].
func (g *Graph) Slice(start, end int) []Edge {
	cp := make([]Edge, end-start)
	copy(cp, g.edges[start:end])

	return cp
}
