// Package core defines the immutable edge-list Graph consumed by the MST
// algorithms, and the fixed-width Edge record shared by every transport.
//
// Vertices carry no payload: a vertex is an index in [0, n). Edges are
// undirected, so (From, To) and (To, From) describe the same connection.
//
// Errors:
//
//	ErrVertexOutOfRange - an edge endpoint is not below the vertex count.
//	ErrShortRecord      - a binary edge record is shorter than EdgeSize.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates an edge references a vertex id >= n.
	ErrVertexOutOfRange = errors.New("core: edge endpoint out of range")

	// ErrShortRecord indicates a binary edge record was truncated.
	ErrShortRecord = errors.New("core: short edge record")
)

// Edge is an undirected weighted connection between two vertices.
//
// The struct holds only fixed-width fields so its binary form (see
// AppendEdge) is exactly EdgeSize bytes with no padding.
type Edge struct {
	// From is one endpoint.
	From uint32

	// To is the other endpoint.
	To uint32

	// Weight is the non-negative cost of the edge.
	Weight uint32
}

// String renders the edge as "from-to(weight)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%d)", e.From, e.To, e.Weight)
}

// Graph is a vertex count plus an ordered sequence of edges.
//
// Edge order is the insertion order of the input and carries no meaning.
// A Graph is immutable after NewGraph returns, so it is safe to share
// between goroutines without locking.
type Graph struct {
	n     uint32
	edges []Edge
}
