// Package kruskal computes the Minimum Spanning Tree (MST) of a large
// undirected, weighted *core.Graph with Kruskal's algorithm, split across P
// parallel workers.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, weighted graph G = (V, E), a minimum spanning forest
//     is an acyclic subset T ⊆ E that connects every connected component of G
//     with the least total weight. For a connected G it is a tree of |V|−1 edges.
//
//   - Why split Kruskal?
//     Sorting E dominates the cost. Sorting and filtering disjoint shares of E
//     in parallel shrinks the edge pool to at most P·(|V|−1) candidates, which
//     a final cheap pass reduces to the exact MST.
//
// Pipeline
//
//   - Partition: partition.Ranges cuts E into P contiguous shares whose sizes
//     differ by at most one.
//
//   - Local phase (Local / LocalShared): each worker stably sorts its share by
//     weight and keeps an edge iff its endpoints are still in different
//     components of its disjoint-set.
//
//   - Merge phase (Merge): concatenate all candidates, sort them globally and
//     run one Kruskal pass with a fresh disjoint-set, stopping at |V|−1 edges.
//
// Strategies
//
//   - StrategyPrivate (default): one disjoint-set per worker, no locks. Shares
//     travel through a Transport: LocalTransport (goroutines) or a remote one
//     such as transport.Cluster.
//
//   - StrategyShared: all workers filter against one SharedSet guarded by a
//     mutex. Workers sort in parallel, then take turns in ascending global
//     weight order so the shared structure stays minimal. The filtering is
//     serialized; speedup is bounded by the sort.
//
// Correctness
//
//	The cycle property is monotone under restriction: an edge that closes a
//	cycle of lighter edges inside one share closes that cycle in G as well.
//	So the local phase never discards an edge of the MST, and the merge pass,
//	processing the pool in true global order, removes everything else.
//
// Error Conditions
//
//	- ErrNilGraph, ErrInvalidWorkers, ErrTooManyWorkers (P > m),
//	  ErrUnknownStrategy, ErrSharedRequiresLocal — configuration errors.
//	- ErrTransport — fatal worker or link failure; nothing partial is returned.
//
//	A disconnected graph is not an error: the result is a spanning forest and
//	Result.IsTree is false. A graph without edges yields an empty Result.
//
// GoDoc Summary
//
//   - Compute(g, opts...) (Result, error) — parallel MST.
//   - Sequential(g) Result — single-threaded reference.
//   - Local(n, share) LocalResult; LocalShared(i, share, set) LocalResult.
//   - Merge(n, candidates) MergeResult.
//
// For examples of usage, see the example_test.go file in this package.
package kruskal
