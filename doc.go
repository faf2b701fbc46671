// Package parmst computes minimum spanning trees (and forests) of large
// weighted edge lists by splitting the edges across P workers.
//
// 🚀 What is parmst?
//
//	A small pipeline around Kruskal's algorithm:
//		• Partition: contiguous, near-equal edge shares, one per worker
//		• Local phase: each worker sorts its share and keeps a spanning forest
//		• Merge: one final Kruskal pass over all candidates gives the exact result
//
// ✨ Why split like this?
//
//   - Workers never talk to each other; only candidates travel
//   - The same pipeline runs on goroutines or on remote worker processes
//   - The result weight does not depend on P
//
// Under the hood, everything is organized in flat packages:
//
//	core/        — Edge and Graph types, fixed-width edge codec
//	disjointset/ — union-find with path halving and union by size
//	partition/   — contiguous share ranges
//	kruskal/     — local phase, merge, sequential reference, Compute
//	transport/   — JSON-RPC workers and the cluster client
//	verify/      — independent checks and reference weights
//	builder/     — deterministic random graphs
//	graphio/     — text and binary edge lists
//	metrics/     — Prometheus observer
//	report/      — human-readable statistics
//	config/      — YAML configuration with env overrides
//	cmd/parmst/  — the command-line tool
//
// Quick example: for the triangle 0-1 (4), 1-2 (3), 0-2 (5)
//
//	    0───4───1
//	     ╲      │
//	      5     3
//	       ╲    │
//	        ╲───2
//
// The edge 0-2 (5) closes a cycle with lighter edges and is dropped; the
// tree is {1-2 (3), 0-1 (4)} with total weight 7.
package parmst
