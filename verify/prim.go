package verify

import (
	"container/heap"

	"github.com/katalvlaran/parmst/core"
)

// PrimWeight returns the minimum spanning forest weight of g using Prim's
// algorithm restarted from every unvisited vertex. It shares no code with
// the Kruskal pipeline and sums in integers, so it stays exact where
// ReferenceWeight's float64 sum may not.
//
// Steps:
//  1. Build the adjacency lists once; self-loops are dropped.
//  2. For each vertex not yet visited, grow a tree from it:
//     a. Mark the root and push its arcs onto a min-heap.
//     b. Pop the lightest arc; skip it if its head is already visited.
//     c. Otherwise accept it and push the new vertex's unvisited arcs.
//  3. Return the accumulated weight.
//
// Complexity: O(m log m) time, O(n + m) memory.
func PrimWeight(g *core.Graph) uint64 {
	// 1. Adjacency.
	adj := adjacency(g)
	visited := make([]bool, len(adj))

	var (
		total uint64
		pq    arcPQ
	)
	// 2. One tree per component.
	for root := range adj {
		if visited[root] {
			continue
		}
		// 2a. Seed.
		visited[root] = true
		pq = pq[:0]
		pushUnvisited(&pq, adj[root], visited)

		for pq.Len() > 0 {
			// 2b. Lightest crossing arc.
			a := heap.Pop(&pq).(arc)
			if visited[a.to] {
				continue
			}
			// 2c. Accept and extend.
			visited[a.to] = true
			total += uint64(a.weight)
			pushUnvisited(&pq, adj[a.to], visited)
		}
	}

	// 3. Done.
	return total
}

func pushUnvisited(pq *arcPQ, arcs []arc, visited []bool) {
	for _, a := range arcs {
		if !visited[a.to] {
			heap.Push(pq, a)
		}
	}
}

// arcPQ implements heap.Interface as a min-heap of arcs by weight.
type arcPQ []arc

func (pq arcPQ) Len() int           { return len(pq) }
func (pq arcPQ) Less(i, j int) bool { return pq[i].weight < pq[j].weight }
func (pq arcPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x, which must be an arc.
func (pq *arcPQ) Push(x any) { *pq = append(*pq, x.(arc)) }

// Pop removes the last element; heap.Pop has already moved the minimum there.
func (pq *arcPQ) Pop() any {
	old := *pq
	n := len(old)
	a := old[n-1]
	*pq = old[:n-1]

	return a
}
