package verify

import "github.com/katalvlaran/parmst/core"

// arc is one direction of an undirected edge.
type arc struct {
	to     uint32
	weight uint32
}

// adjacency lists both directions of every non-loop edge of g.
func adjacency(g *core.Graph) [][]arc {
	adj := make([][]arc, g.VertexCount())
	for i := 0; i < g.EdgeCount(); i++ {
		e := g.Edge(i)
		if e.From == e.To {
			continue
		}
		adj[e.From] = append(adj[e.From], arc{to: e.To, weight: e.Weight})
		adj[e.To] = append(adj[e.To], arc{to: e.From, weight: e.Weight})
	}

	return adj
}
