// Package report prints MST results for people.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/parmst/core"
	"github.com/katalvlaran/parmst/kruskal"
)

// Write prints the statistics block for res: graph size, one line per
// worker, the merge pass, and totals. A disconnected input is reported as a
// spanning forest together with its component count.
func Write(w io.Writer, res kruskal.Result) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "Statistics")
	fmt.Fprintf(bw, "Total number of vertices in the graph: %d\n", res.VertexCount)
	for _, s := range res.Workers {
		fmt.Fprintf(bw, "Worker %d: Processed edges: %d, Accepted edges: %d, Total weight: %d, Time: %.6f\n",
			s.Worker, s.Examined, s.Accepted, s.Weight, s.Elapsed.Seconds())
	}
	if res.Strategy != "" {
		fmt.Fprintf(bw, "Merge (%s): Candidates: %d, Accepted edges: %d, Time: %.6f\n",
			res.Strategy, res.Merge.Candidates, res.Merge.Accepted, res.Merge.Elapsed.Seconds())
	}
	fmt.Fprintf(bw, "Number of vertices in the MST: %d\n", res.Vertices)
	fmt.Fprintf(bw, "Number of edges in the MST: %d\n", len(res.Edges))
	switch {
	case res.IsTree():
		fmt.Fprintln(bw, "Result: spanning tree")
	case res.VertexCount == 0:
		fmt.Fprintln(bw, "Result: empty graph")
	default:
		fmt.Fprintf(bw, "Result: spanning forest of %d components\n", res.Components())
	}
	fmt.Fprintf(bw, "Total weight of the MST: %d\n", res.Weight)
	fmt.Fprintf(bw, "Time taken (in seconds) : %.6f\n", res.Elapsed.Seconds())

	return bw.Flush()
}

// WriteEdges prints edges as a "From, To, Weight" table.
func WriteEdges(w io.Writer, edges []core.Edge) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Edges in the MST")
	fmt.Fprintln(bw, "From, To, Weight")
	for _, e := range edges {
		fmt.Fprintf(bw, "%d, %d, %d\n", e.From, e.To, e.Weight)
	}

	return bw.Flush()
}
