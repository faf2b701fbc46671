package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/parmst/core"
)

// ErrSyntax reports a line that is not a valid edge triple or header.
var ErrSyntax = errors.New("graphio: malformed line")

const vertexHeader = "vertices:"

// ReadText parses a text edge list from r.
func ReadText(r io.Reader) (*core.Graph, error) {
	var (
		edges  []core.Edge
		n      uint64
		header bool
		line   int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, "#") {
			rest := strings.TrimSpace(strings.TrimPrefix(text, "#"))
			if v, ok := strings.CutPrefix(rest, vertexHeader); ok {
				count, err := strconv.ParseUint(strings.TrimSpace(v), 10, 32)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w: %w", line, ErrSyntax, err)
				}
				n, header = count, true
			}
			continue
		}

		e, err := parseEdge(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		edges = append(edges, e)
		if !header {
			n = max(n, uint64(e.From)+1, uint64(e.To)+1)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read edge list: %w", err)
	}
	if n > uint64(^uint32(0)) {
		return nil, fmt.Errorf("vertex id %d: %w", n-1, core.ErrVertexOutOfRange)
	}

	return core.NewGraph(uint32(n), edges)
}

// ReadTextFile opens path and parses it with ReadText.
func ReadTextFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := ReadText(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// WriteText writes g as a header line followed by one triple per edge.
func WriteText(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s %d\n", vertexHeader, g.VertexCount())
	for i := 0; i < g.EdgeCount(); i++ {
		e := g.Edge(i)
		fmt.Fprintf(bw, "%d %d %d\n", e.From, e.To, e.Weight)
	}

	return bw.Flush()
}

func parseEdge(text string) (core.Edge, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return core.Edge{}, fmt.Errorf("%w: want 3 fields, have %d", ErrSyntax, len(fields))
	}

	var v [3]uint32
	for i, f := range fields {
		x, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return core.Edge{}, fmt.Errorf("%w: field %d: %w", ErrSyntax, i+1, err)
		}
		v[i] = uint32(x)
	}

	return core.Edge{From: v[0], To: v[1], Weight: v[2]}, nil
}
