package graphio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/parmst/core"
)

// ErrBadMagic reports binary input that does not start with the PMST magic.
var ErrBadMagic = errors.New("graphio: not a binary edge list")

var magic = [4]byte{'P', 'M', 'S', 'T'}

const headerSize = len(magic) + 4 + 8

// WriteBinary writes g in the binary layout described in the package doc.
func WriteBinary(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)

	hdr := make([]byte, 0, headerSize)
	hdr = append(hdr, magic[:]...)
	hdr = binary.LittleEndian.AppendUint32(hdr, g.VertexCount())
	hdr = binary.LittleEndian.AppendUint64(hdr, uint64(g.EdgeCount()))
	if _, err := bw.Write(hdr); err != nil {
		return err
	}

	rec := make([]byte, 0, core.EdgeSize)
	for i := 0; i < g.EdgeCount(); i++ {
		rec = core.AppendEdge(rec[:0], g.Edge(i))
		if _, err := bw.Write(rec); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadBinary parses the binary layout. A truncated stream fails with
// io.ErrUnexpectedEOF; endpoints are validated by core.NewGraph.
func ReadBinary(r io.Reader) (*core.Graph, error) {
	br := bufio.NewReader(r)

	var hdr [headerSize]byte
	if _, err := io.ReadFull(br, hdr[:]); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if [4]byte(hdr[:4]) != magic {
		return nil, ErrBadMagic
	}
	n := binary.LittleEndian.Uint32(hdr[4:8])
	m := binary.LittleEndian.Uint64(hdr[8:16])

	// cap the up-front allocation; a lying header still fails on ReadFull
	edges := make([]core.Edge, 0, min(m, 1<<20))
	var rec [core.EdgeSize]byte
	for i := uint64(0); i < m; i++ {
		if _, err := io.ReadFull(br, rec[:]); err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return nil, fmt.Errorf("record %d of %d: %w", i, m, err)
		}
		e, err := core.DecodeEdge(rec[:])
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}

	return core.NewGraph(n, edges)
}
