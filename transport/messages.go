package transport

import (
	"time"

	"github.com/katalvlaran/parmst/core"
)

// serviceName is the RPC receiver name workers register under.
const serviceName = "Worker"

// ShareRequest carries one worker's contiguous slice of the edge list.
type ShareRequest struct {
	Worker      int
	VertexCount uint32
	Edges       []core.Edge
}

// ShareReply carries the candidate edges and counters of a local phase.
type ShareReply struct {
	Candidates []core.Edge
	Examined   int
	Accepted   int
	Weight     uint64
	Elapsed    time.Duration
}
