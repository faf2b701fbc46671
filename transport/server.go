package transport

import (
	"errors"
	"fmt"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/parmst/core"
	"github.com/katalvlaran/parmst/kruskal"
)

// Server answers ShareRequests by running the local Kruskal phase.
// One Server may Serve any number of listeners.
type Server struct {
	rpc *rpc.Server
	log *zap.Logger
	obs kruskal.Observer

	mu        sync.Mutex
	listeners []net.Listener
}

// NewServer returns a Server with its RPC receiver registered.
func NewServer(opts ...ServerOption) *Server {
	s := &Server{rpc: rpc.NewServer(), log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	// registration only fails for malformed receivers
	if err := s.rpc.RegisterName(serviceName, &worker{s: s}); err != nil {
		panic(err)
	}

	return s
}

// Serve accepts connections on l until l is closed. Each connection speaks
// JSON-RPC on its own goroutine. A closed listener returns nil.
func (s *Server) Serve(l net.Listener) error {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()

	s.log.Info("worker listening", zap.String("addr", l.Addr().String()))
	for {
		conn, err := l.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}

			return fmt.Errorf("accept: %w", err)
		}
		s.log.Debug("coordinator connected", zap.String("remote", conn.RemoteAddr().String()))
		go s.rpc.ServeCodec(jsonrpc.NewServerCodec(conn))
	}
}

// Close closes every listener handed to Serve.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	for _, l := range s.listeners {
		if cerr := l.Close(); cerr != nil && !errors.Is(cerr, net.ErrClosed) {
			err = multierr.Append(err, cerr)
		}
	}
	s.listeners = nil

	return err
}

// worker is the RPC receiver. Solve is its only exported method.
type worker struct {
	s *Server
}

// Solve validates the share against VertexCount and runs kruskal.Local on it.
func (w *worker) Solve(req *ShareRequest, reply *ShareReply) error {
	for i, e := range req.Edges {
		if e.From >= req.VertexCount || e.To >= req.VertexCount {
			return fmt.Errorf("share %d edge %d (%s) with n=%d: %w",
				req.Worker, i, e, req.VertexCount, core.ErrVertexOutOfRange)
		}
	}

	res := kruskal.Local(req.VertexCount, req.Edges)
	res.Stats.Worker = req.Worker
	*reply = ShareReply{
		Candidates: res.Candidates,
		Examined:   res.Stats.Examined,
		Accepted:   res.Stats.Accepted,
		Weight:     res.Stats.Weight,
		Elapsed:    res.Stats.Elapsed,
	}

	w.s.log.Info("share solved",
		zap.Int("worker", req.Worker),
		zap.Int("examined", reply.Examined),
		zap.Int("accepted", reply.Accepted),
		zap.Uint64("weight", reply.Weight),
		zap.Duration("elapsed", reply.Elapsed))
	if w.s.obs != nil {
		w.s.obs.ObserveWorker(res.Stats)
	}

	return nil
}
