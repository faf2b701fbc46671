package transport

import (
	"errors"
	"fmt"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/parmst/core"
	"github.com/katalvlaran/parmst/kruskal"
)

// ErrNoPeers is returned by Dial when no worker address is given.
var ErrNoPeers = errors.New("transport: no worker addresses")

type peer struct {
	addr   string
	client *rpc.Client
}

// Cluster is a kruskal.Transport backed by remote worker processes.
// Share i goes to peer i mod len(peers), so P may exceed the peer count.
type Cluster struct {
	peers []peer
	log   *zap.Logger
}

var _ kruskal.Transport = (*Cluster)(nil)

// Dial connects to every address. On any failure the connections already
// made are closed and the combined error is returned.
func Dial(addrs []string, opts ...DialOption) (*Cluster, error) {
	if len(addrs) == 0 {
		return nil, ErrNoPeers
	}
	cfg := dialConfig{timeout: DefaultDialTimeout, log: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Cluster{peers: make([]peer, 0, len(addrs)), log: cfg.log}
	for _, addr := range addrs {
		conn, err := net.DialTimeout("tcp", addr, cfg.timeout)
		if err != nil {
			return nil, multierr.Append(fmt.Errorf("dial %s: %w", addr, err), c.Close())
		}
		c.peers = append(c.peers, peer{addr: addr, client: rpc.NewClientWithCodec(jsonrpc.NewClientCodec(conn))})
		cfg.log.Info("connected to worker", zap.String("addr", addr))
	}

	return c, nil
}

// Size reports how many workers the cluster talks to.
func (c *Cluster) Size() int { return len(c.peers) }

// Exchange implements kruskal.Transport: every share is solved remotely in
// parallel and the replies come back in share order.
func (c *Cluster) Exchange(n uint32, shares [][]core.Edge) ([]kruskal.LocalResult, error) {
	results := make([]kruskal.LocalResult, len(shares))

	var g errgroup.Group
	for i, share := range shares {
		p := c.peers[i%len(c.peers)]
		g.Go(func() error {
			var reply ShareReply
			req := &ShareRequest{Worker: i, VertexCount: n, Edges: share}
			if err := p.client.Call(serviceName+".Solve", req, &reply); err != nil {
				return fmt.Errorf("share %d on %s: %w", i, p.addr, err)
			}
			results[i] = kruskal.LocalResult{
				Candidates: reply.Candidates,
				Stats: kruskal.WorkerStats{
					Worker:   i,
					Examined: reply.Examined,
					Accepted: reply.Accepted,
					Weight:   reply.Weight,
					Elapsed:  reply.Elapsed,
				},
			}
			c.log.Debug("share returned",
				zap.Int("worker", i),
				zap.String("addr", p.addr),
				zap.Int("candidates", len(reply.Candidates)))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Close closes every client connection.
func (c *Cluster) Close() error {
	var err error
	for _, p := range c.peers {
		if cerr := p.client.Close(); cerr != nil && !errors.Is(cerr, rpc.ErrShutdown) {
			err = multierr.Append(err, fmt.Errorf("close %s: %w", p.addr, cerr))
		}
	}
	c.peers = nil

	return err
}
