package transport_test

import (
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parmst/builder"
	"github.com/katalvlaran/parmst/core"
	"github.com/katalvlaran/parmst/kruskal"
	"github.com/katalvlaran/parmst/transport"
	"github.com/katalvlaran/parmst/verify"
)

type recorder struct {
	mu      sync.Mutex
	workers []kruskal.WorkerStats
}

func (r *recorder) ObserveWorker(s kruskal.WorkerStats) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workers = append(r.workers, s)
}

func (r *recorder) ObserveMerge(kruskal.MergeStats) {}

// startWorkers serves k workers on loopback listeners and returns their addresses.
func startWorkers(t *testing.T, k int, opts ...transport.ServerOption) []string {
	t.Helper()
	addrs := make([]string, k)
	for i := range addrs {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		srv := transport.NewServer(opts...)
		done := make(chan error, 1)
		go func() { done <- srv.Serve(l) }()
		t.Cleanup(func() {
			require.NoError(t, srv.Close())
			require.NoError(t, <-done)
		})
		addrs[i] = l.Addr().String()
	}

	return addrs
}

func dial(t *testing.T, addrs []string) *transport.Cluster {
	t.Helper()
	c, err := transport.Dial(addrs, transport.WithDialTimeout(time.Second))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, c.Close()) })

	return c
}

func TestCluster_ComputeMatchesSequential(t *testing.T) {
	g, err := builder.Random(200, 1500, builder.WithSeed(7), builder.WithMaxWeight(50))
	require.NoError(t, err)

	c := dial(t, startWorkers(t, 3))
	assert.Equal(t, 3, c.Size())

	want := kruskal.Sequential(g)
	for _, p := range []int{1, 3, 5, 8} {
		res, err := kruskal.Compute(g, kruskal.WithWorkers(p), kruskal.WithTransport(c))
		require.NoError(t, err, "P=%d", p)
		assert.Equal(t, want.Weight, res.Weight, "P=%d", p)
		assert.True(t, res.IsTree(), "P=%d", p)
		require.NoError(t, verify.Forest(g, res.Edges), "P=%d", p)
		assert.Equal(t, sumAccepted(res), res.Merge.Candidates, "P=%d", p)
	}
}

func sumAccepted(res kruskal.Result) int {
	n := 0
	for _, w := range res.Workers {
		n += w.Accepted
	}

	return n
}

func TestCluster_ExchangeKeepsShareOrder(t *testing.T) {
	c := dial(t, startWorkers(t, 2))

	shares := [][]core.Edge{
		{{0, 1, 4}},
		{{1, 2, 3}},
		{{0, 2, 5}, {2, 3, 1}},
	}
	out, err := c.Exchange(4, shares)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, []core.Edge{{0, 1, 4}}, out[0].Candidates)
	assert.Equal(t, []core.Edge{{1, 2, 3}}, out[1].Candidates)
	assert.Equal(t, []core.Edge{{2, 3, 1}, {0, 2, 5}}, out[2].Candidates)
	for i, r := range out {
		assert.Equal(t, i, r.Stats.Worker)
		assert.Equal(t, len(shares[i]), r.Stats.Examined)
	}
	assert.Equal(t, uint64(6), out[2].Stats.Weight)
}

func TestServer_RejectsOutOfRangeEdge(t *testing.T) {
	c := dial(t, startWorkers(t, 1))

	_, err := c.Exchange(2, [][]core.Edge{{{0, 5, 1}}})
	require.Error(t, err)
	assert.ErrorContains(t, err, "edge endpoint out of range")
}

func TestServer_Observer(t *testing.T) {
	rec := &recorder{}
	c := dial(t, startWorkers(t, 1, transport.WithServerObserver(rec)))

	_, err := c.Exchange(3, [][]core.Edge{{{0, 1, 1}}, {{1, 2, 2}, {0, 2, 3}}})
	require.NoError(t, err)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.workers, 2)
	total := 0
	for _, s := range rec.workers {
		total += s.Examined
	}
	assert.Equal(t, 3, total)
}

func TestCompute_RemoteFailureIsTransportError(t *testing.T) {
	// A peer that hangs up on every connection.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	go func() {
		for {
			conn, err := l.Accept()
			if err != nil {
				return
			}
			_ = conn.Close()
		}
	}()

	c := dial(t, []string{l.Addr().String()})

	g, err := builder.Random(10, 10, builder.WithSeed(1))
	require.NoError(t, err)

	_, err = kruskal.Compute(g, kruskal.WithWorkers(2), kruskal.WithTransport(c))
	assert.ErrorIs(t, err, kruskal.ErrTransport)
}

func TestDial(t *testing.T) {
	_, err := transport.Dial(nil)
	assert.ErrorIs(t, err, transport.ErrNoPeers)

	// A listener closed right away leaves a port nobody answers on.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	dead := l.Addr().String()
	require.NoError(t, l.Close())

	live := startWorkers(t, 1)
	_, err = transport.Dial([]string{live[0], dead}, transport.WithDialTimeout(time.Second))
	require.Error(t, err)
	assert.ErrorContains(t, err, dead)
}
