package kruskal

import (
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/parmst/core"
)

// LocalTransport runs every share on its own goroutine in this process.
// It is the default Transport for StrategyPrivate.
type LocalTransport struct {
	log *zap.Logger
}

// NewLocalTransport returns a LocalTransport; a nil logger disables logging.
func NewLocalTransport(log *zap.Logger) *LocalTransport {
	if log == nil {
		log = zap.NewNop()
	}

	return &LocalTransport{log: log}
}

// Exchange implements Transport. Each goroutine owns a private disjoint-set,
// so nothing is shared until the join.
func (t *LocalTransport) Exchange(n uint32, shares [][]core.Edge) ([]LocalResult, error) {
	results := make([]LocalResult, len(shares))

	var g errgroup.Group
	for i, share := range shares {
		g.Go(func() error {
			results[i] = Local(n, share)
			t.log.Debug("local phase done",
				zap.Int("worker", i),
				zap.Int("examined", results[i].Stats.Examined),
				zap.Int("accepted", results[i].Stats.Accepted),
				zap.Duration("elapsed", results[i].Stats.Elapsed))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// runShared runs StrategyShared: one goroutine per share, all filtering
// against a SharedSet that lives only for this call.
func runShared(n uint32, shares [][]core.Edge, log *zap.Logger) []LocalResult {
	set := NewSharedSet(n, len(shares))
	results := make([]LocalResult, len(shares))

	var g errgroup.Group
	for i, share := range shares {
		g.Go(func() error {
			results[i] = LocalShared(i, share, set)
			log.Debug("shared local phase done",
				zap.Int("worker", i),
				zap.Int("examined", results[i].Stats.Examined),
				zap.Int("accepted", results[i].Stats.Accepted))

			return nil
		})
	}
	_ = g.Wait() // workers never fail

	return results
}
