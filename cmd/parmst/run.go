package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/parmst/config"
	"github.com/katalvlaran/parmst/core"
	"github.com/katalvlaran/parmst/kruskal"
	"github.com/katalvlaran/parmst/report"
	"github.com/katalvlaran/parmst/transport"
	"github.com/katalvlaran/parmst/verify"
)

// errWeightMismatch is returned by --verify when the reference disagrees.
var errWeightMismatch = errors.New("result weight differs from reference")

func newRunCmd(a *app) *cobra.Command {
	var printEdges bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute the minimum spanning forest with P workers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			if err := a.setup(cmd); err != nil {
				return err
			}
			defer func() { _ = a.log.Sync() }()

			g, err := loadGraph(a.cfg)
			if err != nil {
				return err
			}

			opts := []kruskal.Option{
				kruskal.WithWorkers(a.cfg.Workers),
				kruskal.WithStrategy(a.cfg.Strategy),
				kruskal.WithLogger(a.log),
			}
			if a.cfg.Transport == config.TransportRPC {
				cluster, derr := transport.Dial(a.cfg.Peers,
					transport.WithDialTimeout(a.cfg.DialTimeout),
					transport.WithLogger(a.log))
				if derr != nil {
					return derr
				}
				defer func() { err = multierr.Append(err, cluster.Close()) }()
				opts = append(opts, kruskal.WithTransport(cluster))
			}

			res, err := kruskal.Compute(g, opts...)
			if err != nil {
				return err
			}

			return a.present(cmd.OutOrStdout(), g, res, printEdges)
		},
	}

	fs := cmd.Flags()
	fs.IntP("workers", "p", a.cfg.Workers, "worker count P; 0 picks min(GOMAXPROCS, edges)")
	fs.String("strategy", a.cfg.Strategy, "local phase: private or shared")
	fs.String("transport", a.cfg.Transport, "where shares run: local or rpc")
	fs.StringSlice("peers", a.cfg.Peers, "worker addresses for --transport rpc")
	fs.Duration("dial-timeout", a.cfg.DialTimeout, "connect timeout per worker")
	addInputFlags(fs, a.cfg)
	fs.BoolVar(&printEdges, "print-edges", false, "print the accepted edges")

	return cmd
}

// present prints res and, when configured, checks it independently.
func (a *app) present(w io.Writer, g *core.Graph, res kruskal.Result, printEdges bool) error {
	if printEdges {
		if err := report.WriteEdges(w, res.Edges); err != nil {
			return err
		}
	}
	if err := report.Write(w, res); err != nil {
		return err
	}
	if !a.cfg.Verify {
		return nil
	}

	if err := verify.Forest(g, res.Edges); err != nil {
		return err
	}
	if ref := verify.PrimWeight(g); ref != res.Weight {
		return fmt.Errorf("have %d, prim %d: %w", res.Weight, ref, errWeightMismatch)
	}
	// gonum sums in float64; past 2^53 only the integer Prim check is exact.
	if !verify.FloatExact(res.Weight) {
		a.log.Warn("skipping gonum reference, weight exceeds float64 precision", zap.Uint64("weight", res.Weight))
	} else if ref := verify.ReferenceWeight(g); ref != res.Weight {
		return fmt.Errorf("have %d, gonum %d: %w", res.Weight, ref, errWeightMismatch)
	}
	a.log.Info("result verified", zap.Uint64("weight", res.Weight), zap.Int("edges", len(res.Edges)))
	_, err := fmt.Fprintln(w, "Verified: OK")

	return err
}
