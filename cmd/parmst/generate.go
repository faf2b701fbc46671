package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/parmst/builder"
	"github.com/katalvlaran/parmst/config"
	"github.com/katalvlaran/parmst/graphio"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		vertices  int
		extra     int
		maxWeight uint32
		seed      int64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random connected graph: a chain plus random extra edges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			if err := a.setup(cmd); err != nil {
				return err
			}
			defer func() { _ = a.log.Sync() }()

			if maxWeight == 0 {
				return fmt.Errorf("--max-weight must be positive")
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			g, err := builder.Random(vertices, extra,
				builder.WithSeed(seed),
				builder.WithMaxWeight(maxWeight))
			if err != nil {
				return err
			}

			f, err := os.Create(a.cfg.Input)
			if err != nil {
				return err
			}
			defer func() { err = multierr.Append(err, f.Close()) }()

			if a.cfg.Format == config.FormatBinary {
				err = graphio.WriteBinary(f, g)
			} else {
				err = graphio.WriteText(f, g)
			}
			if err != nil {
				return err
			}
			a.log.Info("graph written",
				zap.String("path", a.cfg.Input),
				zap.Uint32("vertices", g.VertexCount()),
				zap.Int("edges", g.EdgeCount()),
				zap.Int64("seed", seed))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "edges = %d\n", g.EdgeCount())

			return err
		},
	}

	fs := cmd.Flags()
	fs.IntVarP(&vertices, "vertices", "n", 10000, "vertex count; the chain 0-1-...-(n-1) keeps it connected")
	fs.IntVarP(&extra, "extra", "k", 30000, "random non-loop edges added on top of the chain")
	fs.Uint32Var(&maxWeight, "max-weight", builder.DefaultMaxWeight, "weights are drawn from [1, max-weight]")
	fs.Int64Var(&seed, "seed", 0, "random seed; unset means time-based")
	fs.StringP("output", "o", a.cfg.Input, "output file")
	fs.String("format", a.cfg.Format, "output format: text or binary")

	return cmd
}
