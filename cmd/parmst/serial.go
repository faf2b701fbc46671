package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/parmst/kruskal"
)

func newSerialCmd(a *app) *cobra.Command {
	var printEdges bool

	cmd := &cobra.Command{
		Use:   "serial",
		Short: "Compute the minimum spanning forest with single-threaded Kruskal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			defer func() { _ = a.log.Sync() }()

			g, err := loadGraph(a.cfg)
			if err != nil {
				return err
			}
			res := kruskal.Sequential(g)
			a.log.Info("sequential kruskal done",
				zap.Int("edges", len(res.Edges)),
				zap.Uint64("weight", res.Weight),
				zap.Duration("elapsed", res.Elapsed))

			return a.present(cmd.OutOrStdout(), g, res, printEdges)
		},
	}

	addInputFlags(cmd.Flags(), a.cfg)
	cmd.Flags().BoolVar(&printEdges, "print-edges", true, "print the accepted edges")

	return cmd
}
