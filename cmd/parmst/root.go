package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/parmst/config"
	"github.com/katalvlaran/parmst/core"
	"github.com/katalvlaran/parmst/graphio"
	"github.com/katalvlaran/parmst/internal/logutil"
)

// app is the state shared by all subcommands once flags are parsed.
type app struct {
	configPath string
	cfg        config.Config
	log        *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "parmst",
		Short:         "Parallel and distributed Kruskal minimum spanning trees",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.String("log-level", a.cfg.Log.Level, "log level: debug, info, warn, error")
	pf.String("log-format", a.cfg.Log.Format, "log encoder: console or json")

	root.AddCommand(
		newRunCmd(a),
		newSerialCmd(a),
		newGenerateCmd(a),
		newWorkerCmd(a),
	)

	return root
}

// setup loads the configuration file and environment, lets explicitly set
// flags win, validates the result and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := overlay(&cfg, cmd.Flags()); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logutil.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log

	return nil
}

// overlay copies every flag the user set on the command line into cfg.
// Flags a command does not define are skipped.
func overlay(cfg *config.Config, fs *pflag.FlagSet) error {
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "log-level":
			cfg.Log.Level = f.Value.String()
		case "log-format":
			cfg.Log.Format = f.Value.String()
		case "workers":
			cfg.Workers, err = fs.GetInt(f.Name)
		case "strategy":
			cfg.Strategy = f.Value.String()
		case "transport":
			cfg.Transport = f.Value.String()
		case "peers":
			cfg.Peers, err = fs.GetStringSlice(f.Name)
		case "dial-timeout":
			cfg.DialTimeout, err = fs.GetDuration(f.Name)
		case "input", "output":
			cfg.Input = f.Value.String()
		case "format":
			cfg.Format = f.Value.String()
		case "verify":
			cfg.Verify, err = fs.GetBool(f.Name)
		case "metrics-addr":
			cfg.Metrics.Addr = f.Value.String()
		}
	})

	return err
}

// loadGraph reads cfg.Input in cfg.Format.
func loadGraph(cfg config.Config) (*core.Graph, error) {
	if cfg.Format == config.FormatText {
		return graphio.ReadTextFile(cfg.Input)
	}

	f, err := os.Open(cfg.Input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := graphio.ReadBinary(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Input, err)
	}

	return g, nil
}

// addInputFlags registers the flags shared by run and serial.
func addInputFlags(fs *pflag.FlagSet, cfg config.Config) {
	fs.StringP("input", "i", cfg.Input, "edge list file")
	fs.String("format", cfg.Format, "input format: text or binary")
	fs.Bool("verify", cfg.Verify, "check the result against an independent reference")
}
