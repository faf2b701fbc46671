package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/parmst/metrics"
	"github.com/katalvlaran/parmst/transport"
)

func newWorkerCmd(a *app) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Serve local Kruskal phases for a remote coordinator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			defer func() { _ = a.log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return a.serveWorker(ctx, listen)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", ":7070", "TCP address to accept coordinators on")
	cmd.Flags().String("metrics-addr", a.cfg.Metrics.Addr, "serve Prometheus metrics on this address; empty disables")

	return cmd
}

// serveWorker runs the RPC server, plus the metrics endpoint when
// configured, until ctx is done or either server fails.
func (a *app) serveWorker(ctx context.Context, listen string) error {
	l, err := net.Listen("tcp", listen)
	if err != nil {
		return err
	}

	opts := []transport.ServerOption{transport.WithServerLogger(a.log)}
	var metricsSrv *http.Server
	if a.cfg.Metrics.Addr != "" {
		reg := prometheus.NewRegistry()
		opts = append(opts, transport.WithServerObserver(metrics.NewRecorder(reg)))
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		metricsSrv = &http.Server{Addr: a.cfg.Metrics.Addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	}
	srv := transport.NewServer(opts...)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Serve(l) })
	if metricsSrv != nil {
		g.Go(func() error {
			a.log.Info("metrics listening", zap.String("addr", metricsSrv.Addr))
			if err := metricsSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("worker shutting down")
		// l may not be registered with srv yet; close it directly so Serve returns.
		err := srv.Close()
		if cerr := l.Close(); cerr != nil && !errors.Is(cerr, net.ErrClosed) {
			err = multierr.Append(err, cerr)
		}
		if metricsSrv != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			err = multierr.Append(err, metricsSrv.Shutdown(shutdownCtx))
		}
		return err
	})

	return g.Wait()
}
