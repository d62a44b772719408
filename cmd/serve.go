package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/metrics"
	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/scoring"
	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve POST /score over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	cmd.Flags().String("addr", "", "listen address (default from server.addr)")
	_ = a.v.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	m := metrics.Noop()
	var metricsHandler http.Handler
	if a.cfg.Metrics.Enabled {
		mp, shutdown, err := metrics.InitProvider(ctx, a.cfg.App.Name, a.cfg.App.Version)
		if err != nil {
			return err
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(sctx)
		}()
		if m, err = metrics.New(mp); err != nil {
			return err
		}
		metricsHandler = metrics.Handler()
	}

	p, err := a.newPipeline(scoring.WithObserver(m))
	if err != nil {
		return err
	}

	h := server.NewHandler(p, a.cfg.Scoring.DefaultDuration, a.cfg.Server.MaxBodyBytes, a.logger)
	router := server.NewRouter(h, a.logger, server.Options{Metrics: metricsHandler, Observer: m})

	a.logger.WithField("version", a.cfg.App.Version).Info("introscore starting")
	return server.New(a.cfg.Server, router, a.logger).Run(ctx)
}
