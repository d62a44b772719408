package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/config"
)

// Options wires the optional parts of the router.
type Options struct {
	// Metrics, when set, is served at GET /metrics.
	Metrics http.Handler
	// Observer records request durations.
	Observer HTTPObserver
}

// NewRouter builds the full handler: routes wrapped in the middleware.
func NewRouter(h *Handler, logger logrus.FieldLogger, opts Options) http.Handler {
	mux := http.NewServeMux()
	RegisterRoutes(mux, h)
	if opts.Metrics != nil {
		mux.Handle("GET /metrics", opts.Metrics)
	}
	return Middleware(logger, opts.Observer)(mux)
}

type Server struct {
	cfg    config.Server
	srv    *http.Server
	logger logrus.FieldLogger
}

func New(cfg config.Server, handler http.Handler, logger logrus.FieldLogger) *Server {
	return &Server{
		cfg: cfg,
		srv: &http.Server{
			Addr:         cfg.Addr,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		logger: logger,
	}
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully within the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.WithField("addr", ln.Addr().String()).Info("server listening")
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		s.logger.Info("server shutting down")
		return s.srv.Shutdown(sctx)
	})
	return g.Wait()
}
