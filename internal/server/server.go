package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-leave-desk/internal/config"
	"github.com/MKhiriev/go-leave-desk/internal/handler"
	"github.com/MKhiriev/go-leave-desk/internal/logger"
	"golang.org/x/sync/errgroup"
)

const defaultShutdownTimeout = 10 * time.Second

type server struct {
	httpServer      *httpServer
	workers         Runner
	shutdownTimeout time.Duration
	logger          *logger.Logger

	// serveFn is replaced in tests to serve on an ephemeral listener.
	serveFn func() error
}

// NewServer builds the application server. workers may be nil.
func NewServer(handlers *handler.Handlers, workers Runner, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	s := &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:         workers,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
	if s.shutdownTimeout <= 0 {
		s.shutdownTimeout = defaultShutdownTimeout
	}
	s.serveFn = s.httpServer.serve

	return s, nil
}

// RunServer serves HTTP and runs the workers until ctx is cancelled, a
// SIGTERM, SIGINT or SIGQUIT arrives, or one of them fails. The HTTP server
// is then drained within the shutdown timeout.
func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	s.logger.Info().Msg("Launching HTTP server")
	g.Go(s.serveFn)

	if s.workers != nil {
		s.logger.Info().Msg("Launching workers")
		g.Go(func() error {
			return s.workers.Run(gctx)
		})
	}

	// listen for stop signals
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		s.logger.Err(err).Str("func", "*server.RunServer").Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.shutdown(ctx)
}
