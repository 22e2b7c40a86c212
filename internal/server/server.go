// Package server provides the reference rating service. It keeps one shared
// rating mapping in a local store and serves it over HTTP with the contract
// the transport client speaks.
package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/tripmap/internal/server/handlers"
	"github.com/agentstation/tripmap/pkg/constants"
	"github.com/agentstation/tripmap/pkg/errors"
	"github.com/agentstation/tripmap/pkg/logging"
	"github.com/agentstation/tripmap/pkg/ratings"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	handlers  *handlers.Handlers
	logger    *zerolog.Logger
	config    Config
	startTime time.Time
}

// New creates a rating service backed by local.
func New(local ratings.Local, cfg Config, logger *zerolog.Logger) (*Server, error) {
	if local == nil {
		return nil, errors.NewConfigError("server", "a local store is required", nil)
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Key == "" {
		cfg.Key = constants.RatingsKey
	}

	logger.Debug().
		Str("key", cfg.Key).
		Bool("auth", cfg.Token != "").
		Msg("Creating rating service")

	return &Server{
		handlers:  handlers.New(local, cfg.Key, logger),
		logger:    logger,
		config:    cfg,
		startTime: time.Now(),
	}, nil
}

// Handler returns the configured http.Handler with middleware chain applied.
func (s *Server) Handler() http.Handler {
	return s.setupRouter()
}

// Config returns the server configuration.
func (s *Server) Config() Config {
	return s.config
}

// StartTime returns the server start time for uptime calculations.
func (s *Server) StartTime() time.Time {
	return s.startTime
}

// ListenAndServe serves on the configured address until ctx is cancelled,
// then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr())
	if err != nil {
		return errors.WrapResource("listen", "rating service", s.config.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().
			Str("addr", ln.Addr().String()).
			Msg("Rating service listening")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("Shutting down rating service")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn().Err(err).Msg("Rating service shutdown timed out")
		return err
	}
	return nil
}
