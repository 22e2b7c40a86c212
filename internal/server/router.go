package server

import (
	"net/http"

	"github.com/agentstation/tripmap/internal/server/middleware"
	"github.com/agentstation/tripmap/pkg/constants"
)

// setupRouter creates the HTTP handler with routes and middleware.
func (s *Server) setupRouter() http.Handler {
	mux := http.NewServeMux()
	s.registerRoutes(mux)
	return s.applyMiddleware(mux)
}

// registerRoutes registers all HTTP routes.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// Favicon handler (return 204 No Content to avoid 404 logs)
	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("/health", s.handlers.HandleHealth)
	mux.HandleFunc(constants.RatingsPath, s.handlers.HandleRatings)
}

// applyMiddleware wraps handler with middleware chain.
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	cfg := s.config
	chain := []func(http.Handler) http.Handler{
		middleware.Recovery(s.logger),
		middleware.RequestID(),
		middleware.Logger(s.logger),
	}

	if cfg.CORSEnabled {
		corsConfig := middleware.DefaultCORSConfig()
		corsConfig.AllowedOrigins = cfg.CORSOrigins
		chain = append(chain, middleware.CORS(corsConfig))
	}

	authConfig := middleware.DefaultAuthConfig(cfg.Token)
	if cfg.AuthHeader != "" {
		authConfig.HeaderName = cfg.AuthHeader
	}
	chain = append(chain, middleware.Auth(authConfig, s.logger))

	return middleware.Chain(chain...)(handler)
}
