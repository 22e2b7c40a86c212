// Package serve provides the serve command, which runs the reference
// rating service.
package serve

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentstation/tripmap/cmd/tripmap/context"
	"github.com/agentstation/tripmap/internal/cmd/emoji"
	"github.com/agentstation/tripmap/internal/server"
	"github.com/agentstation/tripmap/pkg/constants"
	"github.com/agentstation/tripmap/pkg/errors"
)

// Environment overrides for the listener and the access token.
const (
	envPort  = "HTTP_PORT"
	envHost  = "HTTP_HOST"
	envToken = "TRIPMAP_SERVER_TOKEN"
)

// NewCommand creates the serve command.
func NewCommand(appCtx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"server"},
		Short:   "Run the shared rating service",
		Long: `Serve runs the rating service that explorers share.

GET /api/ratings returns every rating as a JSON object of venue name to
stars. POST /api/ratings with {"name": ..., "star": 0-5} stores one rating
(0 deletes it) and returns the updated object. Ratings are kept in a local
store so they survive restarts.

Features:
  - Token authentication (optional)
  - CORS support for browser clients
  - Request IDs, request logging and panic recovery
  - Graceful shutdown on SIGINT/SIGTERM`,
		Example: `  # Start on default port 8080
  tripmap serve

  # Require a token and persist in badger
  tripmap serve --token secret --store badger --store-path /var/lib/tripmap

  # Restrict CORS to the hosted explorer
  tripmap serve --cors-origins https://trip.example.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := parseConfig(cmd)
			if err != nil {
				return err
			}
			logger := appCtx.Logger()

			kind := mustGetString(cmd, "store")
			path := mustGetString(cmd, "store-path")
			local, err := appCtx.OpenLocal(kind, path)
			if err != nil {
				return err
			}
			defer func() {
				if err := local.Close(); err != nil {
					logger.Warn().Err(err).Msg("Failed to close rating store")
				}
			}()

			srv, err := server.New(local, cfg, logger)
			if err != nil {
				return err
			}

			logger.Info().
				Str("addr", cfg.Addr()).
				Str("store", kind).
				Str("path", path).
				Bool("cors", cfg.CORSEnabled).
				Bool("auth", cfg.Token != "").
				Msg("Starting rating service")

			out := appCtx.Stdout()
			fmt.Fprintf(out, "%s Rating service listening on http://%s%s\n", emoji.Success, cfg.Addr(), constants.RatingsPath)
			fmt.Fprintln(out, "   Press Ctrl+C to stop")

			if err := srv.ListenAndServe(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(out, "%s Rating service stopped\n", emoji.Success)
			return nil
		},
	}

	defaults := server.DefaultConfig()

	// Server configuration flags
	cmd.Flags().Int("port", defaults.Port, "Server port")
	cmd.Flags().String("host", defaults.Host, "Bind address")
	cmd.Flags().String("key", defaults.Key, "Storage key of the shared rating mapping")

	// Storage flags
	cmd.Flags().String("store", "file", "Rating store: file, badger, memory")
	cmd.Flags().String("store-path", ".tripmap-server", "Rating store directory")

	// CORS flags
	cmd.Flags().Bool("cors", defaults.CORSEnabled, "Enable CORS")
	cmd.Flags().StringSlice("cors-origins", defaults.CORSOrigins, "Allowed CORS origins (comma-separated, default all)")

	// Authentication flags
	cmd.Flags().String("token", "", "Access token clients must present (env "+envToken+")")
	cmd.Flags().String("auth-header", defaults.AuthHeader, "Authentication header name")

	// Timeout flags
	cmd.Flags().Duration("read-timeout", defaults.ReadTimeout, "HTTP read timeout")
	cmd.Flags().Duration("write-timeout", defaults.WriteTimeout, "HTTP write timeout")
	cmd.Flags().Duration("idle-timeout", defaults.IdleTimeout, "HTTP idle timeout")

	return cmd
}

// parseConfig parses command flags into server configuration.
func parseConfig(cmd *cobra.Command) (server.Config, error) {
	cfg := server.DefaultConfig()
	cfg.Port = mustGetInt(cmd, "port")
	cfg.Host = mustGetString(cmd, "host")
	cfg.Key = mustGetString(cmd, "key")
	cfg.CORSEnabled = mustGetBool(cmd, "cors")
	cfg.CORSOrigins = mustGetStringSlice(cmd, "cors-origins")
	cfg.Token = mustGetString(cmd, "token")
	cfg.AuthHeader = mustGetString(cmd, "auth-header")
	cfg.ReadTimeout = mustGetDuration(cmd, "read-timeout")
	cfg.WriteTimeout = mustGetDuration(cmd, "write-timeout")
	cfg.IdleTimeout = mustGetDuration(cmd, "idle-timeout")

	// Override with environment variables
	if envPort := os.Getenv(envPort); envPort != "" {
		p, err := parsePort(envPort)
		if err != nil {
			return cfg, err
		}
		cfg.Port = p
	}
	if envHost := os.Getenv(envHost); envHost != "" {
		cfg.Host = envHost
	}
	if cfg.Token == "" {
		cfg.Token = os.Getenv(envToken)
	}

	if _, err := parsePort(strconv.Itoa(cfg.Port)); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// parsePort safely parses a port string to integer.
func parsePort(portStr string) (int, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0, errors.NewValidationError("port", portStr, "invalid port number")
	}
	if port < 1 || port > 65535 {
		return 0, errors.NewValidationError("port", port, "port out of range")
	}
	return port, nil
}
