// Package app provides the application context and dependency management
// for the tripmap CLI. It centralizes configuration, logging, the local
// rating store, and the lifecycle of the explorer the commands drive.
package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/tripmap"
	appcontext "github.com/agentstation/tripmap/cmd/tripmap/context"
	"github.com/agentstation/tripmap/internal/transport"
	"github.com/agentstation/tripmap/pkg/errors"
	"github.com/agentstation/tripmap/pkg/ratings"
	"github.com/agentstation/tripmap/pkg/ratings/badger"
	"github.com/agentstation/tripmap/pkg/ratings/files"
	"github.com/agentstation/tripmap/pkg/ratings/memory"
)

// Compile-time check that App provides what commands need.
var _ appcontext.Context = (*App)(nil)

// App represents the tripmap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	stdout io.Writer
	stderr io.Writer

	// Explorer instance (lazy-initialized, singleton)
	mu       sync.Mutex
	explorer tripmap.Explorer
}

// New creates a new App instance with the given version information.
// Configuration is loaded from the environment and can be replaced with
// functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.logger == nil {
		logger := NewLogger(app.config, app.stderr)
		app.logger = &logger
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string { return a.version }

// Commit returns the git commit hash.
func (a *App) Commit() string { return a.commit }

// Date returns the build date.
func (a *App) Date() string { return a.date }

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string { return a.builtBy }

// Config returns the application configuration.
func (a *App) Config() *Config { return a.config }

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger { return a.logger }

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string { return a.config.Format }

// RatingsURL returns the configured rating service URL.
func (a *App) RatingsURL() string { return a.config.RatingsURL }

// Stdout is where commands write their results.
func (a *App) Stdout() io.Writer { return a.stdout }

// Explorer returns the explorer, creating it on first use. Options passed
// on the first call are applied after the configured ones; later calls
// return the same instance and ignore opts.
func (a *App) Explorer(ctx context.Context, opts ...tripmap.Option) (tripmap.Explorer, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.explorer != nil {
		return a.explorer, nil
	}

	local, err := a.OpenLocal(a.config.LocalStore, a.config.LocalPath)
	if err != nil {
		return nil, err
	}
	base := a.explorerOptions(local)
	ex, err := tripmap.New(ctx, append(base, opts...)...)
	if err != nil {
		_ = local.Close()
		return nil, errors.WrapResource("create", "explorer", "", err)
	}
	a.explorer = ex
	return ex, nil
}

// OpenLocal opens the local fallback tier of the given kind under path.
func (a *App) OpenLocal(kind, path string) (ratings.Local, error) {
	switch kind {
	case StoreMemory:
		return memory.New(), nil
	case StoreBadger:
		store, err := badger.Open(filepath.Join(path, "badger"))
		if err != nil {
			return nil, err
		}
		return store, nil
	case StoreFile, "":
		store, err := files.New(path)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, errors.NewConfigError("local_store", "unknown store "+kind+": must be file, badger or memory", nil)
	}
}

// Shutdown releases the explorer and its local store.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.Lock()
	ex := a.explorer
	a.explorer = nil
	a.mu.Unlock()

	if ex == nil {
		return nil
	}
	if err := ex.Close(); err != nil {
		a.logger.Error().Err(err).Msg("Failed to close local store during shutdown")
		return err
	}
	return nil
}

// explorerOptions constructs explorer options from the app configuration.
func (a *App) explorerOptions(local ratings.Local) []tripmap.Option {
	cfg := a.config

	opts := []tripmap.Option{
		tripmap.WithLogger(a.logger),
		tripmap.WithLocal(local),
		tripmap.WithDatasetPath(cfg.DatasetPath),
	}
	if cfg.ItineraryPath != "" {
		opts = append(opts, tripmap.WithItineraryPath(cfg.ItineraryPath))
	}

	if cfg.RatingsURL != "" {
		remoteOpts := []transport.Option{
			transport.WithLogger(a.logger),
			transport.WithTimeout(cfg.RatingsTimeout),
		}
		if cfg.RatingsToken != "" {
			remoteOpts = append(remoteOpts, transport.WithAuth(transport.NewAuthenticator(cfg.RatingsAuth), cfg.RatingsToken))
		}
		opts = append(opts, tripmap.WithRemoteURL(cfg.RatingsURL, remoteOpts...))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithOutput redirects command output (useful for testing).
func WithOutput(stdout, stderr io.Writer) Option {
	return func(a *App) error {
		a.stdout = stdout
		a.stderr = stderr
		return nil
	}
}

// WithExplorer sets a custom explorer instance (useful for testing).
func WithExplorer(ex tripmap.Explorer) Option {
	return func(a *App) error {
		a.explorer = ex
		return nil
	}
}
