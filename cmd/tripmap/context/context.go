// Package context provides the application context interface for tripmap commands.
//
// Commands accept this interface rather than the concrete App type so they
// can be tested with MockContext.
//
// Usage in Commands:
//
//	func NewCommand(appCtx context.Context) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            ex, err := appCtx.Explorer(cmd.Context())
//	            if err != nil {
//	                return err
//	            }
//	            // ... use ex
//	            return nil
//	        },
//	    }
//	}
package context

import (
	stdctx "context"
	"io"

	"github.com/rs/zerolog"

	"github.com/agentstation/tripmap"
	"github.com/agentstation/tripmap/pkg/ratings"
)

// Context provides what commands need from the application.
//
// Thread Safety: All methods must be safe for concurrent access.
type Context interface {
	// Explorer returns the explorer, creating it on first use. Options only
	// take effect on the call that creates it.
	Explorer(ctx stdctx.Context, opts ...tripmap.Option) (tripmap.Explorer, error)

	// OpenLocal opens a local rating store of kind ("file", "badger" or
	// "memory") under path. The caller closes it.
	OpenLocal(kind, path string) (ratings.Local, error)

	// RatingsURL returns the rating service URL, empty when ratings are
	// local only.
	RatingsURL() string

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	OutputFormat() string

	// Stdout is where command results are written.
	Stdout() io.Writer

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
