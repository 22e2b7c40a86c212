package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/tripmap/cmd/tripmap/cmd/export"
	"github.com/agentstation/tripmap/cmd/tripmap/cmd/itinerary"
	"github.com/agentstation/tripmap/cmd/tripmap/cmd/list"
	"github.com/agentstation/tripmap/cmd/tripmap/cmd/menu"
	"github.com/agentstation/tripmap/cmd/tripmap/cmd/rate"
	"github.com/agentstation/tripmap/cmd/tripmap/cmd/ratings"
	"github.com/agentstation/tripmap/cmd/tripmap/cmd/serve"
	"github.com/agentstation/tripmap/cmd/tripmap/cmd/theme"
	"github.com/agentstation/tripmap/cmd/tripmap/cmd/validate"
	"github.com/agentstation/tripmap/cmd/tripmap/cmd/version"
	"github.com/agentstation/tripmap/internal/cmd/output"
)

// Execute runs the tripmap CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "tripmap",
		Short:   "Trip planning venue explorer",
		Version: a.version,
		Long: `Tripmap explores a curated set of venues for a trip: restaurants,
hotels and day-trip stops.

Venues can be filtered by type, sorted by star rating, or narrowed to the
ones referenced by a day-by-day itinerary. Ratings are shared through a
rating service when one is configured (see "tripmap serve") and are always
kept locally, so they survive an unreachable service.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands:",
	})

	// Add global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.config.ConfigFile, "config", a.config.ConfigFile, "config file (default is $HOME/.tripmap.yaml)")
	flags.BoolVarP(&a.config.Verbose, "verbose", "v", a.config.Verbose, "verbose output (shortcut for --log-level=debug)")
	flags.BoolVarP(&a.config.Quiet, "quiet", "q", a.config.Quiet, "minimal output (shortcut for --log-level=warn)")
	flags.BoolVar(&a.config.NoColor, "no-color", a.config.NoColor, "disable colored output")
	flags.StringVarP(&a.config.Format, "format", "o", a.config.Format, "output format: table, json, yaml")
	flags.StringVar(&a.config.LogLevel, "log-level", a.config.LogLevel, "log level: trace, debug, info, warn, error (overrides -v/-q)")

	// Data and rating store flags default to the loaded configuration
	flags.StringVar(&a.config.DatasetPath, "dataset", a.config.DatasetPath, "venue dataset (JSON, JSONC or YAML)")
	flags.StringVar(&a.config.ItineraryPath, "itinerary", a.config.ItineraryPath, "itinerary file (JSON or YAML)")
	flags.StringVar(&a.config.RatingsURL, "ratings-url", a.config.RatingsURL, "rating service base URL (empty for local ratings only)")
	flags.StringVar(&a.config.LocalStore, "store", a.config.LocalStore, "local rating store: file, badger, memory")
	flags.StringVar(&a.config.LocalPath, "store-path", a.config.LocalPath, "local rating store directory")

	rootCmd.SetVersionTemplate("tripmap {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("config") {
		if err := a.reloadConfig(cmd); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("store-path") {
		a.config.LocalPath = expandHome(a.config.LocalPath)
	}

	// These flags are defined as persistent flags in createRootCommand, so errors indicate programming errors
	verbose := mustGetBool(cmd, "verbose")
	quiet := mustGetBool(cmd, "quiet")
	noColor := mustGetBool(cmd, "no-color")
	var format, logLevel string
	if cmd.Flags().Changed("format") {
		format = mustGetString(cmd, "format")
	}
	if cmd.Flags().Changed("log-level") {
		logLevel = mustGetString(cmd, "log-level")
	}

	a.config.UpdateFromFlags(verbose, quiet, noColor, format, logLevel)
	if _, err := output.ParseFormat(a.config.Format); err != nil {
		return err
	}

	// Reinitialize logger with updated config
	logger := NewLogger(a.config, a.stderr)
	a.logger = &logger

	return nil
}

// reloadConfig rereads the configuration from the --config file. Flags
// given on the command line still win over the file.
func (a *App) reloadConfig(cmd *cobra.Command) error {
	loaded, err := LoadConfigFile(a.config.ConfigFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	keep := map[string]func(){
		"dataset":     func() { loaded.DatasetPath = a.config.DatasetPath },
		"itinerary":   func() { loaded.ItineraryPath = a.config.ItineraryPath },
		"ratings-url": func() { loaded.RatingsURL = a.config.RatingsURL },
		"store":       func() { loaded.LocalStore = a.config.LocalStore },
		"store-path":  func() { loaded.LocalPath = a.config.LocalPath },
	}
	for name, apply := range keep {
		if flags.Changed(name) {
			apply()
		}
	}

	// the flags are bound to a.config, so copy instead of swapping pointers
	*a.config = *loaded
	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	core := []*cobra.Command{
		list.NewCommand(a),
		rate.NewCommand(a),
		ratings.NewCommand(a),
		itinerary.NewCommand(a),
		menu.NewCommand(a),
		export.NewCommand(a),
		theme.NewCommand(a),
	}
	for _, cmd := range core {
		cmd.GroupID = "core"
		rootCmd.AddCommand(cmd)
	}

	management := []*cobra.Command{
		serve.NewCommand(a),
		validate.NewCommand(a),
	}
	for _, cmd := range management {
		cmd.GroupID = "management"
		rootCmd.AddCommand(cmd)
	}

	rootCmd.AddCommand(version.NewCommand(a))
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
