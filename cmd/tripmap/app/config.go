package app

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/tripmap/pkg/errors"
)

// Local store kinds.
const (
	StoreFile   = "file"
	StoreBadger = "badger"
	StoreMemory = "memory"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Data
	DatasetPath   string
	ItineraryPath string

	// Remote rating service. An empty URL runs on the local tier only.
	RatingsURL     string
	RatingsToken   string
	RatingsAuth    string
	RatingsTimeout time.Duration

	// Local fallback tier
	LocalStore string
	LocalPath  string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables (TRIPMAP_ prefix)
// 3. .env files
// 4. Config file (~/.tripmap.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	return LoadConfigFile(os.Getenv("TRIPMAP_CONFIG"))
}

// LoadConfigFile loads configuration like LoadConfig but reads the given
// config file instead of searching for one. An empty path searches.
func LoadConfigFile(configFile string) (*Config, error) {
	// .env files must be loaded before viper binds the environment
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix("tripmap")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".tripmap")
	}

	if err := v.ReadInConfig(); err != nil {
		// a missing config file is fine unless it was asked for
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, errors.NewConfigError("config", "cannot read config file", err)
		}
	}

	return &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		DatasetPath:   v.GetString("dataset"),
		ItineraryPath: v.GetString("itinerary"),

		RatingsURL:     v.GetString("ratings_url"),
		RatingsToken:   v.GetString("ratings_token"),
		RatingsAuth:    v.GetString("ratings_auth"),
		RatingsTimeout: v.GetDuration("ratings_timeout"),

		LocalStore: strings.ToLower(v.GetString("local_store")),
		LocalPath:  expandHome(v.GetString("local_path")),

		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
		LogOutput: v.GetString("log_output"),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dataset", "locations.json")
	v.SetDefault("ratings_auth", "bearer")
	v.SetDefault("ratings_timeout", 10*time.Second)
	v.SetDefault("local_store", StoreFile)
	v.SetDefault("local_path", filepath.Join("~", ".tripmap"))
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// godotenv never overrides variables that are already set, so .env
// takes precedence over .env.local.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
