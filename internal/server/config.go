package server

import (
	"fmt"
	"time"

	"github.com/agentstation/tripmap/pkg/constants"
)

// Config holds server configuration.
type Config struct {
	// Listener
	Host string
	Port int

	// Storage key the shared mapping is kept under
	Key string

	// CORS settings
	CORSEnabled bool
	CORSOrigins []string

	// Token authentication. An empty Token leaves the service open.
	Token      string
	AuthHeader string

	// HTTP timeouts
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Host:         "localhost",
		Port:         8080,
		Key:          constants.RatingsKey,
		CORSEnabled:  true,
		CORSOrigins:  []string{},
		AuthHeader:   "X-API-Key",
		ReadTimeout:  constants.ServerReadTimeout,
		WriteTimeout: constants.ServerWriteTimeout,
		IdleTimeout:  constants.ServerIdleTimeout,
	}
}

// Addr is the host:port the service listens on.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
