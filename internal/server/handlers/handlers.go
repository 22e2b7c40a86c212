// Package handlers provides the HTTP request handlers of the rating service.
package handlers

import (
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/agentstation/tripmap/pkg/ratings"
)

// Handlers serves one shared rating mapping kept in a local store.
type Handlers struct {
	mu       sync.Mutex // serializes read-modify-write of the mapping
	local    ratings.Local
	key      string
	validate *validator.Validate
	logger   *zerolog.Logger
	started  time.Time
}

// New creates a new Handlers instance.
func New(local ratings.Local, key string, logger *zerolog.Logger) *Handlers {
	return &Handlers{
		local:    local,
		key:      key,
		validate: validator.New(),
		logger:   logger,
		started:  time.Now(),
	}
}
