// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all command-line commands.
package emoji

import (
	"strings"

	"github.com/agentstation/tripmap/pkg/constants"
	"github.com/agentstation/tripmap/pkg/ratings"
)

// Status symbols.
const (
	// Success represents successful completion of an operation.
	Success = "✓"

	// Error represents failures, such as an invalid dataset record.
	Error = "✗"

	// Warning prefixes the dataset failure message shown in place of the list.
	Warning = "⚠️"

	// Info represents informational messages.
	Info = "i"
)

// Venue symbols.
const (
	// Star is a filled rating star.
	Star = "★"

	// EmptyStar pads a rating up to five stars.
	EmptyStar = "☆"

	// Pin marks a venue popup.
	Pin = "📍"

	// Active marks the active list item.
	Active = "›"

	// Unrated stands in for a venue without a rating.
	Unrated = "-"
)

// Stars renders r as five glyphs, filled up to r.
func Stars(r ratings.Rating) string {
	if r == ratings.Unrated || !r.Valid() {
		return Unrated
	}
	n := int(r)
	return strings.Repeat(Star, n) + strings.Repeat(EmptyStar, constants.MaxStar-n)
}
