// Package hints provides actionable user guidance for CLI operations.
package hints

import (
	"fmt"
	"io"
	"strings"

	"github.com/agentstation/tripmap/internal/cmd/output"
	"github.com/agentstation/tripmap/pkg/venues"
)

// Hint represents actionable user guidance.
type Hint struct {
	Message string // Human-readable guidance message
	Command string // Optional specific command to run
}

// New creates a new hint with the given message.
func New(message string) *Hint {
	return &Hint{Message: message}
}

// NewCommand creates a new hint with a specific command.
func NewCommand(message, command string) *Hint {
	return &Hint{Message: message, Command: command}
}

// String returns a string representation of the hint.
func (h *Hint) String() string {
	parts := []string{fmt.Sprintf("💡 %s", h.Message)}
	if h.Command != "" {
		parts = append(parts, fmt.Sprintf("   Run: %s", h.Command))
	}
	return strings.Join(parts, "\n")
}

// Write prints hints after table output. Structured formats stay
// machine-readable, so they get none.
func Write(w io.Writer, format output.Format, hints ...*Hint) error {
	if format != output.FormatTable && format != "" {
		return nil
	}
	for _, h := range hints {
		if h == nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n%s\n", h); err != nil {
			return err
		}
	}
	return nil
}

// LocalOnly tells the user ratings stay on this machine.
func LocalOnly() *Hint {
	return NewCommand("Ratings are only stored locally. Point at a rating service to share them",
		"tripmap --ratings-url http://localhost:8080 rate <venue> <stars>")
}

// NoMatches suggests widening an empty selection.
func NoMatches() *Hint {
	return NewCommand("No venues match the current filters", "tripmap list --filter "+allTypes())
}

// NoItinerary explains how to load an itinerary.
func NoItinerary() *Hint {
	return NewCommand("No itinerary is loaded", "tripmap --itinerary trip.yaml list --mode itinerary")
}

func allTypes() string {
	tags := venues.AllTags()
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = string(tag)
	}
	return strings.Join(names, ",")
}
