// Package cmdutil provides shared flags for tripmap commands.
package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/tripmap/pkg/errors"
	"github.com/agentstation/tripmap/pkg/selection"
	"github.com/agentstation/tripmap/pkg/venues"
)

// ViewFlags holds the selection flags shared by list-like commands.
type ViewFlags struct {
	Filters []string
	Sort    string
	Mode    string
	Compact bool
}

// AddViewFlags adds selection flags to a command.
func AddViewFlags(cmd *cobra.Command) *ViewFlags {
	flags := &ViewFlags{}

	cmd.Flags().StringSliceVarP(&flags.Filters, "filter", "f", nil,
		"Venue types to show (e.g. restaurant-star,hotel-lux); default all")
	cmd.Flags().StringVarP(&flags.Sort, "sort", "s", "default",
		"Sort mode: default, stars-desc, stars-asc")
	cmd.Flags().StringVarP(&flags.Mode, "mode", "m", "browse",
		"Selection mode: browse, itinerary")
	cmd.Flags().BoolVarP(&flags.Compact, "compact", "c", false,
		"Hide addresses and booking details")

	return flags
}

// State builds the selection state the flags describe. An empty filter
// list selects every venue type.
func (f *ViewFlags) State() (selection.State, error) {
	state := selection.New()

	if len(f.Filters) > 0 {
		tags := make([]venues.Tag, 0, len(f.Filters))
		for _, s := range f.Filters {
			tag, ok := venues.ParseTag(s)
			if !ok {
				return state, errors.NewValidationError("filter", s, "unknown venue type")
			}
			tags = append(tags, tag)
		}
		state = state.WithFilters(tags...)
	}

	sort, err := selection.ParseSortMode(f.Sort)
	if err != nil {
		return state, err
	}
	mode, err := selection.ParseMode(f.Mode)
	if err != nil {
		return state, err
	}

	return state.WithSort(sort).WithMode(mode).WithCompact(f.Compact), nil
}
