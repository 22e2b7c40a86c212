// Package itinerary provides the itinerary command.
package itinerary

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/tripmap/cmd/tripmap/context"
	"github.com/agentstation/tripmap/internal/cmd/output"
	"github.com/agentstation/tripmap/pkg/errors"
)

// NewCommand creates the itinerary command.
func NewCommand(appCtx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "itinerary",
		Short: "Show the day-by-day itinerary",
		Long: `Itinerary prints every day and slot of the configured itinerary.
Slots that reference a venue missing from the dataset are marked.`,
		Example: `  tripmap itinerary --itinerary trip.yaml
  tripmap itinerary -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ex, err := appCtx.Explorer(cmd.Context())
			if err != nil {
				return err
			}
			it := ex.Itinerary()
			if it == nil {
				return errors.NewConfigError("itinerary", "no itinerary loaded, set --itinerary", errors.ErrNotConfigured)
			}
			format := output.DetectFormat(appCtx.OutputFormat())
			return output.Write(appCtx.Stdout(), format, it, output.ItineraryTable(it, ex.Venues()))
		},
	}
}
