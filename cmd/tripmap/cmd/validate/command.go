// Package validate provides the validate command, which checks the venue
// dataset and the itinerary references.
package validate

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/tripmap/cmd/tripmap/context"
	"github.com/agentstation/tripmap/internal/cmd/emoji"
	"github.com/agentstation/tripmap/pkg/errors"
)

// NewCommand creates the validate command.
func NewCommand(appCtx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the venue dataset and itinerary",
		Long: `Validate loads the venue dataset and the itinerary and reports
records that fail validation and itinerary slots naming unknown venues.
It exits non-zero when anything is wrong.`,
		Example: `  tripmap validate --dataset locations.json --itinerary trip.yaml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ex, err := appCtx.Explorer(cmd.Context())
			if err != nil {
				return err
			}
			out := appCtx.Stdout()

			if err := ex.DatasetErr(); err != nil {
				fmt.Fprintf(out, "%s Dataset: %v\n", emoji.Error, err)
				return errors.NewValidationError("dataset", nil, "venue dataset failed to load")
			}
			fmt.Fprintf(out, "%s Dataset: %d venues\n", emoji.Success, ex.Venues().Len())

			it := ex.Itinerary()
			if it == nil {
				fmt.Fprintf(out, "%s Itinerary: none loaded\n", emoji.Info)
				return nil
			}
			missing := it.Unresolved(ex.Venues())
			if len(missing) > 0 {
				fmt.Fprintf(out, "%s Itinerary: unknown venues %s\n", emoji.Error, strings.Join(missing, ", "))
				return errors.NewValidationError("itinerary", missing,
					fmt.Sprintf("%d itinerary venues are not in the dataset", len(missing)))
			}
			fmt.Fprintf(out, "%s Itinerary: %d days, %d venues\n", emoji.Success, len(it.Days), len(it.VenueNames()))
			return nil
		},
	}
}
