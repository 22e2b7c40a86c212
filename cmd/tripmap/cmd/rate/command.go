// Package rate provides the rate command.
package rate

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentstation/tripmap/cmd/tripmap/context"
	"github.com/agentstation/tripmap/internal/cmd/emoji"
	"github.com/agentstation/tripmap/internal/cmd/hints"
	"github.com/agentstation/tripmap/internal/cmd/output"
	"github.com/agentstation/tripmap/pkg/constants"
	"github.com/agentstation/tripmap/pkg/errors"
	"github.com/agentstation/tripmap/pkg/ratings"
)

// NewCommand creates the rate command.
func NewCommand(appCtx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "rate <venue> <stars>",
		Short: "Rate a venue from 1 to 5 stars",
		Long: `Rate sets the star rating of a venue.

Rating a venue with the stars it already has clears the rating. The
rating is written to the rating service when one is configured. It is
written to the local store only when no service is configured or the
service is unreachable.`,
		Example: `  tripmap rate "Caruso's" 5
  tripmap rate "Caruso's" 5   # again, clears the rating`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			n, err := strconv.Atoi(args[1])
			if err != nil || n < constants.MinStar || n > constants.MaxStar {
				return errors.NewValidationError("stars", args[1],
					fmt.Sprintf("must be a whole number from %d to %d", constants.MinStar, constants.MaxStar))
			}

			ex, err := appCtx.Explorer(cmd.Context())
			if err != nil {
				return err
			}
			settled, err := ex.Rate(cmd.Context(), name, ratings.Rating(n))
			if err != nil {
				return err
			}

			out := appCtx.Stdout()
			format := output.DetectFormat(appCtx.OutputFormat())
			if format != output.FormatTable {
				return output.NewFormatter(format).Format(out, output.RatingRow{Name: name, Rating: settled})
			}
			if settled == ratings.Unrated {
				fmt.Fprintf(out, "%s Cleared rating for %s\n", emoji.Success, name)
			} else {
				fmt.Fprintf(out, "%s Rated %s %s\n", emoji.Success, name, emoji.Stars(settled))
			}
			if appCtx.RatingsURL() == "" {
				return hints.Write(out, format, hints.LocalOnly())
			}
			return nil
		},
	}
}
