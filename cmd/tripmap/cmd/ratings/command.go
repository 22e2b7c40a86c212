// Package ratings provides the ratings command.
package ratings

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/tripmap/cmd/tripmap/context"
	"github.com/agentstation/tripmap/internal/cmd/output"
)

// NewCommand creates the ratings command.
func NewCommand(appCtx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "ratings",
		Short: "Show every rated venue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ex, err := appCtx.Explorer(cmd.Context())
			if err != nil {
				return err
			}
			m := ex.Ratings()
			format := output.DetectFormat(appCtx.OutputFormat())
			return output.Write(appCtx.Stdout(), format, output.RatingRows(m), output.RatingsTable(m))
		},
	}
}
