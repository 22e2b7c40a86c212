// Package list provides the list command, which prints the venues visible
// under a selection.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/tripmap"
	"github.com/agentstation/tripmap/cmd/tripmap/context"
	"github.com/agentstation/tripmap/internal/cmd/cmdutil"
	"github.com/agentstation/tripmap/internal/cmd/hints"
	"github.com/agentstation/tripmap/internal/cmd/output"
	"github.com/agentstation/tripmap/internal/present/text"
	"github.com/agentstation/tripmap/pkg/errors"
	"github.com/agentstation/tripmap/pkg/selection"
)

// NewCommand creates the list command.
func NewCommand(appCtx context.Context) *cobra.Command {
	var (
		view  bool
		focus string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the venues visible under the current filters",
		Long: `List prints the visible venues in display order.

With the default sort venues are grouped by type. The star sorts flatten
the list by rating. In itinerary mode only venues referenced by the
itinerary are listed and the type filters are ignored.

--view renders the full explorer view instead: the list with its group
headers, marker state and, with --focus, the popup of one venue.`,
		Example: `  tripmap list
  tripmap list --filter hotel-lux,hotel-mid --sort stars-desc
  tripmap list --mode itinerary --compact
  tripmap list --view --focus "Caruso's"
  tripmap list -o json`,
		Args: cobra.NoArgs,
	}
	flags := cmdutil.AddViewFlags(cmd)
	cmd.Flags().BoolVar(&view, "view", false, "Render the explorer view instead of a table")
	cmd.Flags().StringVar(&focus, "focus", "", "Open the popup of a visible venue (requires --view)")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		state, err := flags.State()
		if err != nil {
			return err
		}
		if focus != "" && !view {
			return errors.NewValidationError("focus", focus, "requires --view")
		}

		out := appCtx.Stdout()
		opts := []tripmap.Option{tripmap.WithSelection(state)}
		if view {
			opts = append(opts, tripmap.WithPresenter(text.New(out, text.WithLogger(appCtx.Logger()))))
		}

		ex, err := appCtx.Explorer(cmd.Context(), opts...)
		if err != nil {
			return err
		}
		if err := ex.DatasetErr(); err != nil && !view {
			appCtx.Logger().Warn().Err(err).Msg("Showing an empty list")
		}

		if view {
			if focus != "" && !ex.ClickItem(focus) {
				return errors.NewNotFoundError("visible venue", focus)
			}
			return nil
		}

		result := ex.Result()
		format := output.DetectFormat(appCtx.OutputFormat())
		if err := output.Write(out, format, output.VenueRows(result), output.ResultTable(result, state.Compact)); err != nil {
			return err
		}
		switch {
		case state.Mode == selection.Itinerary && ex.Itinerary() == nil:
			return hints.Write(out, format, hints.NoItinerary())
		case result.Empty() && ex.DatasetErr() == nil:
			return hints.Write(out, format, hints.NoMatches())
		}
		return nil
	}

	return cmd
}
