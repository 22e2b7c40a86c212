// Package export provides the export command, which writes the visible
// venues and the itinerary as a Markdown trip sheet.
package export

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/tripmap"
	"github.com/agentstation/tripmap/cmd/tripmap/context"
	"github.com/agentstation/tripmap/internal/cmd/cmdutil"
	"github.com/agentstation/tripmap/internal/present/markdown"
	"github.com/agentstation/tripmap/pkg/errors"
)

// NewCommand creates the export command.
func NewCommand(appCtx context.Context) *cobra.Command {
	var (
		file  string
		title string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the visible venues as a Markdown trip sheet",
		Example: `  tripmap export > trip.md
  tripmap export --filter restaurant-star --sort stars-desc --out dinners.md
  tripmap export --title "Santa Barbara 2026" --compact`,
		Args: cobra.NoArgs,
	}
	flags := cmdutil.AddViewFlags(cmd)
	cmd.Flags().StringVar(&file, "out", "", "Write to a file instead of stdout")
	cmd.Flags().StringVar(&title, "title", "", "Document title (default \"Trip Sheet\")")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		state, err := flags.State()
		if err != nil {
			return err
		}
		ex, err := appCtx.Explorer(cmd.Context(), tripmap.WithSelection(state))
		if err != nil {
			return err
		}
		if err := ex.DatasetErr(); err != nil {
			return err
		}

		var w io.Writer = appCtx.Stdout()
		if file != "" {
			f, err := os.Create(file)
			if err != nil {
				return errors.WrapIO("create", file, err)
			}
			defer f.Close()
			w = f
		}

		doc := markdown.Document{
			Title:     title,
			Result:    ex.Result(),
			Itinerary: ex.Itinerary(),
			Set:       ex.Venues(),
			Compact:   state.Compact,
		}
		if err := markdown.Export(w, doc); err != nil {
			return err
		}
		if file != "" {
			appCtx.Logger().Info().Str("file", file).Int("venues", doc.Result.Len()).Msg("Trip sheet written")
		}
		return nil
	}

	return cmd
}
