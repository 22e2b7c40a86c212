// Package menu provides the menu command.
package menu

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/tripmap/cmd/tripmap/context"
	"github.com/agentstation/tripmap/internal/cmd/output"
)

// NewCommand creates the menu command.
func NewCommand(appCtx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:     "menu <venue>",
		Short:   "Show the menu of a restaurant",
		Example: `  tripmap menu "Caruso's"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ex, err := appCtx.Explorer(cmd.Context())
			if err != nil {
				return err
			}
			menu, err := ex.Menu(args[0])
			if err != nil {
				return err
			}

			out := appCtx.Stdout()
			format := output.DetectFormat(appCtx.OutputFormat())
			if err := output.Write(out, format, menu, output.MenuTable(menu)); err != nil {
				return err
			}
			if format == output.FormatTable && menu.URL != "" {
				_, err = fmt.Fprintf(out, "Full menu: %s\n", menu.URL)
			}
			return err
		},
	}
}
