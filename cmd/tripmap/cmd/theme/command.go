// Package theme provides the theme command.
package theme

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/tripmap/cmd/tripmap/context"
)

// NewCommand creates the theme command.
func NewCommand(appCtx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [toggle]",
		Short: "Show or toggle the map theme",
		Long: `Theme prints the persisted map theme (dark or light).
With "toggle" it switches to the other theme and stores it.`,
		Example: `  tripmap theme
  tripmap theme toggle`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ex, err := appCtx.Explorer(cmd.Context())
			if err != nil {
				return err
			}

			theme := ex.Theme()
			if len(args) == 1 {
				if theme, err = ex.ToggleTheme(); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintln(appCtx.Stdout(), theme)
			return err
		},
	}
}
