// Package version provides the version command.
package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/tripmap/cmd/tripmap/context"
	"github.com/agentstation/tripmap/internal/cmd/output"
)

// Info is the structured version output.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date" yaml:"date"`
	BuiltBy   string `json:"built_by" yaml:"built_by"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// NewCommand creates the version command.
func NewCommand(appCtx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			info := Info{
				Version:   appCtx.Version(),
				Commit:    appCtx.Commit(),
				Date:      appCtx.Date(),
				BuiltBy:   appCtx.BuiltBy(),
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}

			out := appCtx.Stdout()
			if format := output.Format(appCtx.OutputFormat()); format == output.FormatJSON || format == output.FormatYAML {
				return output.NewFormatter(format).Format(out, info)
			}
			fmt.Fprintf(out, "tripmap version %s\n", info.Version)
			fmt.Fprintf(out, "commit: %s\n", info.Commit)
			fmt.Fprintf(out, "built: %s\n", info.Date)
			fmt.Fprintf(out, "built by: %s\n", info.BuiltBy)
			fmt.Fprintf(out, "go version: %s\n", info.GoVersion)
			fmt.Fprintf(out, "platform: %s\n", info.Platform)
			return nil
		},
	}
}
