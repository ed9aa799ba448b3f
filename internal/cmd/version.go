package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/renderings/internal/output"
	"github.com/opmodel/renderings/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show rndr CLI version information.

Displays:
  - rndr version, commit, and build date
  - Go and CUE SDK versions`,
		Args: cobra.NoArgs,
		RunE: runVersion,
		Annotations: map[string]string{
			configOptionalAnnotation: "true",
		},
	}
}

func runVersion(cmd *cobra.Command, _ []string) error {
	info := version.Get()

	format := GetOutputFormat(output.FormatTable)
	if format == output.FormatTable {
		output.Println(info.String())
		return nil
	}
	return output.WriteValues(info, output.ValueOptions{Format: format, Writer: cmd.OutOrStdout()})
}
