package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/renderings/internal/convert"
	"github.com/opmodel/renderings/internal/output"
)

// NewLinksPlanCmd creates the links plan command.
func NewLinksPlanCmd() *cobra.Command {
	var (
		fileFlag  string
		allowFlag []string
	)

	cmd := &cobra.Command{
		Use:   "plan -f <file>",
		Short: "Show which related links would be converted",
		Long: `Report, link by link, whether 'rndr links convert' would turn it into a
view model, without creating any. Dropped links are summarized as warnings.

Examples:
  rndr links plan -f links.yaml --allow Teaser`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLinksPlan(cmd, fileFlag, allowFlag)
		},
	}

	cmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Related-links document (yaml, json or cue)")
	cmd.Flags().StringSliceVar(&allowFlag, "allow", nil, "Allowed view-model type (repeatable)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runLinksPlan(cmd *cobra.Command, file string, allow []string) error {
	in, err := loadLinksInput(file, allow)
	if err != nil {
		return err
	}

	plan, err := in.converter.Plan(in.links, in.allowed)
	if err != nil {
		return err
	}

	for _, w := range convert.CollectWarnings(plan) {
		output.Warn(w)
	}

	w := cmd.OutOrStdout()
	format := GetOutputFormat(interactiveFormat())
	if format != output.FormatTable {
		return output.WriteValues(plan, output.ValueOptions{Format: format, Writer: w})
	}

	for _, m := range plan.Matches {
		status := output.StatusResolved
		if !m.Matched {
			status = output.StatusDropped
		}
		if _, err := fmt.Fprintln(w, output.FormatResolveLine(m.Alias, m.Caption, status)); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w, output.StyleSummary.Render(
		fmt.Sprintf("%d of %d links converted", plan.Matched(), len(plan.Matches))))
	return err
}
