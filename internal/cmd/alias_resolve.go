package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/renderings/internal/output"
	"github.com/opmodel/renderings/internal/rendering"
)

// NewAliasResolveCmd creates the alias resolve command.
func NewAliasResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <alias>...",
		Short: "Resolve aliases to view-model types",
		Long: `Resolve document type aliases to their registered view-model types.

Examples:
  # Resolve two aliases
  rndr alias resolve article person

  # Fail on unknown aliases
  rndr alias resolve --strict article unknown`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAliasResolve,
	}
}

func runAliasResolve(cmd *cobra.Command, args []string) error {
	resolver, err := newResolver()
	if err != nil {
		return err
	}

	rows := make([]resolveRow, 0, len(args))
	resolved := 0
	for _, alias := range args {
		res, err := resolver.Resolve(alias)
		if err != nil {
			return err
		}
		row := resolveRow{Alias: alias, Status: output.StatusUnresolved}
		if !res.HasErrors {
			row.Type = rendering.TypeName(res.ModelType)
			row.Status = output.StatusResolved
			resolved++
		}
		rows = append(rows, row)
	}

	if err := writeResolveRows(cmd.OutOrStdout(), rows, GetOutputFormat(interactiveFormat())); err != nil {
		return err
	}

	output.Debug("aliases resolved", "requested", len(args), "resolved", resolved)
	return nil
}
