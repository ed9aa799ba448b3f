package cmd

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opmodel/renderings/internal/output"
	"github.com/opmodel/renderings/internal/rendering"
)

// NewAliasListCmd creates the alias list command.
func NewAliasListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered aliases",
		Long: `List every registered alias with its view-model type, description and
property aliases, in registration order.

Examples:
  # Show the registry as a table
  rndr alias list

  # Show the registry as JSON
  rndr alias list -o json`,
		Args: cobra.NoArgs,
		RunE: runAliasList,
	}
}

func runAliasList(cmd *cobra.Command, _ []string) error {
	resolver, err := newResolver()
	if err != nil {
		return err
	}

	rows := aliasRows(resolver.Registry())

	format := GetOutputFormat(interactiveFormat())
	if format == output.FormatTable {
		fmt.Fprintln(cmd.OutOrStdout(), output.RenderAliasTable(rows))
		return nil
	}
	return output.WriteValues(rows, output.ValueOptions{Format: format, Writer: cmd.OutOrStdout()})
}

func aliasRows(reg *rendering.Registry) []output.AliasRow {
	entries := reg.Entries()
	rows := make([]output.AliasRow, 0, len(entries))
	for _, e := range entries {
		row := output.AliasRow{
			Alias: e.Alias,
			Type:  rendering.TypeName(e.ModelType),
		}
		if e.Descriptor != nil {
			row.Description = e.Descriptor.Description
		}
		props := rendering.PropertyAliases(e.ModelType)
		row.Properties = strings.Join(slices.Sorted(maps.Values(props)), ", ")
		rows = append(rows, row)
	}
	return rows
}
