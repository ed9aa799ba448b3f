package cmd

import (
	"reflect"

	"github.com/spf13/cobra"

	"github.com/opmodel/renderings/internal/output"
	"github.com/opmodel/renderings/internal/rendering"
)

// NewAliasTypeCmd creates the alias type command.
func NewAliasTypeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "type <TypeName>...",
		Short: "Resolve view-model types to aliases",
		Long: `List the aliases registered for the given view-model types, in registry
order. Type names may be given as "Article", "viewmodels.Article" or
"*viewmodels.Article". Interface types such as "Teaser" are accepted and
ignored.

Examples:
  rndr alias type Article Person`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAliasType,
	}
}

func runAliasType(cmd *cobra.Command, args []string) error {
	resolver, err := newResolver()
	if err != nil {
		return err
	}
	reg := resolver.Registry()

	types, err := lookupTypes(reg, args)
	if err != nil {
		return err
	}

	var rows []resolveRow
	for alias, err := range resolver.ResolveTypes(types) {
		if err != nil {
			return err
		}
		res, _ := reg.Lookup(alias)
		rows = append(rows, resolveRow{
			Alias:  alias,
			Type:   rendering.TypeName(res.ModelType),
			Status: output.StatusResolved,
		})
	}

	for _, t := range resolver.MissingTypes(types) {
		rows = append(rows, resolveRow{Type: rendering.TypeName(t), Status: output.StatusUnresolved})
	}
	for _, t := range types {
		if t.Kind() == reflect.Interface {
			rows = append(rows, resolveRow{Type: rendering.TypeName(t), Status: output.StatusDropped})
		}
	}

	return writeResolveRows(cmd.OutOrStdout(), rows, GetOutputFormat(interactiveFormat()))
}
