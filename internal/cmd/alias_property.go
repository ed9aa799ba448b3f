package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewAliasPropertyCmd creates the alias property command.
func NewAliasPropertyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "property <TypeName> <Field>",
		Short: "Show the property alias of a view-model field",
		Long: `Print the content property alias a view-model field is bound to.

Field may be a dotted path into nested structs. A field without a property
alias exits with code 2; an unknown field exits with code 5.

Examples:
  rndr alias property Article Title`,
		Args: cobra.ExactArgs(2),
		RunE: runAliasProperty,
	}
}

func runAliasProperty(cmd *cobra.Command, args []string) error {
	resolver, err := newResolver()
	if err != nil {
		return err
	}

	types, err := lookupTypes(resolver.Registry(), args[:1])
	if err != nil {
		return err
	}

	alias, err := resolver.ResolvePropertyAlias(types[0], args[1])
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), alias)
	return err
}
