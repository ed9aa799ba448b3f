package cmd

import (
	"github.com/spf13/cobra"
)

// NewAliasCmd creates the alias command group.
func NewAliasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alias",
		Short: "Inspect document type alias registrations",
		Long: `Inspect the registry that maps document type aliases to view-model types.

Unresolved aliases and types are logged under the lenient policy and fail
with exit code 7 under the strict policy. The policy is strict when --strict
is set or the environment is anything other than "production".`,
	}

	cmd.AddCommand(NewAliasListCmd())
	cmd.AddCommand(NewAliasResolveCmd())
	cmd.AddCommand(NewAliasTypeCmd())
	cmd.AddCommand(NewAliasPropertyCmd())

	return cmd
}
