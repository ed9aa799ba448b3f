package cmd

import (
	"github.com/spf13/cobra"
)

// NewLinksCmd creates the links command group.
func NewLinksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "links",
		Short: "Work with related-link documents",
	}

	cmd.AddCommand(NewLinksConvertCmd())
	cmd.AddCommand(NewLinksPlanCmd())

	return cmd
}
