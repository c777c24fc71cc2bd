package cli

import (
	"github.com/spf13/cobra"
)

// NewDeclsCmd creates the decls command.
func NewDeclsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decls",
		Short: "Emit one forward declaration per error constant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			em, err := newEmitter()
			if err != nil {
				return err
			}
			entries, err := loadEntries(cmd.Context())
			if err != nil {
				return err
			}
			return em.WriteDecls(cmd.OutOrStdout(), entries)
		},
	}
}
