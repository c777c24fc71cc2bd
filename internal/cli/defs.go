package cli

import (
	"github.com/spf13/cobra"
)

// NewDefsCmd creates the defs command.
func NewDefsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defs",
		Short: "Emit one constant definition per error constant",
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
			return em.WriteDefs(cmd.OutOrStdout(), entries)
		},
	}
}
