package restore

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/cctweak/pkg/core"
)

// NewCommand creates the restore command
func NewCommand(opts *core.Options) *cobra.Command {
	return &cobra.Command{
		Use:     "restore",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := core.Restore(*opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored %s from backup\n", path)
			return nil
		},
	}
}
