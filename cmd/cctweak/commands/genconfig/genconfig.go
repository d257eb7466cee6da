package genconfig

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/cctweak/pkg/config"
	"github.com/arthur-debert/cctweak/pkg/paths"
)

// NewCommand creates the genconfig command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "genconfig",
		Short:   MsgShort,
		Long:    MsgLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(paths.SettingsPath())
			if err != nil {
				return err
			}

			if err := config.WriteSettings(paths.SettingsPath(), settings); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", paths.SettingsPath())

			if err := config.WriteModelsSeed(paths.ModelsPath()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", paths.ModelsPath())
			return nil
		},
	}
}
