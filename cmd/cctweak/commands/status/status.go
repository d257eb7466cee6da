package status

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/cctweak/pkg/core"
	"github.com/arthur-debert/cctweak/pkg/rules"
	"github.com/arthur-debert/cctweak/pkg/style"
)

// NewCommand creates the status command
func NewCommand(opts *core.Options) *cobra.Command {
	return &cobra.Command{
		Use:       "status [tweaks...]",
		Short:     MsgShort,
		Long:      MsgLong,
		Example:   MsgExample,
		GroupID:   "core",
		ValidArgs: rules.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			runOpts := *opts
			runOpts.Tweaks = args
			runOpts.DryRun = true

			res, err := core.Run(runOpts)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), style.RenderReport(res))
			if len(res.Attempts) > 1 {
				// More than one attempt means discovery did real work
				fmt.Fprint(cmd.OutOrStdout(), style.RenderAttempts(res.Attempts))
			}
			return nil
		},
	}
}
