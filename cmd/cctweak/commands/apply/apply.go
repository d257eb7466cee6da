package apply

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/cctweak/pkg/core"
	"github.com/arthur-debert/cctweak/pkg/errors"
	"github.com/arthur-debert/cctweak/pkg/rules"
	"github.com/arthur-debert/cctweak/pkg/style"
)

// NewCommand creates the apply command
func NewCommand(opts *core.Options) *cobra.Command {
	return &cobra.Command{
		Use:       "apply [tweaks...]",
		Short:     MsgShort,
		Long:      MsgLong,
		Example:   MsgExample,
		GroupID:   "core",
		ValidArgs: rules.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			runOpts := *opts
			runOpts.Tweaks = args

			res, err := core.Run(runOpts)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), style.RenderReport(res))

			if res.Unrecognized() {
				return errors.New(errors.ErrUnrecognizedShape, MsgUnrecognized)
			}
			return nil
		},
	}
}
