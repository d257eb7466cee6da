package triage

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/cctweak/pkg/ui"
)

//go:embed triage.md
var triageGuide string

// NewCommand creates the triage command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "triage",
		Short:   MsgShort,
		Long:    MsgLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), ui.RenderMarkdown(triageGuide, 0))
		},
	}
}
