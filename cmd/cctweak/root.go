package cctweak

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/cctweak/cmd/cctweak/commands/apply"
	"github.com/arthur-debert/cctweak/cmd/cctweak/commands/genconfig"
	"github.com/arthur-debert/cctweak/cmd/cctweak/commands/restore"
	"github.com/arthur-debert/cctweak/cmd/cctweak/commands/status"
	"github.com/arthur-debert/cctweak/cmd/cctweak/commands/triage"
	"github.com/arthur-debert/cctweak/internal/version"
	"github.com/arthur-debert/cctweak/pkg/cobrax/topics"
	"github.com/arthur-debert/cctweak/pkg/core"
	"github.com/arthur-debert/cctweak/pkg/logging"
	"github.com/arthur-debert/cctweak/pkg/style"
)

//go:embed topics/*.md
var topicFiles embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		opts      core.Options
	)

	rootCmd := &cobra.Command{
		Use:     "cctweak",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			style.ConfigureTerminal()
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but exit nonzero
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&opts.DryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&opts.TargetPath, "file", "", MsgFlagFile)
	rootCmd.PersistentFlags().StringVar(&opts.ModelsPath, "models", "", MsgFlagModels)
	rootCmd.PersistentFlags().BoolVar(&opts.NoSign, "no-sign", false, MsgFlagNoSign)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Add all commands
	rootCmd.AddCommand(apply.NewCommand(&opts))
	rootCmd.AddCommand(status.NewCommand(&opts))
	rootCmd.AddCommand(restore.NewCommand(&opts))
	rootCmd.AddCommand(triage.NewCommand())
	rootCmd.AddCommand(genconfig.NewCommand())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newManCmd(rootCmd))

	// Topic-based help (`cctweak help tweaks`, `cctweak help discovery`)
	if sub, err := fs.Sub(topicFiles, "topics"); err == nil {
		_ = topics.InitializeWithOptions(rootCmd, sub, topics.Options{
			Renderer: topics.NewGlamourRenderer(),
		})
	}

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   "Print version information",
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("cctweak version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}

func newManCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:     "man",
		Short:   "Generate man page",
		GroupID: "misc",
		Hidden:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "CCTWEAK",
				Section: "1",
			}
			return doc.GenManTree(root, header, "/tmp")
		},
	}
}
