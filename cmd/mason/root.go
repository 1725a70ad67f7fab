package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/mason/pkg/logging"
)

// Version information, set at build time via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	verbosity int

	rootCmd = &cobra.Command{
		Use:   "mason",
		Short: MsgRootShort,
		Long: `mason materializes concrete projects from generic template trees:
it substitutes named placeholders in file contents and in file and
directory names, using variables derived from your project name and
your git identity.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	initTemplateFormatting()
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: MsgVersionShort,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mason version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}
