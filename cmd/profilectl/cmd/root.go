package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "profilectl",
		Short: "Seller profile CLI tool",
		Long: `profilectl talks to the seller profile API the way the web page does.

Available commands:
  fetch      Fetch a profile with a credential token
  topics     List the events the server publishes
  version    Print the version

Use "profilectl [command] --help" for more information about a specific command.`,
		SilenceUsage: true,
	}
	root.AddCommand(newFetchCmd(), newTopicsCmd(), newVersionCmd())
	return root
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
