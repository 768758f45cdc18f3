package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coli",
	Short: "COLI web front-end",
	Long: `coli runs the COLI web front-end and offers a terminal sign-up.

Available commands:
  serve      Start the web server
  signup     Create an account from the terminal
  signout    Remove the saved terminal session
  version    Print the version

Configuration is read from the environment (and a .env file if present).`,
	SilenceUsage: true,
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
