// Package main is the entry point for the boardctl CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "boardctl",
	Short: "boardctl - manage a taskboard server from the command line",
	Long: `boardctl talks to a running taskboard server over its HTTP API.

The board keeps projects in two lists: active and finished. New projects
start on the active list and can be moved between lists at any time. The
watch command follows the board over a live stream and reprints it on
every change.`,
	Version: Version,
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var serverURL string

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.SetVersionTemplate("boardctl version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "base URL of the taskboard server")
}
