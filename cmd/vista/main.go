// Package main is the entry point for the vista CLI.
//
// vista watches a layout file and reports, once, when a named element
// becomes visible in the viewport the file describes.
//
// Usage:
//
//	vista watch -l layout.yaml -t hero     # Wait until hero is visible
//	vista validate -l layout.yaml          # Validate a layout file
//	vista version                          # Show version info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "vista",
	Short: "Report when an element first scrolls into view",
	Long: `vista watches a layout file describing a viewport and the bounds of
named elements. Each write to the file counts as a scroll. When the target
element first overlaps the viewport, vista prints one line and exits.

Example layout:
  viewport_height: 800
  elements:
    hero:
      top: 900
      bottom: 950`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "vista %s\n", version)
		fmt.Fprintf(out, "  commit: %s\n", commit)
		fmt.Fprintf(out, "  built:  %s\n", date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
