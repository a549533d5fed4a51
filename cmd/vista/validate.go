package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoobzio/vista"
	"github.com/zoobzio/vista/pkg/layout"
)

// validateCmd validates a layout file without watching it.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a layout file",
	Long: `Validate a layout file and list each element with its current
visibility. Useful for checking fixtures before running watch.

Example:
  vista validate -l layout.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("layout", "l", "", "path to layout file (required)")
	_ = validateCmd.MarkFlagRequired("layout")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("layout")
	l, err := layout.Load(path)
	if err != nil {
		return fmt.Errorf("invalid layout: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Layout is valid!\n")
	fmt.Fprintf(out, "  Viewport height: %g\n", l.ViewportHeight)
	fmt.Fprintf(out, "  Elements:        %d\n", len(l.Elements))
	for _, name := range l.Names() {
		r := l.Elements[name]
		fmt.Fprintf(out, "    %-16s %s visible=%v\n", name, r, vista.CheckVisible(r, l.ViewportHeight))
	}
	return nil
}
