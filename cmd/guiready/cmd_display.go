package main

import (
	"github.com/spf13/cobra"

	"guiready/pkg/displaycheck"
)

var displayCmd = &cobra.Command{
	Use:   "display [variable]",
	Short: "Check that a display session variable is set (default: DISPLAY)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDisplayCheck,
}

func init() {
	rootCmd.AddCommand(displayCmd)
}

func runDisplayCheck(_ *cobra.Command, args []string) error {
	name := displaycheck.DefaultVar
	if len(args) == 1 {
		name = args[0]
	}

	return runCheck(&displaycheck.Check{
		Name:   name,
		Getter: &displaycheck.RealEnvGetter{},
	})
}
