package main

import (
	"github.com/spf13/cobra"

	"guiready/pkg/platformcheck"
)

var platformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Check that the operating system supports GUI automation",
	Args:  cobra.NoArgs,
	RunE:  runPlatformCheck,
}

func init() {
	rootCmd.AddCommand(platformCmd)
}

func runPlatformCheck(_ *cobra.Command, _ []string) error {
	return runCheck(&platformcheck.Check{Info: &platformcheck.RealSysInfo{}})
}
