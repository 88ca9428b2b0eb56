package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"guiready/pkg/installer"
	"guiready/pkg/toolcheck"
	"guiready/pkg/version"
)

var (
	toolMin     string
	toolPackage string
	toolTimeout time.Duration
)

var toolCmd = &cobra.Command{
	Use:   "tool <command>",
	Short: "Check that an automation tool exists on PATH",
	Args:  cobra.ExactArgs(1),
	RunE:  runToolCheck,
}

func init() {
	toolCmd.Flags().StringVar(&toolMin, "min", "", "minimum version required (inclusive)")
	toolCmd.Flags().StringVar(&toolPackage, "package", "", "package providing the command (for the install hint)")
	toolCmd.Flags().DurationVar(&toolTimeout, "timeout", toolcheck.DefaultTimeout, "timeout per version probe attempt")
	rootCmd.AddCommand(toolCmd)
}

func runToolCheck(_ *cobra.Command, args []string) error {
	command := args[0]

	pkg := toolPackage
	if pkg == "" {
		pkg = command
	}

	c := &toolcheck.Check{
		Command:      command,
		InstallHint:  installHint(pkg),
		ProbeVersion: verbose,
		Timeout:      toolTimeout,
		Runner:       &toolcheck.ExecRunner{},
		Log:          debugLogger(),
	}

	var err error
	if c.MinVersion, err = version.ParseOptional(toolMin); err != nil {
		return fmt.Errorf("invalid --min version: %w", err)
	}

	return runCheck(c)
}

func installHint(pkg string) string {
	if mgr := installer.Detect(nil); mgr != nil {
		return "install: " + mgr.InstallCommand([]string{pkg})
	}
	return fmt.Sprintf("install %q with your package manager", pkg)
}
