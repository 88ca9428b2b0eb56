package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"guiready/pkg/installer"
	"guiready/pkg/output"
)

var installDryRun bool

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the GUI automation tools with the system package manager",
	Long: `Detect the system package manager (apt-get, dnf, pacman or yum, in
that order) and install every tool the suite requires. Running this
subcommand is the explicit opt-in; use --dry-run to only print the
command line.`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().BoolVar(&installDryRun, "dry-run", false, "print the install command without running it")
	rootCmd.AddCommand(installCmd)
}

func runInstall(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p := output.New(verbose)

	mgr := installer.Detect(nil)
	if mgr == nil {
		p.Warnf("Unable to detect a package manager (tried apt-get, dnf, pacman, yum).")
		p.Plainf("Install the tools manually instead:")
		for _, tool := range cfg.Tools {
			p.Plainf("    install %s using your package manager", tool.PackageFor(""))
		}
		return fmt.Errorf("no package manager found")
	}

	cmdline := mgr.InstallCommand(cfg.Packages(mgr.Name))
	if installDryRun {
		p.Commandf("%s", cmdline)
		return nil
	}

	p.Plainf("Running: %s", cmdline)
	p.Blank()

	shell := &installer.HostShell{}
	if err := shell.RunShell(cmdline); err != nil {
		return fmt.Errorf("install command failed: %w", err)
	}

	p.Successf("Installation completed")
	return nil
}
