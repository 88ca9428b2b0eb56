package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"guiready/pkg/suite"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	verbose    bool
	install    bool
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "guiready",
	Short: "Check that this host is ready for GUI automation tooling",
	Long: `guiready verifies the prerequisites for GUI automation: a Linux
platform, an active DISPLAY session, and the xdotool and import
(ImageMagick) command-line tools.

Exit codes:
  0 - all checks passed
  1 - missing dependencies
  2 - platform not supported`,
	Version:       Version,
	Args:          cobra.NoArgs,
	RunE:          runSuite,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show paths, values and version strings")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML suite definition")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log probe execution details to stderr")
	rootCmd.Flags().BoolVar(&install, "install", false, "attempt to auto-install missing tools (requires sudo)")
}

// exitError carries a readiness exit code out of cobra.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	if e.code == suite.ExitUnsupported {
		return "platform not supported"
	}
	return "missing dependencies"
}

func runSuite(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s := suite.New(cfg, suite.Deps{}, suite.Options{
		Verbose: verbose,
		Install: install,
		Log:     debugLogger(),
	})
	if code := s.Run(); code != suite.ExitOK {
		return exitError{code: code}
	}
	return nil
}

func loadConfig() (suite.Config, error) {
	if configPath == "" {
		return suite.Default(), nil
	}
	return suite.Load(configPath)
}

func debugLogger() *log.Logger {
	if !debug {
		return log.New(io.Discard)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: false,
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var ec exitError
		if errors.As(err, &ec) {
			os.Exit(ec.code)
		}
		if !errors.Is(err, ErrCheckFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
