// Package suite drives the full readiness check sequence: platform gate,
// display probe, one tool probe per required tool, then summary, optional
// auto-install and a single bounded re-check.
package suite

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"guiready/pkg/displaycheck"
	"guiready/pkg/installer"
	"guiready/pkg/output"
	"guiready/pkg/platformcheck"
	"guiready/pkg/toolcheck"
)

// Exit codes summarizing overall readiness.
const (
	ExitOK          = 0 // all checks passed
	ExitMissing     = 1 // one or more non-platform checks failed
	ExitUnsupported = 2 // platform is not supported; no other checks run
)

// Deps holds the injected backends for every probe. Zero values fall back to
// the real implementations.
type Deps struct {
	Sys   platformcheck.SysInfo
	Env   displaycheck.EnvGetter
	Tools toolcheck.Runner
	Shell installer.Shell
}

// Options control a single suite run.
type Options struct {
	Verbose bool            // show paths, values and version strings
	Install bool            // attempt auto-install when tools are missing
	Out     *output.Printer // defaults to a stdout printer
	Log     *log.Logger     // debug tracing, silent when nil
}

// Suite runs the configured checks in fixed order.
type Suite struct {
	cfg  Config
	deps Deps
	opts Options
	out  *output.Printer
	log  *log.Logger
}

// New builds a Suite, filling in real implementations for nil deps.
func New(cfg Config, deps Deps, opts Options) *Suite {
	if deps.Tools == nil {
		deps.Tools = &toolcheck.ExecRunner{}
	}
	if deps.Shell == nil {
		deps.Shell = &installer.HostShell{}
	}
	out := opts.Out
	if out == nil {
		out = output.New(opts.Verbose)
	}
	logger := opts.Log
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Suite{cfg: cfg, deps: deps, opts: opts, out: out, log: logger}
}

// outcome aggregates one pass over the checks.
type outcome struct {
	code          int
	displayFailed bool
	missing       []ToolSpec
}

// Run executes the whole sequence and returns the process exit code.
// After a successful auto-install the checks re-run exactly once; the retry
// never installs again, so the loop is bounded.
func (s *Suite) Run() int {
	s.out.Headerf("GUI automation readiness check")
	s.out.Blank()

	res := s.runChecks()
	if res.code == ExitUnsupported {
		s.out.Blank()
		s.out.Failuref("Platform not supported: GUI automation requires Linux/X11")
		return ExitUnsupported
	}
	if res.code == ExitOK {
		s.printSuccess()
		return ExitOK
	}

	s.out.Blank()
	s.out.Failuref("Some dependencies are missing")

	installAttempted := false
	if s.opts.Install {
		installAttempted = true
		if s.autoInstall() {
			s.out.Blank()
			s.out.Plainf("Installation completed. Re-running checks...")
			s.out.Blank()
			res = s.runChecks()
			if res.code == ExitOK {
				s.printSuccess()
				return ExitOK
			}
			s.out.Blank()
			s.out.Failuref("Some dependencies are still missing")
		} else {
			s.out.Blank()
			s.out.Warnf("Auto-installation failed. Please install manually.")
		}
	}

	s.printRemediation(res, installAttempted)
	return ExitMissing
}

// runChecks runs the fixed probe order, printing each result. A platform
// failure halts immediately: the remaining probes are meaningless off Linux.
func (s *Suite) runChecks() outcome {
	res := outcome{code: ExitOK}

	platform := platformcheck.Check{Info: s.deps.Sys}
	r := platform.Run()
	s.out.Result(r)
	if !r.OK() {
		res.code = ExitUnsupported
		return res
	}

	display := displaycheck.Check{Name: s.cfg.DisplayVar, Getter: s.deps.Env}
	r = display.Run()
	s.out.Result(r)
	if !r.OK() {
		res.displayFailed = true
		res.code = ExitMissing
	}

	mgr := installer.Detect(s.deps.Tools.LookPath)
	for _, tool := range s.cfg.Tools {
		c := toolcheck.Check{
			Command:      tool.Command,
			InstallHint:  s.installHint(mgr, tool),
			ProbeVersion: s.opts.Verbose,
			Runner:       s.deps.Tools,
			Log:          s.log,
		}
		r = c.Run()
		s.out.Result(r)
		if !r.OK() {
			res.missing = append(res.missing, tool)
			res.code = ExitMissing
		}
	}

	return res
}

func (s *Suite) installHint(mgr *installer.Manager, tool ToolSpec) string {
	if mgr != nil {
		return "install: " + mgr.InstallCommand([]string{tool.PackageFor(mgr.Name)})
	}
	return fmt.Sprintf("install %q with your package manager", tool.PackageFor(""))
}

// autoInstall runs the detected package manager over every configured tool
// (the package set is small and installs are idempotent). Returns true only
// when the install command exits zero.
func (s *Suite) autoInstall() bool {
	s.out.Blank()
	s.out.Headerf("Attempting to install dependencies...")

	mgr := installer.Detect(s.deps.Tools.LookPath)
	if mgr == nil {
		s.out.Warnf("Unable to detect a package manager (tried apt-get, dnf, pacman, yum).")
		return false
	}

	cmdline := mgr.InstallCommand(s.cfg.Packages(mgr.Name))
	s.out.Plainf("Running: %s", cmdline)
	s.out.Blank()
	s.log.Debug("running installer", "manager", mgr.Name, "cmdline", cmdline)

	if err := s.deps.Shell.RunShell(cmdline); err != nil {
		s.log.Debug("installer failed", "err", err)
		s.out.Warnf("Installation failed: %v", err)
		return false
	}
	return true
}

func (s *Suite) printSuccess() {
	s.out.Blank()
	s.out.Successf("All dependencies satisfied")
	s.out.Blank()
	s.out.Plainf("GUI automation tools are ready to use.")
}

func (s *Suite) printRemediation(res outcome, installAttempted bool) {
	s.out.Blank()
	s.out.Plainf("To install missing dependencies:")

	if res.displayFailed {
		s.out.Blank()
		s.out.Warnf("  %s: set up X11 or use headless mode", s.cfg.DisplayVar)
		s.out.Plainf("    export %s=:0           # if X11 is running", s.cfg.DisplayVar)
	}

	if len(res.missing) > 0 {
		mgr := installer.Detect(s.deps.Tools.LookPath)
		s.out.Blank()
		if mgr != nil {
			s.out.Warnf("  Install commands:")
			missing := Config{Tools: res.missing}
			s.out.Commandf("    %s", mgr.InstallCommand(missing.Packages(mgr.Name)))
		} else {
			s.out.Warnf("  Manual installation:")
			for _, tool := range res.missing {
				purpose := tool.Purpose
				if purpose == "" {
					purpose = tool.Command
				}
				s.out.Plainf("    install %s for %s using your package manager", tool.PackageFor(""), purpose)
			}
		}
	}

	if !installAttempted {
		s.out.Blank()
		s.out.Plainf("Or run with auto-install:")
		s.out.Commandf("    guiready --install")
	}
}

