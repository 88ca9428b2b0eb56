// Package toolcheck verifies that an external automation tool is present on
// PATH and optionally probes it for a version string.
package toolcheck

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"guiready/pkg/check"
	"guiready/pkg/version"
)

// DefaultTimeout bounds each version-probe invocation. Version flags on a
// misbehaving binary must never stall the whole run.
const DefaultTimeout = 2 * time.Second

// versionFlags are tried in order until one exits zero with output on stdout.
var versionFlags = []string{"--version", "-version", "version", "-V"}

// Check verifies that a command exists on PATH.
type Check struct {
	Command      string           // command name to check
	InstallHint  string           // remediation shown when the command is missing
	ProbeVersion bool             // attempt to obtain a version string when found
	MinVersion   *version.Version // minimum version required (inclusive), implies probing
	Timeout      time.Duration    // per-attempt timeout for version flags (default: 2s)
	Runner       Runner           // injected for testing
	Log          *log.Logger      // debug tracing, silent when nil
}

// Run executes the tool check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("tool: %s", c.Command),
	}

	runner := c.Runner
	if runner == nil {
		runner = &ExecRunner{}
	}

	path, err := runner.LookPath(c.Command)
	if err != nil {
		result.Fail("not found in PATH", err)
		if c.InstallHint != "" {
			result.AddHint(c.InstallHint)
		}
		return result
	}

	result.AddDetailf("path: %s", path)

	if c.ProbeVersion || c.MinVersion != nil {
		line, ok := c.probeVersion(runner)
		if ok {
			result.AddDetailf("version: %s", line)
		}
		if c.MinVersion != nil {
			if !ok {
				return result.Failf("no version output to compare against minimum %s", c.MinVersion)
			}
			if failed := c.checkMinVersion(line, &result); failed {
				return result
			}
		}
	}

	result.Status = check.StatusOK
	return result
}

// probeVersion tries each common version flag in turn, accepting the first
// invocation that exits zero with non-empty stdout. Every failure mode
// (timeout, exec error, non-zero exit, empty output) is skipped silently;
// missing version info is never a reason to fail the probe on its own.
func (c *Check) probeVersion(runner Runner) (string, bool) {
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	logger := c.Log
	if logger == nil {
		logger = log.New(io.Discard)
	}

	for _, flag := range versionFlags {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		stdout, _, err := runner.RunContext(ctx, c.Command, flag)
		cancel()

		if err != nil {
			logger.Debug("version probe attempt failed", "tool", c.Command, "flag", flag, "err", err)
			continue
		}
		out := strings.TrimSpace(stdout)
		if out == "" {
			logger.Debug("version probe attempt produced no output", "tool", c.Command, "flag", flag)
			continue
		}

		firstLine := strings.SplitN(out, "\n", 2)[0]
		logger.Debug("version probe succeeded", "tool", c.Command, "flag", flag, "version", firstLine)
		return firstLine, true
	}

	return "", false
}

func (c *Check) checkMinVersion(line string, result *check.Result) bool {
	parsed, err := version.Extract(line)
	if err != nil {
		result.Failf("could not parse version from output: %v", err)
		return true
	}
	if !parsed.GreaterThanOrEqual(*c.MinVersion) {
		result.Failf("version %s < minimum %s", parsed, c.MinVersion)
		return true
	}
	return false
}
