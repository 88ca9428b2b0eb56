// Package platformcheck verifies the host operating system.
package platformcheck

import (
	"runtime"

	"guiready/pkg/check"
)

// SysInfo abstracts system identity for testability.
type SysInfo interface {
	OS() string
	Arch() string
}

// RealSysInfo returns actual system information.
type RealSysInfo struct{}

func (r *RealSysInfo) OS() string   { return runtime.GOOS }
func (r *RealSysInfo) Arch() string { return runtime.GOARCH }

// Check verifies the host runs the required operating system.
// GUI automation needs X11, so the suite requires linux; every other
// probe is meaningless elsewhere and the driver treats a failure here
// as a hard gate.
type Check struct {
	Required string  // required GOOS value (default: linux)
	Info     SysInfo // injected for testing
}

func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "platform",
	}

	required := c.Required
	if required == "" {
		required = "linux"
	}

	info := c.Info
	if info == nil {
		info = &RealSysInfo{}
	}

	actualOS := info.OS()
	if actualOS != required {
		result.Failf("running on %s, %s required", actualOS, required)
		result.AddHint("GUI automation tools need Linux/X11")
		result.AddHint("run inside a Linux VM or container, or use headless (shell-only) mode")
		return result
	}

	result.Status = check.StatusOK
	result.AddDetailf("os: %s", actualOS)
	result.AddDetailf("arch: %s", info.Arch())
	return result
}
