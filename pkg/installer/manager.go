// Package installer detects the system package manager and runs install
// commands for missing tools. This is the only part of the program with a
// mutating side effect, and it runs only behind an explicit opt-in.
package installer

import (
	"fmt"
	"os/exec"
	"strings"
)

// Manager describes a known system package manager.
type Manager struct {
	Name     string // executable name, e.g. "apt-get"
	template string // install command with %s for the package list
}

// known lists supported package managers in detection priority order.
var known = []Manager{
	{Name: "apt-get", template: "sudo apt-get update && sudo apt-get install -y %s"},
	{Name: "dnf", template: "sudo dnf install -y %s"},
	{Name: "pacman", template: "sudo pacman -S %s"},
	{Name: "yum", template: "sudo yum install -y %s"},
}

// LookPath abstracts executable lookup for testability.
type LookPath func(file string) (string, error)

// Detect returns the first known package manager found on PATH, or nil if
// none is present. lookPath defaults to exec.LookPath.
func Detect(lookPath LookPath) *Manager {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	for _, m := range known {
		if _, err := lookPath(m.Name); err == nil {
			mgr := m
			return &mgr
		}
	}
	return nil
}

// InstallCommand returns the full shell command line that installs the given
// packages with this manager.
func (m *Manager) InstallCommand(packages []string) string {
	return fmt.Sprintf(m.template, strings.Join(packages, " "))
}
