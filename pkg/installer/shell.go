package installer

import (
	"io"
	"os"
	"os/exec"
)

// Shell runs an install command line through the host shell.
type Shell interface {
	// RunShell blocks until the command exits and returns nil only on
	// exit status zero. Installs may be interactive, so there is no
	// timeout; the operator is assumed present.
	RunShell(cmdline string) error
}

// HostShell executes through "sh -c" with the process's stdio attached so
// package-manager prompts and progress reach the operator.
type HostShell struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (h *HostShell) RunShell(cmdline string) error {
	stdin, stdout, stderr := h.Stdin, h.Stdout, h.Stderr
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	// #nosec G204 -- the command line is assembled from the fixed manager
	// templates above, never from user input.
	cmd := exec.Command("sh", "-c", cmdline)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// MockShell is a test double for Shell.
type MockShell struct {
	RunShellFunc func(cmdline string) error
	Calls        []string
}

func (m *MockShell) RunShell(cmdline string) error {
	m.Calls = append(m.Calls, cmdline)
	if m.RunShellFunc == nil {
		return nil
	}
	return m.RunShellFunc(cmdline)
}
