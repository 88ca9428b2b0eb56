package main

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	resetFlags(rootCmd)
	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func TestVersionFlag(t *testing.T) {
	output, err := executeCommand("--version")
	require.NoError(t, err)
	assert.Contains(t, output, "guiready")
}

func TestHelpFlag(t *testing.T) {
	output, err := executeCommand("--help")
	require.NoError(t, err)
	assert.Contains(t, output, "guiready")
	assert.Contains(t, output, "platform")
	assert.Contains(t, output, "display")
	assert.Contains(t, output, "tool")
	assert.Contains(t, output, "install")
}

func TestPlatformCommand(t *testing.T) {
	_, err := executeCommand("platform")
	if runtime.GOOS == "linux" {
		assert.NoError(t, err)
	} else {
		assert.ErrorIs(t, err, ErrCheckFailed)
	}
}

func TestDisplayCommand(t *testing.T) {
	t.Setenv("GUIREADY_TEST_DISPLAY", ":0")

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"set variable", []string{"display", "GUIREADY_TEST_DISPLAY"}, false},
		{"unset variable", []string{"display", "GUIREADY_NONEXISTENT_VAR_12345"}, true},
		{"too many arguments", []string{"display", "A", "B"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestToolCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"existing command", []string{"tool", "sh"}, false},
		{"missing command", []string{"tool", "guiready-nonexistent-tool-12345"}, true},
		{"missing argument", []string{"tool"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestToolCommandInvalidMinVersion(t *testing.T) {
	_, err := executeCommand("tool", "sh", "--min", "not-a-version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --min version")
}

func TestRootRejectsPositionalArgs(t *testing.T) {
	_, err := executeCommand("bogus-subcommand")
	assert.Error(t, err)
}

func TestSuiteConfigFlagErrors(t *testing.T) {
	_, err := executeCommand("--config", "/nonexistent/guiready.yaml")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCheckFailed)
}

func TestExitErrorMessages(t *testing.T) {
	assert.EqualError(t, exitError{code: 2}, "platform not supported")
	assert.EqualError(t, exitError{code: 1}, "missing dependencies")
}
