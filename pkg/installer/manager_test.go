package installer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookPathFor(present ...string) LookPath {
	return func(file string) (string, error) {
		for _, p := range present {
			if p == file {
				return "/usr/bin/" + file, nil
			}
		}
		return "", errors.New("executable file not found in $PATH")
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		present []string
		want    string // expected manager name, "" for nil
	}{
		{"apt-get", []string{"apt-get"}, "apt-get"},
		{"dnf", []string{"dnf"}, "dnf"},
		{"pacman", []string{"pacman"}, "pacman"},
		{"yum", []string{"yum"}, "yum"},
		{"none found", []string{"brew"}, ""},
		{"apt-get wins over dnf", []string{"dnf", "apt-get"}, "apt-get"},
		{"dnf wins over yum", []string{"yum", "dnf"}, "dnf"},
		{"pacman wins over yum", []string{"yum", "pacman"}, "pacman"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr := Detect(lookPathFor(tt.present...))
			if tt.want == "" {
				assert.Nil(t, mgr)
				return
			}
			require.NotNil(t, mgr)
			assert.Equal(t, tt.want, mgr.Name)
		})
	}
}

func TestInstallCommand(t *testing.T) {
	packages := []string{"xdotool", "imagemagick"}

	tests := []struct {
		manager string
		want    string
	}{
		{"apt-get", "sudo apt-get update && sudo apt-get install -y xdotool imagemagick"},
		{"dnf", "sudo dnf install -y xdotool imagemagick"},
		{"pacman", "sudo pacman -S xdotool imagemagick"},
		{"yum", "sudo yum install -y xdotool imagemagick"},
	}

	for _, tt := range tests {
		t.Run(tt.manager, func(t *testing.T) {
			mgr := Detect(lookPathFor(tt.manager))
			require.NotNil(t, mgr)
			assert.Equal(t, tt.want, mgr.InstallCommand(packages))
		})
	}
}

func TestDetectRecordsNoSideEffects(t *testing.T) {
	// Detect must only consult PATH, never execute anything.
	var looked []string
	lookPath := func(file string) (string, error) {
		looked = append(looked, file)
		return "", errors.New("not found")
	}

	assert.Nil(t, Detect(lookPath))
	assert.Equal(t, []string{"apt-get", "dnf", "pacman", "yum"}, looked)
}
