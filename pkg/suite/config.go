package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ToolSpec names a required external tool and how to install it.
type ToolSpec struct {
	Command  string            `yaml:"command"`            // executable name looked up on PATH
	Purpose  string            `yaml:"purpose,omitempty"`  // shown in remediation output
	Package  string            `yaml:"package,omitempty"`  // default package name (falls back to the command)
	Packages map[string]string `yaml:"packages,omitempty"` // per-manager package name overrides
}

// PackageFor returns the package name for the given manager, falling back to
// the default package and finally the command name itself.
func (t ToolSpec) PackageFor(manager string) string {
	if p, ok := t.Packages[manager]; ok {
		return p
	}
	if t.Package != "" {
		return t.Package
	}
	return t.Command
}

// Config defines the check suite: the display variable to probe and the
// tools that must be present.
type Config struct {
	DisplayVar string     `yaml:"display_var,omitempty"`
	Tools      []ToolSpec `yaml:"tools"`
}

// Packages returns the deduplicated package list for the given manager
// across all configured tools.
func (c Config) Packages(manager string) []string {
	seen := make(map[string]bool)
	var packages []string
	for _, tool := range c.Tools {
		pkg := tool.PackageFor(manager)
		if !seen[pkg] {
			seen[pkg] = true
			packages = append(packages, pkg)
		}
	}
	return packages
}

// Default returns the standard GUI-automation suite: an X11 DISPLAY session,
// xdotool for pointer/keyboard control and ImageMagick's import for capture.
func Default() Config {
	return Config{
		DisplayVar: "DISPLAY",
		Tools: []ToolSpec{
			{
				Command: "xdotool",
				Purpose: "pointer and keyboard automation",
				Package: "xdotool",
			},
			{
				Command: "import",
				Purpose: "screen capture (ImageMagick)",
				Package: "imagemagick",
				// Fedora/RHEL package the suite under a different case.
				Packages: map[string]string{"dnf": "ImageMagick", "yum": "ImageMagick"},
			},
		},
	}
}

// Load reads a YAML suite definition, filling defaults for omitted fields.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read suite config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse suite config %s: %w", path, err)
	}

	if cfg.DisplayVar == "" {
		cfg.DisplayVar = Default().DisplayVar
	}
	if len(cfg.Tools) == 0 {
		return Config{}, fmt.Errorf("suite config %s defines no tools", path)
	}
	for i, t := range cfg.Tools {
		if t.Command == "" {
			return Config{}, fmt.Errorf("suite config %s: tool %d has no command", path, i)
		}
	}

	return cfg, nil
}
