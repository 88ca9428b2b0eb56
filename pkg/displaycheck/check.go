// Package displaycheck verifies that an active display session is advertised
// through the environment.
package displaycheck

import (
	"fmt"

	"guiready/pkg/check"
)

// DefaultVar is the variable X11 session managers conventionally set.
const DefaultVar = "DISPLAY"

// Check verifies that the display variable is set to a non-empty value.
// A failure does not stop the remaining probes; tool presence is still
// worth reporting without a display.
type Check struct {
	Name   string    // env var name (default: DISPLAY)
	Getter EnvGetter // injected for testing
}

func (c *Check) Run() check.Result {
	name := c.Name
	if name == "" {
		name = DefaultVar
	}

	result := check.Result{
		Name: fmt.Sprintf("display: %s", name),
	}

	getter := c.Getter
	if getter == nil {
		getter = &RealEnvGetter{}
	}

	value, exists := getter.LookupEnv(name)
	if !exists || value == "" {
		result.Fail("not set", fmt.Errorf("environment variable %s is not set", name))
		result.AddHintf("set %s (e.g., export %s=:0) if X11 is running", name, name)
		result.AddHint("or use headless (shell-only) mode, which needs no display")
		return result
	}

	result.Status = check.StatusOK
	result.AddDetailf("value: %s", value)
	return result
}
