package check

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultOK(t *testing.T) {
	assert.True(t, Result{Status: StatusOK}.OK())
	assert.False(t, Result{Status: StatusFail}.OK())
	assert.False(t, Result{}.OK(), "zero value must not pass")
}

func TestFail(t *testing.T) {
	r := Result{Name: "tool: xdotool"}
	underlying := errors.New("not found")

	got := r.Fail("not found in PATH", underlying)

	assert.Equal(t, StatusFail, got.Status)
	assert.Equal(t, []string{"not found in PATH"}, got.Details)
	assert.Equal(t, underlying, got.Err)
}

func TestFailf(t *testing.T) {
	r := Result{Name: "platform"}

	got := r.Failf("running on %s, %s required", "darwin", "linux")

	assert.Equal(t, StatusFail, got.Status)
	assert.Contains(t, got.Details[0], "running on darwin")
	assert.EqualError(t, got.Err, "running on darwin, linux required")
}

func TestAddDetailAndHint(t *testing.T) {
	r := Result{Name: "display: DISPLAY"}

	r.AddDetail("value: :0").AddDetailf("source: %s", "env")
	r.AddHint("set DISPLAY").AddHintf("export %s=:0", "DISPLAY")

	assert.Equal(t, []string{"value: :0", "source: env"}, r.Details)
	assert.Equal(t, []string{"set DISPLAY", "export DISPLAY=:0"}, r.Hints)
}
