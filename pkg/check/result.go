package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string   // e.g., "platform", "tool: xdotool"
	Status  Status   // OK or FAIL
	Details []string // human-readable details (paths, values, versions)
	Hints   []string // remediation guidance, shown only on failure
	Err     error    // underlying error for failures
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}
