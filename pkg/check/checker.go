package check

// Checker is implemented by all probe types.
// Each probe inspects one aspect of the host environment
// and returns a Result indicating readiness.
//
// Implementations:
//   - platformcheck.Check: verifies the operating system
//   - displaycheck.Check: verifies an active display session
//   - toolcheck.Check: verifies an automation tool on PATH
type Checker interface {
	Run() Result
}
