package main

import (
	"errors"

	"guiready/pkg/check"
	"guiready/pkg/output"
)

// Checker is implemented by all probe types.
type Checker interface {
	Run() check.Result
}

// ErrCheckFailed is returned when a standalone check fails.
var ErrCheckFailed = errors.New("check failed")

// runCheck executes a single check, prints the result, and returns an error
// if it failed. The error makes the process exit with code 1.
func runCheck(c Checker) error {
	result := c.Run()
	output.New(verbose).Result(result)

	if !result.OK() {
		return ErrCheckFailed
	}
	return nil
}
