package cli

import (
	"errors"
	"fmt"
)

// Exit codes for the regval CLI. These support scripting and CI integration.
const (
	// ExitSuccess indicates every requested check passed.
	ExitSuccess = 0

	// ExitValidationFailed indicates a document failed schema or semantic
	// validation.
	ExitValidationFailed = 1

	// ExitInvalidArguments indicates bad flags or missing/unreadable input
	// files.
	ExitInvalidArguments = 2
)

// exitError carries an exit code through cobra's error return.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit code %d", e.code)
}

func (e *exitError) Unwrap() error { return e.err }

// ExitCode returns the process exit code for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitValidationFailed
}
