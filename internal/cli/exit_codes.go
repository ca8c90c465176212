package cli

import "fmt"

// Exit codes for the specdev CLI. These support CI composition: 0 means the
// report passed, 1 means the report contains error-severity issues, 2 means
// a fatal condition prevented a report from being produced at all.
const (
	ExitSuccess          = 0
	ExitValidationFailed = 1
	ExitFatal            = 2
)

// exitError carries an exit code through cobra's error return path. The
// cause, when present, is what gets printed; a bare code stays silent
// because the command already rendered its report.
type exitError struct {
	code  int
	cause error
}

func (e *exitError) Error() string {
	if e.cause != nil {
		return e.cause.Error()
	}
	return fmt.Sprintf("exit code %d", e.code)
}

func (e *exitError) Unwrap() error {
	return e.cause
}

// NewExitError creates an error that maps to the given exit code without a
// printable cause.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// FatalError wraps an unrecoverable condition so it maps to exit code 2.
func FatalError(err error) error {
	return &exitError{code: ExitFatal, cause: err}
}

// ExitCode returns the process exit code for an error returned by Execute.
// Unknown errors (usage mistakes, I/O failures) map to the fatal code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if e, ok := err.(*exitError); ok {
		return e.code
	}
	return ExitFatal
}

// ExitMessage returns the message to print for an error returned by
// Execute, or "" when nothing should be printed.
func ExitMessage(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := err.(*exitError); ok {
		if e.cause == nil {
			return ""
		}
		return e.cause.Error()
	}
	return err.Error()
}
