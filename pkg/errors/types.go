package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Exit codes for scripting integration.
const (
	// ExitSuccess indicates all invoked commands completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates at least one command failed, or the run was refused.
	ExitFailure = 1
)

// ExitError represents a command termination with a specific exit code.
//
// Fields:
//   - Code: Exit code (ExitSuccess or ExitFailure)
//   - Message: Human-readable error message
//   - Err: Underlying error that caused this exit, may be nil
//
// Example:
//
//	return &ExitError{
//	    Code:    ExitFailure,
//	    Message: "some commands failed",
//	    Err:     err,
//	}
type ExitError struct {
	// Code is the exit code for the process.
	Code int

	// Message is a human-readable description of why the command failed.
	Message string

	// Err is the underlying error that caused this exit.
	// May be nil if no underlying error exists.
	Err error
}

// Error implements the error interface.
//
// Returns the Message field if set, otherwise returns the underlying error's
// message, or a default message with the exit code.
func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and underlying error.
//
// Parameters:
//   - code: Exit code
//   - err: Underlying error, may be nil
//
// Returns:
//   - *ExitError: New exit error
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// NewExitErrorf creates an ExitError with the given code and formatted message.
//
// Parameters:
//   - code: Exit code
//   - format: Printf-style format string
//   - args: Format arguments
//
// Returns:
//   - *ExitError: New exit error with formatted message
func NewExitErrorf(code int, format string, args ...interface{}) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// GetExitCode extracts the exit code from an error.
//
// If err is nil, returns ExitSuccess.
// If err is (or wraps) an ExitError, returns its code.
// Otherwise returns ExitFailure.
//
// Example:
//
//	code := errors.GetExitCode(err)
//	os.Exit(code)
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}

// IsExitError checks if err is an ExitError and returns it.
func IsExitError(err error) (*ExitError, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr, true
	}
	return nil, false
}

// PrivilegeError is returned when sysupdate is started by the superuser.
//
// Fields:
//   - User: The account name the process runs as
type PrivilegeError struct {
	User string
}

// Error implements the error interface.
func (e *PrivilegeError) Error() string {
	return fmt.Sprintf("refusing to run as %s", e.User)
}

// IsPrivilegeError reports whether err is (or wraps) a PrivilegeError.
func IsPrivilegeError(err error) bool {
	var pe *PrivilegeError
	return errors.As(err, &pe)
}

// SectionFailureError indicates that at least one section had a failing command.
//
// Fields:
//   - Failed: Names of the failed sections, in dispatch order
//   - Succeeded: Number of sections that ran without a failing command
type SectionFailureError struct {
	Failed    []string
	Succeeded int
}

// Error implements the error interface.
//
// Returns:
//   - string: e.g. "some commands failed in: node, rust"
func (e *SectionFailureError) Error() string {
	if len(e.Failed) == 0 {
		return "some commands failed"
	}
	return "some commands failed in: " + strings.Join(e.Failed, ", ")
}

// NewSectionFailureError creates a SectionFailureError.
//
// Parameters:
//   - failed: Names of the failed sections
//   - succeeded: Count of sections that succeeded
//
// Returns:
//   - *SectionFailureError: New section failure error
func NewSectionFailureError(failed []string, succeeded int) *SectionFailureError {
	return &SectionFailureError{Failed: failed, Succeeded: succeeded}
}

// IsSectionFailure checks if err is a SectionFailureError and returns it.
func IsSectionFailure(err error) (*SectionFailureError, bool) {
	var sfe *SectionFailureError
	if errors.As(err, &sfe) {
		return sfe, true
	}
	return nil, false
}
