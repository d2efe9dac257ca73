// Package errors provides the error types that carry sysupdate's exit status.
//
// The package consolidates everything that influences the process exit code:
//   - ExitError: command termination with a specific exit code
//   - PrivilegeError: the run was refused because it was started as root
//   - SectionFailureError: one or more sections had a failing command
//
// Error Checking:
//
//	if exitErr, ok := errors.IsExitError(err); ok {
//	    os.Exit(exitErr.Code)
//	}
//
// Exit Codes:
//   - ExitSuccess (0): every invoked command exited with code 0
//   - ExitFailure (1): a command failed or the privilege guard tripped
package errors
