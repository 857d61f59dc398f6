package cmd

import (
	"errors"

	pwaerrors "github.com/pwagen/cli/internal/errors"
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for ExitError first
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, pwaerrors.ErrValidation):
		return ExitValidationError
	case errors.Is(err, pwaerrors.ErrPermission):
		return ExitPermissionDenied
	case errors.Is(err, pwaerrors.ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}
