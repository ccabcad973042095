package errors

import (
	"errors"
	"fmt"
)

// Common error types for the gateway. Only authentication failures are ever
// surfaced to the user; everything else is absorbed into defaults and logged.
var (
	// Authentication errors
	ErrAuthFailed     = errors.New("authentication failed")
	ErrMissingToken   = errors.New("login response missing access token")
	ErrSwitchRejected = errors.New("tenant switch rejected")

	// Tenant errors
	ErrTenantNotFound = errors.New("tenant not found")

	// Backend errors
	ErrBadResponse = errors.New("unexpected backend response")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
