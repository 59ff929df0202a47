package errors

import (
	"errors"
	"fmt"
)

// Common error types for the wallet web client
var (
	// Session errors
	ErrNotAuthenticated = errors.New("not authenticated")

	// Local validation errors, raised before any backend call
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidPhone     = errors.New("invalid phone number")
	ErrMissingField     = errors.New("required field missing")

	// Checkout errors
	ErrUnknownOrder = errors.New("unknown checkout order")

	// Backend transport errors
	ErrTransport   = errors.New("backend unreachable")
	ErrBadResponse = errors.New("backend returned an unreadable response")
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
