// Package errs defines the sentinel errors services wrap and handlers map to
// HTTP status codes with errors.Is.
package errs

import "errors"

var (
	// ErrInvalidInput marks requests that fail validation or carry
	// out-of-vocabulary values (bad date, unknown time label, bad amount).
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks lookups of records that do not exist or that the
	// caller is not allowed to see.
	ErrNotFound = errors.New("not found")

	// ErrSlotUnavailable marks reservation attempts on slots that are not
	// available, and bookings against closed facilities.
	ErrSlotUnavailable = errors.New("slot unavailable")

	// ErrInvalidTransition marks booking status changes the lifecycle does
	// not allow.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrAuthenticationFailed marks rejected credentials.
	ErrAuthenticationFailed = errors.New("authentication failed")
)
