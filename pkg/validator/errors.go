package validator

import "errors"

var (
	// ErrValidationFailed matches any ValidationErrors value with errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidMask is returned when a mask pattern is not a valid regular expression.
	ErrInvalidMask = errors.New("invalid mask pattern")

	// ErrMaskTimeout is returned when matching a mask exceeds its time budget.
	ErrMaskTimeout = errors.New("mask match timed out")
)
