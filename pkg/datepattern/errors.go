package datepattern

import "errors"

var (
	// ErrEmptyPattern is returned when the layout is empty. Callers treat it as
	// "no constraint" rather than as a failed value.
	ErrEmptyPattern = errors.New("date pattern is empty")

	// ErrMissingToken is returned when the layout lacks one of MM, dd or yyyy.
	ErrMissingToken = errors.New("date pattern must contain MM, dd and yyyy")

	// ErrUnsupportedOrder is returned when the tokens appear in an order other
	// than MM-dd-yyyy, dd-MM-yyyy or yyyy-MM-dd.
	ErrUnsupportedOrder = errors.New("unsupported date pattern token order")
)
