package rules

import "errors"

var (
	// ErrUnknownKind is reported when an entry names a rule kind the engine
	// has no definition for.
	ErrUnknownKind = errors.New("unknown rule kind")

	// ErrMissingParam is reported when a rule needs a parameter the entry
	// does not provide.
	ErrMissingParam = errors.New("missing rule parameter")

	// ErrInvalidParam is reported when a rule parameter cannot be parsed.
	ErrInvalidParam = errors.New("invalid rule parameter")
)
