package ruleset

import "errors"

var (
	// ErrFormNotFound is returned when no formset defines the requested form.
	ErrFormNotFound = errors.New("form not found")

	// ErrUnsupportedFormat is returned for a document format other than YAML, JSON or TOML.
	ErrUnsupportedFormat = errors.New("unsupported rule document format")

	// ErrInvalidDocument is returned when a rule document cannot be decoded or is malformed.
	ErrInvalidDocument = errors.New("invalid rule document")

	// ErrDuplicateForm is returned when a form is declared twice for the same locale.
	ErrDuplicateForm = errors.New("duplicate form")

	// ErrMissingProperty is returned when a field declaration has no property.
	ErrMissingProperty = errors.New("field property is required")
)
