package form

import "errors"

var (
	// ErrUnknownKind is returned when a snapshot names a field kind that does not exist.
	ErrUnknownKind = errors.New("unknown field kind")

	// ErrUnsupportedFormat is returned for snapshot files that are neither YAML nor JSON.
	ErrUnsupportedFormat = errors.New("unsupported snapshot format")

	// ErrInvalidSnapshot is returned when a snapshot cannot be decoded or is inconsistent.
	ErrInvalidSnapshot = errors.New("invalid form snapshot")
)
