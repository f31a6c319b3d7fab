package launch

import "github.com/pkg/errors"

var (
	// ErrArgumentNotSet is returned when a launch configuration is read
	// before anything assigned it a value.
	ErrArgumentNotSet = errors.New("launch argument not set")
	// ErrPackageNotFound is returned by package resolvers for unknown packages.
	ErrPackageNotFound = errors.New("package not found")
	// ErrInvalidName is returned for malformed node names, namespaces and topics.
	ErrInvalidName = errors.New("invalid name")
)
